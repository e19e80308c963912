// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/script"
)

// basic defaults (directories and files are relative to the
// configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - contents of the Lua configuration file
type Configuration struct {
	Heights bool                       `gluamapper:"heights" json:"heights"`
	Trace   bool                       `gluamapper:"trace" json:"trace"`
	Check   bool                       `gluamapper:"check" json:"check"`
	Steps   []script.StepConfiguration `gluamapper:"steps" json:"steps"`
	Logging logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
//
// an empty file name gives the defaults with the log in the system
// temporary directory
func getConfiguration(configurationFileName string, verbose bool) (*Configuration, error) {

	options := &Configuration{
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels: map[string]string{
				"main":            "info",
				logger.DefaultTag: "critical",
			},
		},
	}

	dataDirectory := os.TempDir()

	if "" != configurationFileName {
		configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		dataDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); nil != err {
			return nil, err
		}
	} else {
		options.Logging.Directory = ""
	}

	if verbose {
		options.Logging.Levels[logger.DefaultTag] = "debug"
		options.Logging.Levels["main"] = "debug"
	}

	// ensure absolute path for the log directory
	options.Logging.Directory = ensureAbsolute(dataDirectory, options.Logging.Directory)

	return options, nil
}

// ensureAbsolute - if a path is not absolute, prepend the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
