// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "watch", HasArg: getoptions.NO_ARGUMENT, Short: 'w'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--quiet] [--watch] [--config-file=FILE] [operation [keys...]]...\n%s", program, usage)
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}
	configurationFile := ""
	if 1 == len(options["config-file"]) {
		configurationFile = options["config-file"][0]
	}

	watch := len(options["watch"]) > 0
	if watch && "" == configurationFile {
		exitwithstatus.Message("%s: watch requires a config-file", program)
	}
	quiet := len(options["quiet"]) > 0
	verbose := len(options["verbose"]) > 0

	inline, err := script.Parse(arguments)
	if nil != err {
		exitwithstatus.Message("%s: script error: %s", program, err)
	}

	masterConfiguration, err := getConfiguration(configurationFile, verbose)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = os.MkdirAll(masterConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q  error: %s", program, masterConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	_, err = process(masterConfiguration, inline, os.Stdout, log)
	if nil != err {
		if fault.IsErrProcess(err) {
			fault.PanicWithError("tree check", err)
		}
		exitwithstatus.Message("%s: %s", program, err)
	}

	if !watch {
		return
	}

	watcher, err := newFileWatcher(configurationFile, logger.New(fileWatcherLoggerPrefix))
	if nil != err {
		exitwithstatus.Message("%s: file watcher setup failed with error: %s", program, err)
	}
	if err = watcher.Start(); nil != err {
		exitwithstatus.Message("%s: file watcher start failed with error: %s", program, err)
	}
	defer watcher.Stop()

	if !quiet {
		fmt.Printf("\n\nWatching: %q  waiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…\n", configurationFile)
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case sig := <-ch:
			log.Infof("received signal: %v", sig)
			if !quiet {
				fmt.Printf("\nreceived signal: %v\n", sig)
			}
			return

		case <-watcher.RemoveChannel():
			log.Warnf("configuration: %q removed", configurationFile)
			return

		case <-watcher.ChangeChannel():
			rerun(configurationFile, inline, verbose, quiet, log)
		}
	}
}

// re-read the configuration and run the script on a fresh tree,
// errors are reported but do not stop watching
func rerun(configurationFile string, inline []script.Step, verbose bool, quiet bool, log *logger.L) {
	config, err := getConfiguration(configurationFile, verbose)
	if nil != err {
		log.Errorf("configuration: %q  error: %s", configurationFile, err)
		fmt.Printf("configuration error: %s\n", err)
		return
	}
	if !quiet {
		fmt.Printf("\n---- %s\n", configurationFile)
	}
	if _, err := process(config, inline, os.Stdout, log); nil != err {
		log.Errorf("script error: %s", err)
		fmt.Printf("script error: %s\n", err)
	}
}

const usage = `operations:
  insert KEY...  add keys, duplicates are ignored
  remove KEY...  delete keys, missing keys are ignored
  dump           print the level-order dump, '*' marks an absent child
  copy           print the level-order dump of a deep copy
  check          verify the tree invariants
  clear          delete all nodes`
