// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/script"
	"github.com/bitmark-inc/avltree/trace"
)

// run the configured steps followed by the command line steps on a
// new tree
func process(config *Configuration, inline []script.Step, out io.Writer, log *logger.L) (*avl.Tree, error) {

	steps, err := script.FromConfiguration(config.Steps)
	if nil != err {
		return nil, err
	}
	steps = append(steps, inline...)

	tree := avl.New()

	var rotations *trace.Rotations
	if config.Trace {
		rotations = trace.New(logger.New(trace.LoggerPrefix))
		tree.SetObserver(rotations)
	}

	r := script.NewRunner(tree, out, log, config.Heights)
	r.SetCheck(config.Check)
	err = r.Run(steps)

	if nil != rotations {
		log.Infof("rotations: total: %d  by kind: %v", rotations.Total(), rotations.Counts())
	}
	return tree, err
}
