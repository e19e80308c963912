// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// Runner - applies steps to a tree and prints the dumps
type Runner struct {
	tree    *avl.Tree
	out     io.Writer
	log     *logger.L
	heights bool
	check   bool
}

// NewRunner - create a runner for a tree, output of dump and copy
// steps goes to out
func NewRunner(tree *avl.Tree, out io.Writer, log *logger.L, heights bool) *Runner {
	return &Runner{
		tree:    tree,
		out:     out,
		log:     log,
		heights: heights,
	}
}

// SetCheck - when enabled the tree invariants are verified after
// every step that modifies the tree
func (r *Runner) SetCheck(check bool) {
	r.check = check
}

// Tree - the tree being operated on
func (r *Runner) Tree() *avl.Tree {
	return r.tree
}

// Run - apply all steps in order, stops at the first failure
func (r *Runner) Run(steps []Step) error {
	for i, s := range steps {
		r.log.Debugf("step[%d]: %s", i, s)
		if err := r.step(s); nil != err {
			r.log.Errorf("step[%d]: %s  error: %s", i, s, err)
			return err
		}
		if r.check && operations[s.Op] {
			if err := r.tree.Check(); nil != err {
				r.log.Criticalf("step[%d]: %s  check error: %s", i, s, err)
				return err
			}
		}
	}
	r.log.Infof("completed: %d steps  count: %d  height: %d", len(steps), r.tree.Count(), r.tree.Height())
	return nil
}

func (r *Runner) step(s Step) error {
	switch s.Op {
	case Insert:
		for _, key := range s.Keys {
			if !r.tree.Insert(key) {
				r.log.Debugf("insert: %d already present", key)
			}
		}
	case Remove:
		for _, key := range s.Keys {
			if !r.tree.Remove(key) {
				r.log.Debugf("remove: %d not present", key)
			}
		}
	case Dump:
		return Render(r.out, r.tree.Levels(), r.heights)
	case Copy:
		return Render(r.out, r.tree.Copy().Levels(), r.heights)
	case Check:
		return r.tree.Check()
	case Clear:
		r.tree.Clear()
	}
	return nil
}
