// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trace - log the rotations performed by an avl tree
package trace

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
)

// LoggerPrefix - suggested logger channel name
const LoggerPrefix = "rotation"

// Rotations - an avl.Observer that logs and counts rotations
type Rotations struct {
	log    *logger.L
	counts map[avl.Rotation]int
}

// New - create a rotation observer, log may be nil to only count
func New(log *logger.L) *Rotations {
	return &Rotations{
		log:    log,
		counts: make(map[avl.Rotation]int),
	}
}

// Rotated - implement avl.Observer
func (r *Rotations) Rotated(kind avl.Rotation, pivot int) {
	r.counts[kind] += 1
	if nil != r.log {
		r.log.Debugf("rotation: %s  pivot: %d", kind, pivot)
	}
}

// Counts - number of rotations of each kind seen so far
func (r *Rotations) Counts() map[avl.Rotation]int {
	counts := make(map[avl.Rotation]int, len(r.counts))
	for k, v := range r.counts {
		counts[k] = v
	}
	return counts
}

// Total - number of rotations of any kind
func (r *Rotations) Total() int {
	n := 0
	for _, v := range r.counts {
		n += v
	}
	return n
}
