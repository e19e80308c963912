// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Slot - one position of a level-order dump
//
// an absent child has Present == false and zero Key and Height
type Slot struct {
	Key     int
	Height  int
	Present bool
}

// LevelIterator - breadth first walk of a tree, one level at a time
type LevelIterator struct {
	queue []*Node
}

// LevelOrder - start a level-order walk
//
// each call returns a new iterator so the walk can be repeated; the
// tree must not be modified while an iterator is in use
func (tree *Tree) LevelOrder() *LevelIterator {
	it := &LevelIterator{}
	if nil != tree.root {
		it.queue = []*Node{tree.root}
	}
	return it
}

// Next - return the next level, or false once no level holds any
// node
//
// every present node contributes both children to the next level,
// absent ones as placeholders; placeholders contribute nothing
func (it *LevelIterator) Next() ([]Slot, bool) {
	if 0 == len(it.queue) {
		return nil, false
	}

	level := make([]Slot, len(it.queue))
	next := make([]*Node, 0, 2*len(it.queue))
	more := false
	for i, p := range it.queue {
		if nil == p {
			continue
		}
		level[i] = Slot{
			Key:     p.key,
			Height:  p.height,
			Present: true,
		}
		next = append(next, p.left, p.right)
		if nil != p.left || nil != p.right {
			more = true
		}
	}

	if more {
		it.queue = next
	} else {
		// the next level would be placeholders only
		it.queue = nil
	}
	return level, true
}

// Levels - collect a complete level-order dump
func (tree *Tree) Levels() [][]Slot {
	levels := [][]Slot{}
	it := tree.LevelOrder()
	for {
		level, ok := it.Next()
		if !ok {
			return levels
		}
		levels = append(levels, level)
	}
}
