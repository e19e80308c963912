// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node struct {
	left   *Node // left sub-tree
	right  *Node // right sub-tree
	key    int   // key part for ordering
	height int   // longest path to a leaf, -1 for an empty sub-tree
}

// NewNode - create a detached node owning the given sub-trees
//
// the height is computed from the children, the caller is responsible
// for the ordering and balance of a hand built tree (see NewFromRoot
// and Check)
func NewNode(key int, left *Node, right *Node) *Node {
	p := &Node{
		left:  left,
		right: right,
		key:   key,
	}
	p.updateHeight()
	return p
}

// allocate a new leaf node
func newNode(key int) *Node {
	return &Node{
		key:    key,
		height: 0,
	}
}

// release a node that has been unlinked from the tree
//
// links are cleared so that a stale pointer held by a caller does
// not keep a detached sub-tree alive
func freeNode(p *Node) {
	p.left = nil
	p.right = nil
	p.height = -1
}

// height of a possibly empty sub-tree
func height(p *Node) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from the children
func (p *Node) updateHeight() {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}
