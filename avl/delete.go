// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific key from the tree
//
// returns true if a node was removed, a key that is not present
// (including any key of an empty tree) is ignored
func (tree *Tree) Remove(key int) bool {
	removed := false
	tree.root, removed = tree.remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the possibly updated sub-tree root
func (tree *Tree) remove(key int, p *Node) (*Node, bool) {
	if nil == p { // key not in tree
		return nil, false
	}
	removed := false
	switch {
	case key < p.key:
		p.left, removed = tree.remove(key, p.left)
	case key > p.key:
		p.right, removed = tree.remove(key, p.right)
	default: // found: delete p
		if nil == p.left || nil == p.right {
			// leaf or single child: the child (possibly nil)
			// takes the place of p
			q := p.left
			if nil == q {
				q = p.right
			}
			freeNode(p)
			return q, true
		}

		// two children: take over the key of the in-order
		// successor then delete the successor, which has no left
		// child
		s := p.right.first()
		p.key = s.key
		p.right, removed = tree.remove(s.key, p.right)
	}
	p = tree.rebalance(p)
	p.updateHeight()
	return p, removed
}
