// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Copy - create an independent deep copy of the tree
//
// the copy has identical keys, heights and shape but shares no nodes
// with the original; the observer is not copied
func (tree *Tree) Copy() *Tree {
	return &Tree{
		root:  clone(tree.root),
		count: tree.count,
	}
}

// Move - transfer all nodes to a new tree, leaving this one empty
func (tree *Tree) Move() *Tree {
	t := &Tree{
		root:     tree.root,
		count:    tree.count,
		observer: tree.observer,
	}
	tree.root = nil
	tree.count = 0
	return t
}

// Assign - replace the contents of the tree by a deep copy of src
func (tree *Tree) Assign(src *Tree) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.root = clone(src.root)
	tree.count = src.count
}

// Clear - delete every node leaving an empty tree
func (tree *Tree) Clear() {
	if nil == tree.root {
		return
	}

	// iterative so that no shape of tree can exhaust the stack
	stack := []*Node{tree.root}
	for len(stack) > 0 {
		top := len(stack) - 1
		p := stack[top]
		stack = stack[:top]
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		freeNode(p)
	}
	tree.root = nil
	tree.count = 0
}

// internal: structural clone of a sub-tree
func clone(src *Node) *Node {
	if nil == src {
		return nil
	}

	type pair struct {
		from *Node
		to   *Node
	}

	dst := &Node{key: src.key, height: src.height}
	stack := []pair{{from: src, to: dst}}
	for len(stack) > 0 {
		top := len(stack) - 1
		p := stack[top]
		stack = stack[:top]

		if l := p.from.left; nil != l {
			p.to.left = &Node{key: l.key, height: l.height}
			stack = append(stack, pair{from: l, to: p.to.left})
		}
		if r := p.from.right; nil != r {
			p.to.right = &Node{key: r.key, height: r.height}
			stack = append(stack, pair{from: r, to: p.to.right})
		}
	}
	return dst
}
