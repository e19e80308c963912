// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root     *Node
	count    int
	observer Observer
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// NewFromRoot - create a tree that takes ownership of a hand built
// sub-tree
//
// the nodes are adopted as is, no rebalancing is done
func NewFromRoot(root *Node) *Tree {
	return &Tree{
		root:  root,
		count: countNodes(root),
	}
}

// SetObserver - install a hook to be called on every rotation, nil
// removes the hook
func (tree *Tree) SetObserver(observer Observer) {
	tree.observer = observer
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Key - read the key from a node item
func (p *Node) Key() int {
	return p.key
}

// Height - cached height of the node, -1 for a nil node
func (p *Node) Height() int {
	return height(p)
}

// Left - left sub-tree, nil if absent
func (p *Node) Left() *Node {
	if nil == p {
		return nil
	}
	return p.left
}

// Right - right sub-tree, nil if absent
func (p *Node) Right() *Node {
	if nil == p {
		return nil
	}
	return p.right
}

// BalanceFactor - height of left sub-tree minus height of right
// sub-tree, zero for a nil node
func (p *Node) BalanceFactor() int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}

// iterative node count of a sub-tree
func countNodes(p *Node) int {
	if nil == p {
		return 0
	}
	n := 0
	stack := []*Node{p}
	for len(stack) > 0 {
		top := len(stack) - 1
		p := stack[top]
		stack = stack[:top]
		n += 1
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
	}
	return n
}
