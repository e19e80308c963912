// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// position of a node relative to its parent
type branch int

const (
	root branch = iota
	left
	right
)

// line drawn in front of a node's key
var connector = [...]string{
	root:  "|------+ ",
	left:  "\\------+ ",
	right: "/------+ ",
}

const (
	indent     = "       "
	indentLine = "|      "
)

// Print - display an ASCII graphic representation of the tree, right
// sub-trees above left ones, each node as: key h:height balance
//
// returns the number of levels printed
func (tree *Tree) Print(w io.Writer) int {
	p := printer{w: w}
	return p.subtree(tree.root, "", root)
}

type printer struct {
	w io.Writer
}

// returns the depth of the subtree
func (p printer) subtree(node *Node, prefix string, br branch) int {
	if nil == node {
		return 0
	}

	// a vertical line continues past a child on the far side
	rightPrefix, leftPrefix := prefix+indent, prefix+indent
	switch br {
	case left:
		rightPrefix = prefix + indentLine
	case right:
		leftPrefix = prefix + indentLine
	}

	rd := p.subtree(node.right, rightPrefix, right)
	fmt.Fprintf(p.w, "%s%s%d h:%d %+d\n", prefix, connector[br], node.key, node.height, node.BalanceFactor())
	ld := p.subtree(node.left, leftPrefix, left)

	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
