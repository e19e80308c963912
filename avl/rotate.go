// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Rotation - the four rebalancing cases, named by the shape of the
// imbalance
type Rotation int

// rotation kinds
const (
	RotateLL Rotation = iota // single right rotation
	RotateRR Rotation = iota // single left rotation
	RotateLR Rotation = iota // left then right
	RotateRL Rotation = iota // right then left
)

// String - the conventional two letter name
func (r Rotation) String() string {
	switch r {
	case RotateLL:
		return "LL"
	case RotateRR:
		return "RR"
	case RotateLR:
		return "LR"
	case RotateRL:
		return "RL"
	default:
		return "??"
	}
}

// Observer - receives a call for each rotation performed
//
// pivot is the key of the node that was found out of balance
type Observer interface {
	Rotated(kind Rotation, pivot int)
}

// restore the balance of p whose sub-trees are already balanced and
// differ in height by at most two, returns the new sub-tree root
func (tree *Tree) rebalance(p *Node) *Node {
	bf := p.BalanceFactor()
	if bf < -1 {
		// right branch too high
		if p.right.BalanceFactor() <= 0 {
			tree.rotated(RotateRR, p.key)
			return rotateRR(p)
		}
		tree.rotated(RotateRL, p.key)
		return rotateRL(p)
	}
	if bf > 1 {
		// left branch too high
		if p.left.BalanceFactor() >= 0 {
			tree.rotated(RotateLL, p.key)
			return rotateLL(p)
		}
		tree.rotated(RotateLR, p.key)
		return rotateLR(p)
	}
	return p
}

func (tree *Tree) rotated(kind Rotation, pivot int) {
	if nil != tree.observer {
		tree.observer.Rotated(kind, pivot)
	}
}

// single LL rotation
func rotateLL(p *Node) *Node {
	p1 := p.left

	p.left = p1.right
	p1.right = p

	p.updateHeight()
	p1.updateHeight()
	return p1
}

// single RR rotation
func rotateRR(p *Node) *Node {
	p1 := p.right

	p.right = p1.left
	p1.left = p

	p.updateHeight()
	p1.updateHeight()
	return p1
}

// double LR rotation
func rotateLR(p *Node) *Node {
	p1 := p.left
	p2 := p1.right

	p1.right = p2.left
	p.left = p2.right
	p2.left = p1
	p2.right = p

	p1.updateHeight()
	p.updateHeight()
	p2.updateHeight()
	return p2
}

// double RL rotation
func rotateRL(p *Node) *Node {
	p1 := p.right
	p2 := p1.left

	p.right = p2.left
	p1.left = p2.right
	p2.left = p
	p2.right = p1

	p.updateHeight()
	p1.updateHeight()
	p2.updateHeight()
	return p2
}
