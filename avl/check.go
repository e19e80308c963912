// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify key order, balance, cached heights and node count
//
// returns nil for a consistent tree, otherwise a fault.ProcessError
// wrapped with the key of the first failing node
func (tree *Tree) Check() error {
	n, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: actual: %d  expected: %d", fault.ErrIncorrectCount, n, tree.count)
	}
	return nil
}

// internal: consistency checker, keys of p must lie strictly between
// the keys of the bounding nodes lower and upper (nil means unbounded)
// returns the number of nodes in the sub-tree
func check(p *Node, lower *Node, upper *Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	if nil != lower && p.key <= lower.key {
		return 0, fmt.Errorf("%w: node: %d  must be greater than: %d", fault.ErrOrderViolation, p.key, lower.key)
	}
	if nil != upper && p.key >= upper.key {
		return 0, fmt.Errorf("%w: node: %d  must be less than: %d", fault.ErrOrderViolation, p.key, upper.key)
	}

	nl, err := check(p.left, lower, p)
	if nil != err {
		return 0, err
	}
	nr, err := check(p.right, p, upper)
	if nil != err {
		return 0, err
	}

	h := height(p.left)
	if hr := height(p.right); hr > h {
		h = hr
	}
	h += 1
	if h != p.height {
		return 0, fmt.Errorf("%w: node: %d  actual: %d  expected: %d", fault.ErrIncorrectHeight, p.key, p.height, h)
	}
	if bf := p.BalanceFactor(); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: node: %d  balance: %+d", fault.ErrUnbalancedNode, p.key, bf)
	}
	return 1 + nl + nr, nil
}
