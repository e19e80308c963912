// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree of integer keys using cached
// subtree heights
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Heights follow the convention that an empty subtree has height -1,
// so a leaf has height 0.  After every Insert or Remove each node on
// the search path is rebalanced with one of the four rotations (LL,
// RR, LR, RL) and then has its height recomputed.
//
// Each node exclusively owns its two subtrees; Copy produces a deep
// clone that shares no nodes with the source, and Move transfers the
// nodes to a new tree leaving the source empty.
//
// A *Node obtained from Root or Search is only valid until the next
// mutation of the tree.
package avl
