// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - sequences of tree operations
//
// A script is a list of steps, each an operation with zero or more
// integer keys.  On the command line it is written as words:
//
//   insert 10 7 4 2 3 dump remove 7 check dump
//
// operations:
//   insert KEY...  - add keys, duplicates are ignored
//   remove KEY...  - delete keys, missing keys are ignored
//   dump           - print the level-order dump of the tree
//   copy           - print the level-order dump of a deep copy
//   check          - verify the tree invariants
//   clear          - delete all nodes
package script
