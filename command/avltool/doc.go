// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avltool - build an AVL tree from a script and print its
// level-order dump
//
// the script comes from the "steps" table of a Lua configuration
// file, followed by any command line words, e.g.:
//
//   avltool insert 10 7 4 2 3 dump remove 7 dump
//   avltool --config-file=avltool.conf --watch
//
// with --watch the configuration file is re-read and the script
// re-run every time the file is saved
package main
