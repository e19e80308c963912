// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/avltree/avl"
)

// absent positions are shown as this
const placeholder = "*"

// Render - console form of a level-order dump, one line per level,
// each entry followed by two spaces
//
// with heights set, present entries are shown as key(height)
func Render(w io.Writer, levels [][]avl.Slot, heights bool) error {
	for _, level := range levels {
		for _, s := range level {
			var err error
			switch {
			case !s.Present:
				_, err = fmt.Fprintf(w, "%s  ", placeholder)
			case heights:
				_, err = fmt.Fprintf(w, "%d(%d)  ", s.Key, s.Height)
			default:
				_, err = fmt.Fprintf(w, "%d  ", s.Key)
			}
			if nil != err {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); nil != err {
			return err
		}
	}
	return nil
}
