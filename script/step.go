// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/avltree/fault"
)

// the operation names
const (
	Insert = "insert"
	Remove = "remove"
	Dump   = "dump"
	Copy   = "copy"
	Check  = "check"
	Clear  = "clear"
)

// true if the operation needs keys, false if it must not have any
var operations = map[string]bool{
	Insert: true,
	Remove: true,
	Dump:   false,
	Copy:   false,
	Check:  false,
	Clear:  false,
}

// Step - a single operation
type Step struct {
	Op   string
	Keys []int
}

// StepConfiguration - a step as written in the configuration file
type StepConfiguration struct {
	Op   string `gluamapper:"op" json:"op"`
	Keys []int  `gluamapper:"keys" json:"keys"`
}

// Parse - convert command line words to a list of steps
func Parse(words []string) ([]Step, error) {
	steps := make([]Step, 0, len(words))
	for _, word := range words {
		if isNumeric(word) {
			key, err := strconv.Atoi(word)
			if nil != err {
				return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKey, word)
			}
			if 0 == len(steps) {
				return nil, fmt.Errorf("%w: key: %d before any operation", fault.ErrUnexpectedKey, key)
			}
			last := &steps[len(steps)-1]
			last.Keys = append(last.Keys, key)
			continue
		}
		if _, ok := operations[word]; !ok {
			return nil, fmt.Errorf("%w: %q", fault.ErrUnknownOperation, word)
		}
		steps = append(steps, Step{Op: word})
	}

	if err := validate(steps); nil != err {
		return nil, err
	}
	return steps, nil
}

// FromConfiguration - convert configuration entries to a list of steps
func FromConfiguration(config []StepConfiguration) ([]Step, error) {
	steps := make([]Step, 0, len(config))
	for _, c := range config {
		if _, ok := operations[c.Op]; !ok {
			return nil, fmt.Errorf("%w: %q", fault.ErrUnknownOperation, c.Op)
		}
		steps = append(steps, Step{
			Op:   c.Op,
			Keys: c.Keys,
		})
	}

	if err := validate(steps); nil != err {
		return nil, err
	}
	return steps, nil
}

// String - the step as command line words
func (s Step) String() string {
	text := s.Op
	for _, key := range s.Keys {
		text += " " + strconv.Itoa(key)
	}
	return text
}

// check each operation has keys only if it needs them
func validate(steps []Step) error {
	for _, s := range steps {
		needsKeys := operations[s.Op]
		if needsKeys && 0 == len(s.Keys) {
			return fmt.Errorf("%w: %s", fault.ErrKeysRequired, s.Op)
		}
		if !needsKeys && 0 != len(s.Keys) {
			return fmt.Errorf("%w: %s", fault.ErrUnexpectedKey, s)
		}
	}
	return nil
}

// a word starting with a digit, or a sign followed by a digit
func isNumeric(word string) bool {
	if "" == word {
		return false
	}
	if '-' == word[0] || '+' == word[0] {
		word = word[1:]
	}
	return "" != word && word[0] >= '0' && word[0] <= '9'
}
