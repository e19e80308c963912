// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/avl/mocks"
)

// collect every node pointer of a tree
func nodeSet(tree *avl.Tree) map[*avl.Node]struct{} {
	nodes := make(map[*avl.Node]struct{})
	var walk func(p *avl.Node)
	walk = func(p *avl.Node) {
		if nil == p {
			return
		}
		nodes[p] = struct{}{}
		walk(p.Left())
		walk(p.Right())
	}
	walk(tree.Root())
	return nodes
}

func TestCopyIsDeep(t *testing.T) {
	t1 := handBuilt()
	t2 := t1.Copy()

	assert.Equal(t, t1.Levels(), t2.Levels(), "copy differs")
	assert.Equal(t, t1.Count(), t2.Count(), "count")
	require.NoError(t, t2.Check(), "check copy")

	n1 := nodeSet(t1)
	for p := range nodeSet(t2) {
		if _, shared := n1[p]; shared {
			t.Fatalf("node: %d is shared", p.Key())
		}
	}
}

func TestCopyIndependence(t *testing.T) {
	t1 := build(10, 7, 4, 2, 3, 13, 16)
	original := t1.Levels()

	t2 := t1.Copy()
	t2.Insert(1)
	t2.Insert(20)
	t2.Remove(7)
	require.NoError(t, t2.Check(), "check copy")
	assert.Equal(t, original, t1.Levels(), "original changed by copy mutation")
	assert.Equal(t, 7, t1.Count(), "original count")

	copied := t2.Levels()
	t1.Remove(3)
	t1.Insert(99)
	assert.Equal(t, copied, t2.Levels(), "copy changed by original mutation")
	assert.Equal(t, 8, t2.Count(), "copy count")
}

func TestCopyEmpty(t *testing.T) {
	t2 := avl.New().Copy()
	assert.True(t, t2.IsEmpty(), "empty copy")
	t2.Insert(1)
	assert.Equal(t, 1, t2.Count(), "count")
}

func TestCopyDoesNotInheritObserver(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	m.EXPECT().Rotated(gomock.Any(), gomock.Any()).Times(0)

	t1 := build(1, 2)
	t1.SetObserver(m)
	t2 := t1.Copy()
	t2.Insert(3) // would rotate RR at 1
	require.NoError(t, t2.Check(), "check")
}

func TestMove(t *testing.T) {
	t1 := handBuilt()
	expected := t1.Levels()
	nodes := nodeSet(t1)

	t2 := t1.Move()

	assert.True(t, t1.IsEmpty(), "source not empty")
	assert.Equal(t, 0, t1.Count(), "source count")
	assert.Equal(t, [][]avl.Slot{}, t1.Levels(), "source levels")
	assert.Equal(t, expected, t2.Levels(), "moved levels")
	assert.Equal(t, 7, t2.Count(), "moved count")
	assert.Equal(t, nodes, nodeSet(t2), "nodes were reallocated")

	// the source remains usable
	t1.Insert(5)
	assert.Equal(t, 1, t1.Count(), "reuse source")
	assert.Equal(t, expected, t2.Levels(), "moved tree changed")
}

func TestAssign(t *testing.T) {
	src := handBuilt()
	dst := build(100, 200, 300, 400)

	dst.Assign(src)
	assert.Equal(t, src.Levels(), dst.Levels(), "assign levels")
	assert.Equal(t, src.Count(), dst.Count(), "assign count")
	assert.Nil(t, dst.Search(100), "old contents remain")

	dst.Insert(8)
	assert.Equal(t, 7, src.Count(), "source changed")
	assert.Nil(t, src.Search(8), "source has new key")

	// self assignment
	levels := dst.Levels()
	dst.Assign(dst)
	assert.Equal(t, levels, dst.Levels(), "self assign")
}

func TestClear(t *testing.T) {
	tree := build(5, 3, 8, 1, 4)
	old := tree.Root().Left()

	tree.Clear()
	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Nil(t, old.Left(), "stale node still linked")

	tree.Clear()
	assert.True(t, tree.IsEmpty(), "clear of empty tree")
}
