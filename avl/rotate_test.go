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

func present(key int, height int) avl.Slot {
	return avl.Slot{Key: key, Height: height, Present: true}
}

var absent = avl.Slot{}

func TestRotationNames(t *testing.T) {
	assert.Equal(t, "LL", avl.RotateLL.String(), "LL")
	assert.Equal(t, "RR", avl.RotateRR.String(), "RR")
	assert.Equal(t, "LR", avl.RotateLR.String(), "LR")
	assert.Equal(t, "RL", avl.RotateRL.String(), "RL")
	assert.Equal(t, "??", avl.Rotation(99).String(), "unknown")
}

func TestRotateLL(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	m.EXPECT().Rotated(avl.RotateLL, 10).Times(1)

	tree := avl.New()
	tree.SetObserver(m)
	for _, key := range []int{10, 7, 4} {
		tree.Insert(key)
	}

	require.NoError(t, tree.Check(), "check")
	root := tree.Root()
	assert.Equal(t, 7, root.Key(), "root")
	assert.Equal(t, 4, root.Left().Key(), "left")
	assert.Equal(t, 10, root.Right().Key(), "right")
	assert.Equal(t, [][]avl.Slot{
		{present(7, 1)},
		{present(4, 0), present(10, 0)},
	}, tree.Levels(), "levels")
}

func TestRotateLR(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	gomock.InOrder(
		m.EXPECT().Rotated(avl.RotateLL, 10),
		m.EXPECT().Rotated(avl.RotateLR, 4),
	)

	tree := avl.New()
	tree.SetObserver(m)
	for _, key := range []int{10, 7, 4, 2, 3} {
		tree.Insert(key)
	}

	require.NoError(t, tree.Check(), "check")
	assert.Equal(t, []int{2, 3, 4, 7, 10}, inOrder(tree), "in-order")
	assert.Equal(t, [][]avl.Slot{
		{present(7, 2)},
		{present(3, 1), present(10, 0)},
		{present(2, 0), present(4, 0), absent, absent},
	}, tree.Levels(), "levels")
}

func TestRotateRRAndRL(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	gomock.InOrder(
		m.EXPECT().Rotated(avl.RotateLL, 10),
		m.EXPECT().Rotated(avl.RotateLR, 4),
		m.EXPECT().Rotated(avl.RotateRR, 10),
		m.EXPECT().Rotated(avl.RotateRL, 16),
	)

	tree := avl.New()
	tree.SetObserver(m)
	for _, key := range []int{10, 7, 4, 2, 3, 13, 16} {
		tree.Insert(key)
	}
	require.NoError(t, tree.Check(), "check")
	assert.Equal(t, [][]avl.Slot{
		{present(7, 2)},
		{present(3, 1), present(13, 1)},
		{present(2, 0), present(4, 0), present(10, 0), present(16, 0)},
	}, tree.Levels(), "levels after RR")

	// 16 is a duplicate, 19 makes 13 right heavy, 17 needs RL at 16
	for _, key := range []int{16, 19, 17} {
		tree.Insert(key)
	}
	require.NoError(t, tree.Check(), "check")
	assert.Equal(t, []int{2, 3, 4, 7, 10, 13, 16, 17, 19}, inOrder(tree), "in-order")
	assert.Equal(t, [][]avl.Slot{
		{present(7, 3)},
		{present(3, 1), present(13, 2)},
		{present(2, 0), present(4, 0), present(10, 0), present(17, 1)},
		{absent, absent, absent, absent, absent, absent, present(16, 0), present(19, 0)},
	}, tree.Levels(), "levels after RL")
}

func TestRotationOnDelete(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	tree := avl.New()
	for _, key := range []int{20, 10, 30, 25} {
		tree.Insert(key)
	}

	// removing 10 leaves 20 right heavy with 30 left heavy
	m.EXPECT().Rotated(avl.RotateRL, 20).Times(1)
	tree.SetObserver(m)

	require.True(t, tree.Remove(10), "remove")
	require.NoError(t, tree.Check(), "check")
	assert.Equal(t, [][]avl.Slot{
		{present(25, 1)},
		{present(20, 0), present(30, 0)},
	}, tree.Levels(), "levels")
}

// single rotation on delete where the sibling is evenly balanced
func TestRotationOnDeleteEvenSibling(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	tree := avl.New()
	for _, key := range []int{20, 10, 30, 5, 15} {
		tree.Insert(key)
	}

	m.EXPECT().Rotated(avl.RotateLL, 20).Times(1)
	tree.SetObserver(m)

	tree.Remove(30)
	require.NoError(t, tree.Check(), "check")
	assert.Equal(t, [][]avl.Slot{
		{present(10, 2)},
		{present(5, 0), present(20, 1)},
		{absent, absent, present(15, 0), absent},
	}, tree.Levels(), "levels")
}

func TestNoObserver(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	m.EXPECT().Rotated(gomock.Any(), gomock.Any()).Times(0)

	tree := avl.New()
	tree.SetObserver(m)
	tree.SetObserver(nil)
	for _, key := range []int{1, 2, 3, 4, 5} {
		tree.Insert(key)
	}
	require.NoError(t, tree.Check(), "check")
}
