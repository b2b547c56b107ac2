// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/vec"
)

func TestArrayBounds(t *testing.T) {
	for name, st := range map[string]vec.Storage[int]{
		"embedded": vec.NewEmbedded[int](4),
		"heap":     mustHeap[int](t, 4),
	} {
		t.Run(name, func(t *testing.T) {
			a := vec.NewArray(st)
			assert.Equal(t, 4, a.MaxSize())
			assert.True(t, a.Empty())
			assert.ErrorIs(t, a.Set(0, 1), vec.ErrOutOfRange)

			require.NoError(t, a.Resize(4))
			assert.Equal(t, []int{0, 0, 0, 0}, a.Data())
			assert.ErrorIs(t, a.Resize(5), vec.ErrOutOfRange)
			assert.ErrorIs(t, a.Resize(-1), vec.ErrOutOfRange)
			assert.Equal(t, 4, a.Len())

			require.NoError(t, a.Set(3, 9))
			back, err := a.Back()
			require.NoError(t, err)
			assert.Equal(t, 9, *back)
			_, err = a.At(4)
			assert.ErrorIs(t, err, vec.ErrOutOfRange)
			assert.Same(t, st, a.Storage())
		})
	}
}

func mustHeap[T any](t *testing.T, n int) *vec.Heap[T] {
	t.Helper()
	h, err := vec.NewHeap[T](n, nil)
	require.NoError(t, err)
	return h
}

func TestArrayConstructors(t *testing.T) {
	a, err := vec.NewArrayOf(vec.NewEmbedded[string](3), "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, slices.Collect(a.Values()))

	_, err = vec.NewArrayOf(vec.NewEmbedded[string](1), "x", "y")
	assert.ErrorIs(t, err, vec.ErrOutOfRange)

	f, err := vec.NewArrayFill(vec.NewEmbedded[int](3), 3, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7}, f.Data())

	n, err := vec.NewArrayN[int](vec.NewEmbedded[int](3), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n.Len())

	_, err = vec.NewArrayN[int](vec.NewEmbedded[int](3), 4)
	assert.ErrorIs(t, err, vec.ErrOutOfRange)
}

func TestArrayAssignTooMany(t *testing.T) {
	a, err := vec.NewArrayOf(vec.NewEmbedded[int](2), 1, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Assign(1, 2, 3), vec.ErrOutOfRange)
	assert.Equal(t, []int{1, 2}, a.Data())

	require.NoError(t, a.Assign(5))
	assert.Equal(t, []int{5}, a.Data())
}

func TestArrayCopyMove(t *testing.T) {
	src, err := vec.NewArrayOf(vec.NewEmbedded[int](3), 1, 2, 3)
	require.NoError(t, err)

	c, err := src.Clone(mustHeap[int](t, 3))
	require.NoError(t, err)
	require.NoError(t, c.Set(0, 10))
	assert.Equal(t, []int{1, 2, 3}, src.Data())

	_, err = src.Clone(vec.NewEmbedded[int](2))
	assert.ErrorIs(t, err, vec.ErrOutOfRange)

	m, err := src.MoveTo(vec.NewEmbedded[int](3))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, m.Data())
	assert.Equal(t, 0, src.Len())

	small := vec.NewArray[int](vec.NewEmbedded[int](2))
	assert.ErrorIs(t, small.MoveFrom(m), vec.ErrOutOfRange)
	assert.ErrorIs(t, small.CopyFrom(m), vec.ErrOutOfRange)
	assert.Equal(t, 3, m.Len())

	require.NoError(t, c.CopyFrom(m))
	assert.Equal(t, []int{1, 2, 3}, c.Data())
	require.NoError(t, c.CopyFrom(c))
	require.NoError(t, c.MoveFrom(c))
	assert.Equal(t, []int{1, 2, 3}, c.Data())
}

func TestArrayWidgetLifecycle(t *testing.T) {
	l := newLab(t)

	a, err := vec.NewArrayFill(vec.NewEmbedded[widget](4), 2, widget{v: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, l.live)

	require.NoError(t, a.Resize(4))
	assert.Equal(t, 4, l.live)
	assert.Equal(t, 2, l.inits)

	m, err := a.MoveTo(vec.NewEmbedded[widget](4))
	require.NoError(t, err)
	assert.Equal(t, 4, l.live)
	assert.Equal(t, 0, l.destroys)

	require.NoError(t, m.Resize(1))
	assert.Equal(t, 1, l.live)

	l.failClone = l.clones + 2
	require.ErrorIs(t, m.Assign(widgets(1, 2, 3)...), errClone)
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 0, l.live)

	l.failDestroy = l.destroys + 1
	require.NoError(t, m.Assign(widgets(4, 5)...))
	m.Clear()
	assert.Equal(t, 0, l.live)
}

func TestBitArray(t *testing.T) {
	a, err := vec.NewBitArray(vec.NewEmbedded[byte](2), 12)
	require.NoError(t, err)
	assert.Equal(t, 12, a.MaxSize())

	require.NoError(t, a.Resize(12))
	for i := range 12 {
		require.NoError(t, a.Set(i, i%4 == 0))
	}
	assert.Equal(t, []byte{0b0001_0001, 0b0001}, a.Data())

	assert.ErrorIs(t, a.Resize(13), vec.ErrOutOfRange)
	assert.ErrorIs(t, a.Set(12, true), vec.ErrOutOfRange)

	require.NoError(t, a.Resize(1))
	require.NoError(t, a.Resize(12))
	assert.Equal(t, []byte{0b1, 0}, a.Data())

	back, err := a.Back()
	require.NoError(t, err)
	back.Set(true)
	front, err := a.Front()
	require.NoError(t, err)
	front.Set(false)
	assert.Equal(t, []byte{0, 0b1000}, a.Data())
}

func TestBitArrayStorageTooSmall(t *testing.T) {
	_, err := vec.NewBitArray(vec.NewEmbedded[byte](1), 9)
	assert.ErrorIs(t, err, vec.ErrOutOfRange)
	_, err = vec.NewBitArray(vec.NewEmbedded[byte](1), -1)
	assert.ErrorIs(t, err, vec.ErrOutOfRange)
}

func TestBitArrayClearsBorrowedStorage(t *testing.T) {
	buf := []byte{0xFF, 0xFF}
	a, err := vec.NewBitArray(vec.EmbeddedOver(buf), 16)
	require.NoError(t, err)
	require.NoError(t, a.Resize(16))
	assert.Equal(t, []byte{0, 0}, a.Data())
}

func TestBitArrayCopyMove(t *testing.T) {
	a, err := vec.NewBitArrayOf(vec.NewEmbedded[byte](1), 8, true, false, true)
	require.NoError(t, err)

	c, err := a.Clone(vec.NewEmbedded[byte](1))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, slices.Collect(c.Values()))

	m, err := a.MoveTo(vec.NewEmbedded[byte](1))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, slices.Collect(m.Values()))
	assert.True(t, a.Empty())

	assert.ErrorIs(t, a.Assign(make([]bool, 9)...), vec.ErrOutOfRange)

	small, err := vec.NewBitArray(vec.NewEmbedded[byte](1), 2)
	require.NoError(t, err)
	assert.ErrorIs(t, small.CopyFrom(m), vec.ErrOutOfRange)

	f, err := vec.NewBitArrayFill(vec.NewEmbedded[byte](1), 8, 5, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0b1_1111}, f.Data())

	cr, err := f.ConstRef(4)
	require.NoError(t, err)
	f.RefUnchecked(4).Set(false)
	assert.False(t, cr.Get())

	var idx []int
	for i, b := range f.All() {
		if b {
			idx = append(idx, i)
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3}, idx)
}
