// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/vec"
)

func TestRawAllocator(t *testing.T) {
	var a vec.RawAllocator[int64]
	assert.True(t, a.Raw())

	block, err := a.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 0, 0, 0}, block)
	block[1] = 5

	assert.ErrorIs(t, a.Deallocate(block, 3), vec.ErrInvalidArgument)
	require.NoError(t, a.Deallocate(block, 4))
	assert.Equal(t, int64(0), block[1])

	empty, err := a.Allocate(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
	require.NoError(t, a.Deallocate(empty, 0))
}

func TestAllocatorOutOfMemory(t *testing.T) {
	_, err := vec.RawAllocator[int64]{}.Allocate(-1)
	assert.ErrorIs(t, err, vec.ErrOutOfMemory)

	_, err = vec.RawAllocator[int64]{}.Allocate(math.MaxInt)
	assert.ErrorIs(t, err, vec.ErrOutOfMemory)

	_, err = vec.TypedAllocator[[64]byte]{}.Allocate(math.MaxInt / 2)
	assert.ErrorIs(t, err, vec.ErrOutOfMemory)

	v := new(vec.Vector[int64])
	assert.ErrorIs(t, v.Reserve(math.MaxInt), vec.ErrOutOfMemory)
	assert.Equal(t, 0, v.Cap())
}

func TestTypedAllocatorConstructsEverySlot(t *testing.T) {
	l := newLab(t)
	var a vec.TypedAllocator[widget]
	assert.False(t, a.Raw())

	block, err := a.Allocate(3)
	require.NoError(t, err)
	assert.Equal(t, 3, l.inits)
	assert.Equal(t, 3, l.live)
	for _, w := range block {
		assert.True(t, w.alive)
	}

	require.NoError(t, a.Deallocate(block, 3))
	assert.Equal(t, 0, l.live)
	assert.Equal(t, 3, l.destroys)
}

func TestTypedAllocatorRollsBack(t *testing.T) {
	l := newLab(t)
	l.failInit = 3

	_, err := vec.TypedAllocator[widget]{}.Allocate(5)
	require.ErrorIs(t, err, errInit)
	assert.Equal(t, 0, l.live)
	assert.Equal(t, 2, l.destroys)
}

func TestTypedAllocatorReportsDestroyFailures(t *testing.T) {
	l := newLab(t)
	var a vec.TypedAllocator[widget]
	block, err := a.Allocate(3)
	require.NoError(t, err)

	l.failDestroy = 2
	require.ErrorIs(t, a.Deallocate(block, 3), errDestroy)
	assert.Equal(t, 0, l.live)
}

func TestEmptyAllocator(t *testing.T) {
	assert.True(t, vec.EmptyAllocator[int]{}.Raw())
}

func TestVectorMaxSizeZeroSized(t *testing.T) {
	assert.Equal(t, math.MaxInt, new(vec.Vector[struct{}]).MaxSize())
	assert.Greater(t, new(vec.BitVector).MaxSize(), new(vec.Vector[byte]).MaxSize())
}

func TestVectorHugeSizesFailWithOutOfMemory(t *testing.T) {
	v, err := vec.Of(7)
	require.NoError(t, err)
	for _, n := range []int{1 << 61, 1 << 62, math.MaxInt} {
		_, err := v.InsertN(v.End(), n, 0)
		require.ErrorIs(t, err, vec.ErrOutOfMemory, "InsertN(%d)", n)
	}
	require.ErrorIs(t, v.Resize(math.MaxInt), vec.ErrOutOfMemory)
	assert.Equal(t, []int{7}, v.Data())
	assert.LessOrEqual(t, v.Len(), v.Cap())

	z, err := vec.NewN[struct{}](1)
	require.NoError(t, err)
	_, err = z.InsertN(z.End(), math.MaxInt, struct{}{})
	require.ErrorIs(t, err, vec.ErrOutOfMemory)
	assert.Equal(t, 1, z.Len())
}

func TestBitVectorHugeSizesFailWithOutOfMemory(t *testing.T) {
	v, err := vec.BitsOf(true)
	require.NoError(t, err)

	for _, n := range []int{v.MaxSize() + 1, math.MaxInt - 3, math.MaxInt} {
		require.ErrorIs(t, v.Resize(n), vec.ErrOutOfMemory, "Resize(%d)", n)
		require.ErrorIs(t, v.Reserve(n), vec.ErrOutOfMemory, "Reserve(%d)", n)
	}
	for _, n := range []int{1 << 61, 1 << 62, math.MaxInt} {
		_, err := v.InsertN(v.End(), n, true)
		require.ErrorIs(t, err, vec.ErrOutOfMemory, "InsertN(%d)", n)
	}

	assert.Equal(t, 1, v.Len())
	assert.LessOrEqual(t, v.Len(), v.Cap())
	b, err := v.Get(0)
	require.NoError(t, err)
	assert.True(t, b)
}
