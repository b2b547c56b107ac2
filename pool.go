// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"math/bits"
	"sync"
)

// maxPoolClass is the largest pooled block: 1<<maxPoolClass slots.
const maxPoolClass = 20

// PoolAllocator recycles released blocks through sync.Pool, one pool per
// power-of-two slot count. The growth policy produces power-of-two
// capacities, so vectors that grow and shrink mostly hit the pools.
// Blocks of other sizes come from and return to the Go heap.
//
// The zero value is ready to use. A PoolAllocator must not be copied after
// first use.
type PoolAllocator[T any] struct {
	pools [maxPoolClass + 1]sync.Pool
}

var _ Allocator[int] = (*PoolAllocator[int])(nil)

// poolClass returns the pool of n slots, or false when n is not pooled.
func poolClass(n int) (int, bool) {
	if n <= 0 || n&(n-1) != 0 {
		return 0, false
	}
	c := bits.TrailingZeros(uint(n))
	return c, c <= maxPoolClass
}

// Raw returns true: pooled blocks are cleared on release.
func (p *PoolAllocator[T]) Raw() bool { return true }

// Allocate returns n zeroed slots, reusing a released block when one of the
// same size is pooled.
func (p *PoolAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkAllocSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if c, ok := poolClass(n); ok {
		if b, _ := p.pools[c].Get().(*[]T); b != nil {
			return *b, nil
		}
	}
	return make([]T, n), nil
}

// Deallocate clears the block and pools it when its size is pooled.
func (p *PoolAllocator[T]) Deallocate(block []T, n int) error {
	if err := checkRelease(block, n); err != nil {
		return err
	}
	clear(block)
	if c, ok := poolClass(n); ok {
		block = block[:n:n]
		p.pools[c].Put(&block)
	}
	return nil
}
