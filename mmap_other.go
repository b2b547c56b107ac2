// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin)

package vec

import (
	"github.com/cockroachdb/errors"
)

// MmapAllocator is not available on this platform: every allocation fails
// with ErrUnsupported.
type MmapAllocator[T any] struct{}

// Raw returns true.
func (MmapAllocator[T]) Raw() bool { return true }

// Allocate fails with ErrUnsupported unless n is zero.
func (MmapAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkAllocSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return nil, errors.Wrap(ErrUnsupported, "mmap")
}

// Deallocate accepts only the empty block.
func (MmapAllocator[T]) Deallocate(block []T, n int) error {
	if err := checkRelease(block, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return errors.Wrap(ErrUnsupported, "munmap")
}
