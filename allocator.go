// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"math"
	"unsafe"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
)

// Allocator moves blocks of element slots in and out of existence.
// It never constructs elements on behalf of a container; storage does that
// through Create and Destroy.
type Allocator[T any] interface {
	// Allocate returns a block of n slots, or ErrOutOfMemory.
	Allocate(n int) ([]T, error)
	// Deallocate releases a block returned by Allocate with the same n.
	Deallocate(block []T, n int) error
	// Raw reports whether allocated slots are unconstructed.
	Raw() bool
}

// maxAllocBytes bounds a single block: 1<<48 on 64-bit, 1<<31 on 32-bit.
const maxAllocBytes = 1 << (31 + 17*(^uint(0)>>63))

func checkAllocSize[T any](n int) error {
	if n < 0 {
		return errors.Wrapf(ErrOutOfMemory, "allocate: negative slot count %d", n)
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size != 0 && uintptr(n) > maxAllocBytes/size {
		return errors.Wrapf(ErrOutOfMemory, "allocate: %d slots of %d bytes", n, size)
	}
	return nil
}

// maxSlots returns the largest slot count a single block of T can hold.
func maxSlots[T any]() int {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return math.MaxInt
	}
	return int(min(maxAllocBytes/size, uintptr(math.MaxInt)))
}

func checkRelease[T any](block []T, n int) error {
	if len(block) != n {
		return errors.Wrapf(ErrInvalidArgument, "deallocate: block of %d slots released as %d", len(block), n)
	}
	return nil
}

// RawAllocator allocates unconstructed slots on the Go heap.
// It is the default allocator of heap storage and the only kind a Vector
// accepts.
type RawAllocator[T any] struct{}

// Raw returns true.
func (RawAllocator[T]) Raw() bool { return true }

// Allocate returns n zeroed, unconstructed slots.
func (RawAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkAllocSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate clears the block so the collector can reclaim what it referenced.
func (RawAllocator[T]) Deallocate(block []T, n int) error {
	if err := checkRelease(block, n); err != nil {
		return err
	}
	clear(block)
	return nil
}

// TypedAllocator allocates blocks whose every slot is default-constructed,
// and destroys every slot on release.
type TypedAllocator[T any] struct{}

// Raw returns false.
func (TypedAllocator[T]) Raw() bool { return false }

// Allocate returns n default-constructed slots. When a construction fails,
// the slots constructed so far are destroyed in reverse order and the
// failure is returned.
func (TypedAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkAllocSize[T](n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	block := make([]T, n)
	for i := range block {
		v, err := construct[T]()
		if err != nil {
			for j := i; j > 0; {
				j--
				err = multierr.Append(err, destroy(&block[j]))
			}
			return nil, err
		}
		block[i] = v
	}
	return block, nil
}

// Deallocate destroys every slot of the block in reverse order.
func (TypedAllocator[T]) Deallocate(block []T, n int) error {
	if err := checkRelease(block, n); err != nil {
		return err
	}
	var err error
	for i := len(block); i > 0; {
		i--
		err = multierr.Append(err, destroy(&block[i]))
	}
	return err
}

// EmptyAllocator stands for storage that owns its slots without delegating
// to an allocator. It has no allocation operations.
type EmptyAllocator[T any] struct{}

// Raw reports true: embedded slots start unconstructed.
func (EmptyAllocator[T]) Raw() bool { return true }
