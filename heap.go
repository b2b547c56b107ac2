// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Heap owns one block of slots obtained from an allocator and can move
// its live prefix into a block of another size.
//
// The zero value is an empty heap over RawAllocator.
//
// With a typed allocator every slot of the block holds a constructed element
// at all times: Create replaces the occupant and Destroy re-constructs a
// default occupant after destroying the element.
type Heap[T any] struct {
	alloc Allocator[T]
	data  []T
}

// NewHeap returns heap storage with the given initial capacity.
// A nil alloc selects RawAllocator.
func NewHeap[T any](capacity int, alloc Allocator[T]) (*Heap[T], error) {
	s := &Heap[T]{alloc: alloc}
	if capacity > 0 {
		block, err := s.allocator().Allocate(capacity)
		if err != nil {
			return nil, err
		}
		s.data = block
	}
	return s, nil
}

func (s *Heap[T]) allocator() Allocator[T] {
	if s.alloc == nil {
		s.alloc = RawAllocator[T]{}
	}
	return s.alloc
}

func (s *Heap[T]) typed() bool { return !s.allocator().Raw() }

// Allocator returns the allocator backing the block.
func (s *Heap[T]) Allocator() Allocator[T] { return s.allocator() }

// Create places v into slot i.
func (s *Heap[T]) Create(i int, v T) {
	if s.typed() {
		swallow("heap.Create", destroy(&s.data[i]))
	}
	s.data[i] = v
}

// Destroy destroys the element in slot i.
func (s *Heap[T]) Destroy(i int) error {
	err := destroy(&s.data[i])
	if s.typed() {
		v, cerr := construct[T]()
		if cerr != nil {
			return multierr.Append(err, cerr)
		}
		s.data[i] = v
	}
	return err
}

// At returns slot i.
func (s *Heap[T]) At(i int) *T { return &s.data[i] }

// Data returns all slots.
func (s *Heap[T]) Data() []T { return s.data }

// Cap returns the number of slots in the block.
func (s *Heap[T]) Cap() int { return len(s.data) }

// Reallocate adopts a block of newCap slots. The count elements starting at
// from are moved to the same offsets of the new block; the old block, with
// whatever it still holds, is released. It is a no-op when newCap equals the
// current capacity, and fails with ErrInvalidArgument when the new block
// cannot hold [from, from+count).
func (s *Heap[T]) Reallocate(newCap, count, from int) error {
	if newCap == len(s.data) {
		return nil
	}
	if from < 0 || count < 0 || from+count > len(s.data) {
		return errors.Wrapf(ErrInvalidArgument,
			"heap.Reallocate: range [%d, %d) outside capacity == %d", from, from+count, len(s.data))
	}
	if newCap < from+count {
		return errors.Wrapf(ErrInvalidArgument,
			"heap.Reallocate: new capacity == %d is less than from + count == %d", newCap, from+count)
	}
	alloc := s.allocator()
	block, err := alloc.Allocate(newCap)
	if err != nil {
		return err
	}
	typed := !alloc.Raw()
	for i := from; i < from+count; i++ {
		if typed {
			swallow("heap.Reallocate", destroy(&block[i]))
		}
		relocate(&block[i], &s.data[i])
	}
	old := s.data
	s.data = block
	Logger().Debug("vec: heap reallocated",
		zap.Int("old_cap", len(old)),
		zap.Int("new_cap", newCap),
		zap.Int("moved", count),
	)
	return alloc.Deallocate(old, len(old))
}

// Swap exchanges blocks and allocators with other in constant time.
func (s *Heap[T]) Swap(other *Heap[T]) {
	s.alloc, other.alloc = other.alloc, s.alloc
	s.data, other.data = other.data, s.data
}

// Release returns the block to the allocator, leaving zero capacity.
// Live elements must have been destroyed by the owner.
func (s *Heap[T]) Release() error {
	old := s.data
	s.data = nil
	return s.allocator().Deallocate(old, len(old))
}
