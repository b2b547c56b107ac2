// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/multierr"
)

// Vector is a growable sequence over heap storage.
//
// Slots [0, Len()) hold live elements and slots [Len(), Cap()) are raw.
// Every mutating operation either establishes its postcondition or destroys
// what it constructed before returning the failure.
//
// The zero value is an empty vector over RawAllocator. A Vector is used
// through a pointer: iterators refer back to it.
type Vector[T any] struct {
	st   Heap[T]
	size int
}

// Option configures a new Vector or BitVector.
type Option[T any] func(*options[T])

type options[T any] struct {
	alloc Allocator[T]
}

// WithAllocator selects the allocator of the vector's storage.
// Only raw allocators are accepted.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *options[T]) { o.alloc = a }
}

func buildOptions[T any](where string, opts []Option[T]) (options[T], error) {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}
	if o.alloc != nil && !o.alloc.Raw() {
		return o, errors.Wrapf(ErrInvalidArgument, "%s: allocator must be raw", where)
	}
	return o, nil
}

// New returns an empty vector.
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	o, err := buildOptions("vector.New", opts)
	if err != nil {
		return nil, err
	}
	return &Vector[T]{st: Heap[T]{alloc: o.alloc}}, nil
}

// NewN returns a vector of n default-constructed elements.
func NewN[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	return v, nil
}

// NewFill returns a vector of n copies of value.
func NewFill[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errIndex("vector.NewFill", n, 0)
	}
	if err := v.appendN("vector.NewFill", n, func(int) (T, error) { return clone(value) }); err != nil {
		return nil, err
	}
	return v, nil
}

// Of returns a vector holding copies of values in order.
func Of[T any](values ...T) (*Vector[T], error) {
	v := new(Vector[T])
	if err := v.appendN("vector.Of", len(values), func(k int) (T, error) { return clone(values[k]) }); err != nil {
		return nil, err
	}
	return v, nil
}

// Clone returns a copy of v over the same kind of allocator.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c := &Vector[T]{st: Heap[T]{alloc: v.st.allocator()}}
	if err := c.CopyFrom(v); err != nil {
		return nil, err
	}
	return c, nil
}

// Move returns a vector that took over v's storage in constant time.
// v is left empty.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{st: Heap[T]{alloc: v.st.allocator()}}
	m.MoveFrom(v)
	return m
}

// Free destroys every element and returns the block to the allocator.
func (v *Vector[T]) Free() error {
	v.Clear()
	return v.st.Release()
}

// Allocator returns the allocator of the vector's storage.
func (v *Vector[T]) Allocator() Allocator[T] { return v.st.Allocator() }

//
// Element access
//

func (v *Vector[T]) at(where string, i int) (*T, error) {
	if i < 0 || i >= v.size {
		return nil, errIndex(where, i, v.size)
	}
	return v.st.At(i), nil
}

// At returns element i, or ErrOutOfRange unless 0 <= i < Len().
func (v *Vector[T]) At(i int) (*T, error) { return v.at("vector.At", i) }

// AtUnchecked returns slot i without checking it holds a live element.
// Slots past Len() hold raw, zeroed memory; i must be below Cap().
func (v *Vector[T]) AtUnchecked(i int) *T { return v.st.At(i) }

// Get returns a copy of element i.
func (v *Vector[T]) Get(i int) (T, error) {
	p, err := v.at("vector.Get", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces element i with a copy of x. The previous element is destroyed.
func (v *Vector[T]) Set(i int, x T) error {
	p, err := v.at("vector.Set", i)
	if err != nil {
		return err
	}
	return replace(p, x)
}

// replace copy-constructs x into the live slot p after destroying its
// occupant. The slot is untouched when the copy fails.
func replace[T any](p *T, x T) error {
	y, err := clone(x)
	if err != nil {
		return err
	}
	err = destroy(p)
	*p = y
	return err
}

// Front returns the first element.
func (v *Vector[T]) Front() (*T, error) { return v.at("vector.Front", 0) }

// Back returns the last element.
func (v *Vector[T]) Back() (*T, error) { return v.at("vector.Back", v.size-1) }

// Data returns the live elements. The slice aliases the storage until the
// next reallocation.
func (v *Vector[T]) Data() []T { return v.st.Data()[:v.size] }

//
// Capacity
//

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the number of slots of the storage.
func (v *Vector[T]) Cap() int { return v.st.Cap() }

// Empty reports whether the vector holds no element.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// MaxSize returns the largest number of elements a block can hold.
func (v *Vector[T]) MaxSize() int { return maxSlots[T]() }

// Reserve grows the capacity to at least n. It never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	if n > v.st.Cap() {
		return v.st.Reallocate(n, v.size, 0)
	}
	return nil
}

// ShrinkToFit reduces the capacity to Len().
func (v *Vector[T]) ShrinkToFit() error {
	return v.st.Reallocate(v.size, v.size, 0)
}

// fit applies the growth policy for newSize live elements.
func (v *Vector[T]) fit(newSize int) error {
	return v.st.Reallocate(nextCapacity(v.st.Cap(), newSize, maxSlots[T]()), v.size, 0)
}

// grow applies the growth policy for n more elements.
func (v *Vector[T]) grow(where string, n int) error {
	newSize, err := grownSize(where, v.size, n, maxSlots[T]())
	if err != nil {
		return err
	}
	return v.fit(newSize)
}

//
// Modifiers
//

// appendN constructs n elements after the live prefix, the k-th by gen(k).
// When a construction fails, the elements built by this call are destroyed
// in reverse order and the size is unchanged.
func (v *Vector[T]) appendN(where string, n int, gen func(k int) (T, error)) error {
	newSize, err := grownSize(where, v.size, n, maxSlots[T]())
	if err != nil {
		return err
	}
	if err := v.Reserve(newSize); err != nil {
		return err
	}
	for k := range n {
		x, err := gen(k)
		if err != nil {
			return multierr.Append(err, destroyRange[T](&v.st, v.size, v.size+k))
		}
		v.st.Create(v.size+k, x)
	}
	v.size += n
	return nil
}

// Resize default-constructs or destroys trailing elements so that Len() == n.
func (v *Vector[T]) Resize(n int) error {
	switch {
	case n < 0:
		return errIndex("vector.Resize", n, v.size)
	case n > v.size:
		return v.appendN("vector.Resize", n-v.size, func(int) (T, error) { return construct[T]() })
	case n < v.size:
		err := destroyRange[T](&v.st, n, v.size)
		v.size = n
		return err
	}
	return nil
}

// Clear destroys every element. Destructor failures are swallowed so that
// the vector always ends empty; the capacity is unchanged.
func (v *Vector[T]) Clear() {
	swallow("vector.Clear", destroyRange[T](&v.st, 0, v.size))
	v.size = 0
}

// EmplaceBack constructs an element with ctor at the end and returns it.
// A nil ctor default-constructs.
func (v *Vector[T]) EmplaceBack(ctor Constructor[T]) (*T, error) {
	if ctor == nil {
		ctor = construct[T]
	}
	if err := v.grow("vector.EmplaceBack", 1); err != nil {
		return nil, err
	}
	x, err := ctor()
	if err != nil {
		return nil, err
	}
	v.st.Create(v.size, x)
	v.size++
	return v.st.At(v.size - 1), nil
}

// PushBack appends a copy of x.
func (v *Vector[T]) PushBack(x T) error {
	_, err := v.EmplaceBack(func() (T, error) { return clone(x) })
	return err
}

// PopBack destroys the last element, then applies the growth policy.
func (v *Vector[T]) PopBack() error {
	if v.size == 0 {
		return errIndex("vector.PopBack", 0, 0)
	}
	err := v.st.Destroy(v.size - 1)
	v.size--
	return multierr.Append(err, v.fit(v.size))
}

// Position is an iterator usable as an insertion or erasure point.
// Iterator and ConstIterator implement it.
type Position[T any] interface {
	position() (*Vector[T], int)
}

func (v *Vector[T]) checkPosition(where string, p Position[T]) (int, error) {
	if p == nil {
		return 0, errForeign(where)
	}
	owner, i := p.position()
	if owner != v {
		return 0, errForeign(where)
	}
	if i < 0 || i > v.size {
		return 0, errIndex(where, i, v.size)
	}
	return i, nil
}

// shiftTail moves elements [start, Len()) by shift slots. Moving right walks
// from the back so that every element is read before its slot is written;
// slots past the live prefix are raw and receive their element through
// Create. Vacated slots are left zeroed.
func (v *Vector[T]) shiftTail(start, shift int) {
	switch {
	case shift > 0:
		for i := v.size - 1; i >= start; i-- {
			src := v.st.At(i)
			if i+shift >= v.size {
				v.st.Create(i+shift, *src)
				var zero T
				*src = zero
			} else {
				relocate(v.st.At(i+shift), src)
			}
		}
	case shift < 0:
		for i := start; i < v.size; i++ {
			relocate(v.st.At(i+shift), v.st.At(i))
		}
	}
}

// insert opens a gap of n slots at pos and fills it, the k-th slot by gen(k).
func (v *Vector[T]) insert(where string, pos Position[T], n int, gen func(k int) (T, error)) (Iterator[T], error) {
	if n == 0 && pos != nil {
		_, i := pos.position()
		return Iterator[T]{v: v, index: i}, nil
	}
	index, err := v.checkPosition(where, pos)
	if err != nil {
		return Iterator[T]{}, err
	}
	if n < 0 {
		return Iterator[T]{}, errIndex(where, n, v.size)
	}
	if err := v.grow(where, n); err != nil {
		return Iterator[T]{}, err
	}
	v.shiftTail(index, n)
	for k := range n {
		x, err := gen(k)
		if err != nil {
			return Iterator[T]{}, v.unwindInsert(index, k, n, err)
		}
		if i := index + k; i >= v.size {
			v.st.Create(i, x)
		} else {
			*v.st.At(i) = x
		}
	}
	v.size += n
	return Iterator[T]{v: v, index: index}, nil
}

// unwindInsert undoes an insertion that filled k of its n gap slots: the
// filled slots are destroyed and the tail moves back over the gap.
func (v *Vector[T]) unwindInsert(index, k, n int, cause error) error {
	err := destroyRange[T](&v.st, index, index+k)
	for i := index + n; i < v.size+n; i++ {
		relocate(v.st.At(i-n), v.st.At(i))
	}
	return multierr.Append(cause, err)
}

// Insert inserts copies of values before pos and returns an iterator to the
// first inserted element. values must not alias the vector's own elements;
// InsertSeq(pos, v.Values()) inserts a vector into itself.
func (v *Vector[T]) Insert(pos Position[T], values ...T) (Iterator[T], error) {
	return v.insert("vector.Insert", pos, len(values), func(k int) (T, error) { return clone(values[k]) })
}

// InsertSlice inserts copies of values before pos.
func (v *Vector[T]) InsertSlice(pos Position[T], values []T) (Iterator[T], error) {
	return v.Insert(pos, values...)
}

// InsertN inserts n copies of value before pos.
func (v *Vector[T]) InsertN(pos Position[T], n int, value T) (Iterator[T], error) {
	return v.insert("vector.InsertN", pos, n, func(int) (T, error) { return clone(value) })
}

// InsertSeq inserts copies of the elements of seq before pos.
func (v *Vector[T]) InsertSeq(pos Position[T], seq iter.Seq[T]) (Iterator[T], error) {
	values := slices.Collect(seq)
	return v.insert("vector.InsertSeq", pos, len(values), func(k int) (T, error) { return clone(values[k]) })
}

// Erase removes the element at pos.
func (v *Vector[T]) Erase(pos Position[T]) (Iterator[T], error) {
	if pos == nil {
		return Iterator[T]{}, errForeign("vector.Erase")
	}
	owner, i := pos.position()
	return v.EraseRange(pos, Iterator[T]{v: owner, index: i + 1})
}

// EraseRange removes the elements [first, last) and returns an iterator to
// the element that followed them. An empty range is a no-op returning last.
// Every erased element is destroyed even when a destructor fails; the
// failures are returned after the erasure completes.
func (v *Vector[T]) EraseRange(first, last Position[T]) (Iterator[T], error) {
	from, err := v.checkPosition("vector.EraseRange: first", first)
	if err != nil {
		return Iterator[T]{}, err
	}
	to, err := v.checkPosition("vector.EraseRange: last", last)
	if err != nil {
		return Iterator[T]{}, err
	}
	if from >= to {
		return Iterator[T]{v: v, index: to}, nil
	}
	count := to - from
	err = destroyRange[T](&v.st, from, to)
	v.shiftTail(to, -count)
	v.size -= count
	return Iterator[T]{v: v, index: from}, err
}

//
// Assignment
//

// Assign replaces the contents with copies of values. values must not alias
// the vector's own elements. On failure the vector is left empty.
func (v *Vector[T]) Assign(values ...T) error {
	v.Clear()
	return v.appendN("vector.Assign", len(values), func(k int) (T, error) { return clone(values[k]) })
}

// CopyFrom replaces the contents with copies of src's elements.
// On failure the vector is left empty.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if src == v {
		return nil
	}
	v.Clear()
	return v.appendN("vector.CopyFrom", src.size, func(k int) (T, error) { return clone(*src.st.At(k)) })
}

// MoveFrom exchanges storage blocks and sizes with src in constant time.
// No element is moved or destroyed: afterwards src holds what v held.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if src == v {
		return
	}
	v.st.Swap(&src.st)
	v.size, src.size = src.size, v.size
}

//
// Iteration
//

// Begin returns an iterator to the first element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{v: v} }

// End returns an iterator past the last element.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{v: v, index: v.size} }

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{v: v} }

// CEnd returns a read-only iterator past the last element.
func (v *Vector[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{v: v, index: v.size} }

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T]) RBegin() ReverseIterator[T] { return ReverseIterator[T]{v: v} }

// REnd returns a reverse iterator before the first element.
func (v *Vector[T]) REnd() ReverseIterator[T] { return ReverseIterator[T]{v: v, index: v.size} }

// CRBegin returns a read-only reverse iterator to the last element.
func (v *Vector[T]) CRBegin() ConstReverseIterator[T] { return ConstReverseIterator[T]{v: v} }

// CREnd returns a read-only reverse iterator before the first element.
func (v *Vector[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{v: v, index: v.size}
}

// All yields index and element pairs front to back. The length is read on
// every step, so the loop body may resize the vector.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.st.At(i)) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.st.At(i)) {
				return
			}
		}
	}
}

// Backward yields index and element pairs back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if i >= v.size {
				continue
			}
			if !yield(i, *v.st.At(i)) {
				return
			}
		}
	}
}
