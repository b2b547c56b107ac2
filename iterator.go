// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"github.com/cockroachdb/errors"
)

// Iterators are (vector, index) pairs. They never hold element addresses,
// so they survive reallocation: an iterator resolves its element through the
// vector at each dereference, and every dereference is bounds-checked.
//
// Arithmetic is unchecked; only dereference validates the index.
// Comparing iterators of different vectors yields false.

func resolve[T any](v *Vector[T], where string, i int) (*T, error) {
	if v == nil {
		return nil, errors.Wrapf(ErrInvalidIterator, "%s: detached iterator", where)
	}
	return v.at(where, i)
}

// Iterator is a random-access position in a Vector.
type Iterator[T any] struct {
	v     *Vector[T]
	index int
}

func (it Iterator[T]) position() (*Vector[T], int) { return it.v, it.index }

// Offset returns the index the iterator designates.
func (it Iterator[T]) Offset() int { return it.index }

// Ptr returns the designated element.
func (it Iterator[T]) Ptr() (*T, error) { return resolve(it.v, "iterator", it.index) }

// Get returns a copy of the designated element.
func (it Iterator[T]) Get() (T, error) {
	p, err := it.Ptr()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces the designated element with a copy of x.
func (it Iterator[T]) Set(x T) error {
	p, err := it.Ptr()
	if err != nil {
		return err
	}
	return replace(p, x)
}

// Index returns the element k positions after the iterator.
func (it Iterator[T]) Index(k int) (*T, error) { return resolve(it.v, "iterator", it.index+k) }

// Next returns the iterator one position forward.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator one position back.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the iterator n positions forward.
func (it Iterator[T]) Add(n int) Iterator[T] { return Iterator[T]{v: it.v, index: it.index + n} }

// Sub returns the iterator n positions back.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Distance returns it - other in positions.
func (it Iterator[T]) Distance(other Iterator[T]) int { return it.index - other.index }

// Equal reports whether both iterators designate the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it == other }

// Less reports whether it precedes other in the same vector.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.v == other.v && it.index < other.index }

// Greater reports whether it follows other in the same vector.
func (it Iterator[T]) Greater(other Iterator[T]) bool { return other.Less(it) }

// LessEq reports Less or Equal.
func (it Iterator[T]) LessEq(other Iterator[T]) bool { return it.Less(other) || it.Equal(other) }

// GreaterEq reports Greater or Equal.
func (it Iterator[T]) GreaterEq(other Iterator[T]) bool { return it.Greater(other) || it.Equal(other) }

// Const returns a read-only iterator at the same position.
func (it Iterator[T]) Const() ConstIterator[T] { return ConstIterator[T](it) }

// ConstIterator is a read-only random-access position in a Vector.
type ConstIterator[T any] struct {
	v     *Vector[T]
	index int
}

func (it ConstIterator[T]) position() (*Vector[T], int) { return it.v, it.index }

// Offset returns the index the iterator designates.
func (it ConstIterator[T]) Offset() int { return it.index }

// Get returns a copy of the designated element.
func (it ConstIterator[T]) Get() (T, error) {
	p, err := resolve(it.v, "const iterator", it.index)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Index returns a copy of the element k positions after the iterator.
func (it ConstIterator[T]) Index(k int) (T, error) { return it.Add(k).Get() }

// Next returns the iterator one position forward.
func (it ConstIterator[T]) Next() ConstIterator[T] { return it.Add(1) }

// Prev returns the iterator one position back.
func (it ConstIterator[T]) Prev() ConstIterator[T] { return it.Add(-1) }

// Add returns the iterator n positions forward.
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{v: it.v, index: it.index + n}
}

// Sub returns the iterator n positions back.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] { return it.Add(-n) }

// Distance returns it - other in positions.
func (it ConstIterator[T]) Distance(other ConstIterator[T]) int { return it.index - other.index }

// Equal reports whether both iterators designate the same position.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool { return it == other }

// Less reports whether it precedes other in the same vector.
func (it ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return it.v == other.v && it.index < other.index
}

// Greater reports whether it follows other in the same vector.
func (it ConstIterator[T]) Greater(other ConstIterator[T]) bool { return other.Less(it) }

// LessEq reports Less or Equal.
func (it ConstIterator[T]) LessEq(other ConstIterator[T]) bool {
	return it.Less(other) || it.Equal(other)
}

// GreaterEq reports Greater or Equal.
func (it ConstIterator[T]) GreaterEq(other ConstIterator[T]) bool {
	return it.Greater(other) || it.Equal(other)
}

// ReverseIterator walks a Vector from the back. Its index counts from the
// last element, so index i designates element Len()-1-i.
type ReverseIterator[T any] struct {
	v     *Vector[T]
	index int
}

func (it ReverseIterator[T]) forward() int {
	if it.v == nil {
		return -1
	}
	return it.v.size - it.index - 1
}

// Offset returns the reverse index the iterator designates.
func (it ReverseIterator[T]) Offset() int { return it.index }

// Base returns the forward iterator one past the designated element.
func (it ReverseIterator[T]) Base() Iterator[T] {
	return Iterator[T]{v: it.v, index: it.forward() + 1}
}

// Ptr returns the designated element.
func (it ReverseIterator[T]) Ptr() (*T, error) {
	return resolve(it.v, "reverse iterator", it.forward())
}

// Get returns a copy of the designated element.
func (it ReverseIterator[T]) Get() (T, error) {
	p, err := it.Ptr()
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces the designated element with a copy of x.
func (it ReverseIterator[T]) Set(x T) error {
	p, err := it.Ptr()
	if err != nil {
		return err
	}
	return replace(p, x)
}

// Index returns the element k positions after the iterator in reverse order.
func (it ReverseIterator[T]) Index(k int) (*T, error) { return it.Add(k).Ptr() }

// Next returns the iterator one position towards the front.
func (it ReverseIterator[T]) Next() ReverseIterator[T] { return it.Add(1) }

// Prev returns the iterator one position towards the back.
func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return it.Add(-1) }

// Add returns the iterator n positions towards the front.
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{v: it.v, index: it.index + n}
}

// Sub returns the iterator n positions towards the back.
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] { return it.Add(-n) }

// Distance returns it - other in positions.
func (it ReverseIterator[T]) Distance(other ReverseIterator[T]) int { return it.index - other.index }

// Equal reports whether both iterators designate the same position.
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool { return it == other }

// Less reports whether it precedes other in reverse order.
func (it ReverseIterator[T]) Less(other ReverseIterator[T]) bool {
	return it.v == other.v && it.index < other.index
}

// Greater reports whether it follows other in reverse order.
func (it ReverseIterator[T]) Greater(other ReverseIterator[T]) bool { return other.Less(it) }

// LessEq reports Less or Equal.
func (it ReverseIterator[T]) LessEq(other ReverseIterator[T]) bool {
	return it.Less(other) || it.Equal(other)
}

// GreaterEq reports Greater or Equal.
func (it ReverseIterator[T]) GreaterEq(other ReverseIterator[T]) bool {
	return it.Greater(other) || it.Equal(other)
}

// Const returns a read-only reverse iterator at the same position.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] { return ConstReverseIterator[T](it) }

// ConstReverseIterator is a read-only ReverseIterator.
type ConstReverseIterator[T any] struct {
	v     *Vector[T]
	index int
}

// Offset returns the reverse index the iterator designates.
func (it ConstReverseIterator[T]) Offset() int { return it.index }

// Get returns a copy of the designated element.
func (it ConstReverseIterator[T]) Get() (T, error) {
	f := ReverseIterator[T](it).forward()
	p, err := resolve(it.v, "const reverse iterator", f)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Index returns a copy of the element k positions after the iterator.
func (it ConstReverseIterator[T]) Index(k int) (T, error) { return it.Add(k).Get() }

// Next returns the iterator one position towards the front.
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] { return it.Add(1) }

// Prev returns the iterator one position towards the back.
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] { return it.Add(-1) }

// Add returns the iterator n positions towards the front.
func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{v: it.v, index: it.index + n}
}

// Sub returns the iterator n positions towards the back.
func (it ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] { return it.Add(-n) }

// Distance returns it - other in positions.
func (it ConstReverseIterator[T]) Distance(other ConstReverseIterator[T]) int {
	return it.index - other.index
}

// Equal reports whether both iterators designate the same position.
func (it ConstReverseIterator[T]) Equal(other ConstReverseIterator[T]) bool { return it == other }

// Less reports whether it precedes other in reverse order.
func (it ConstReverseIterator[T]) Less(other ConstReverseIterator[T]) bool {
	return it.v == other.v && it.index < other.index
}

// Greater reports whether it follows other in reverse order.
func (it ConstReverseIterator[T]) Greater(other ConstReverseIterator[T]) bool {
	return other.Less(it)
}

// LessEq reports Less or Equal.
func (it ConstReverseIterator[T]) LessEq(other ConstReverseIterator[T]) bool {
	return it.Less(other) || it.Equal(other)
}

// GreaterEq reports Greater or Equal.
func (it ConstReverseIterator[T]) GreaterEq(other ConstReverseIterator[T]) bool {
	return it.Greater(other) || it.Equal(other)
}
