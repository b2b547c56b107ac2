// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"iter"

	"go.uber.org/multierr"
)

// Array is a sequence of at most MaxSize elements over storage whose
// capacity never changes. Its size varies within [0, MaxSize()].
type Array[T any] struct {
	st   Storage[T]
	size int
}

// NewArray returns an empty array over st. MaxSize() is st.Cap().
func NewArray[T any](st Storage[T]) *Array[T] {
	return &Array[T]{st: st}
}

// NewArrayN returns an array over st holding n default-constructed elements.
func NewArrayN[T any](st Storage[T], n int) (*Array[T], error) {
	a := NewArray(st)
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// NewArrayFill returns an array over st holding n copies of value.
func NewArrayFill[T any](st Storage[T], n int, value T) (*Array[T], error) {
	a := NewArray(st)
	if err := a.appendN("array.NewArrayFill", n, func(int) (T, error) { return clone(value) }); err != nil {
		return nil, err
	}
	return a, nil
}

// NewArrayOf returns an array over st holding copies of values.
func NewArrayOf[T any](st Storage[T], values ...T) (*Array[T], error) {
	a := NewArray(st)
	if err := a.appendN("array.NewArrayOf", len(values), func(k int) (T, error) { return clone(values[k]) }); err != nil {
		return nil, err
	}
	return a, nil
}

// Clone returns a copy of a over st.
func (a *Array[T]) Clone(st Storage[T]) (*Array[T], error) {
	c := NewArray(st)
	if err := c.appendN("array.Clone", a.size, func(k int) (T, error) { return clone(*a.st.At(k)) }); err != nil {
		return nil, err
	}
	return c, nil
}

// MoveTo returns an array over st that took over a's elements.
// a is left empty.
func (a *Array[T]) MoveTo(st Storage[T]) (*Array[T], error) {
	m := NewArray(st)
	if err := m.MoveFrom(a); err != nil {
		return nil, err
	}
	return m, nil
}

// Storage returns the storage the array lives in.
func (a *Array[T]) Storage() Storage[T] { return a.st }

// appendN constructs n elements after the live prefix, the k-th by gen(k).
// It fails with ErrOutOfRange before constructing anything when the result
// would exceed MaxSize(), and rolls back on a failed construction.
func (a *Array[T]) appendN(where string, n int, gen func(k int) (T, error)) error {
	if n < 0 || n > a.st.Cap()-a.size {
		return errSize(where, a.size+n, a.st.Cap())
	}
	for k := range n {
		x, err := gen(k)
		if err != nil {
			return multierr.Append(err, destroyRange(a.st, a.size, a.size+k))
		}
		a.st.Create(a.size+k, x)
	}
	a.size += n
	return nil
}

func (a *Array[T]) at(where string, i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, errIndex(where, i, a.size)
	}
	return a.st.At(i), nil
}

// At returns element i, or ErrOutOfRange unless 0 <= i < Len().
func (a *Array[T]) At(i int) (*T, error) { return a.at("array.At", i) }

// AtUnchecked returns slot i, which must be below MaxSize().
func (a *Array[T]) AtUnchecked(i int) *T { return a.st.At(i) }

// Get returns a copy of element i.
func (a *Array[T]) Get(i int) (T, error) {
	p, err := a.at("array.Get", i)
	if err != nil {
		var zero T
		return zero, err
	}
	return *p, nil
}

// Set replaces element i with a copy of x.
func (a *Array[T]) Set(i int, x T) error {
	p, err := a.at("array.Set", i)
	if err != nil {
		return err
	}
	return replace(p, x)
}

// Front returns the first element.
func (a *Array[T]) Front() (*T, error) { return a.at("array.Front", 0) }

// Back returns the last element.
func (a *Array[T]) Back() (*T, error) { return a.at("array.Back", a.size-1) }

// Data returns the live elements.
func (a *Array[T]) Data() []T { return a.st.Data()[:a.size] }

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.size }

// Empty reports whether the array holds no element.
func (a *Array[T]) Empty() bool { return a.size == 0 }

// MaxSize returns the fixed capacity.
func (a *Array[T]) MaxSize() int { return a.st.Cap() }

// Resize default-constructs or destroys trailing elements so that Len() == n.
func (a *Array[T]) Resize(n int) error {
	switch {
	case n < 0 || n > a.st.Cap():
		return errSize("array.Resize", n, a.st.Cap())
	case n > a.size:
		return a.appendN("array.Resize", n-a.size, func(int) (T, error) { return construct[T]() })
	case n < a.size:
		err := destroyRange(a.st, n, a.size)
		a.size = n
		return err
	}
	return nil
}

// Clear destroys every element. Destructor failures are swallowed.
func (a *Array[T]) Clear() {
	swallow("array.Clear", destroyRange(a.st, 0, a.size))
	a.size = 0
}

// Assign replaces the contents with copies of values. Too many values fail
// with ErrOutOfRange and leave the array untouched.
func (a *Array[T]) Assign(values ...T) error {
	if len(values) > a.st.Cap() {
		return errSize("array.Assign", len(values), a.st.Cap())
	}
	a.Clear()
	return a.appendN("array.Assign", len(values), func(k int) (T, error) { return clone(values[k]) })
}

// CopyFrom replaces the contents with copies of src's elements.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	if src == a {
		return nil
	}
	if src.size > a.st.Cap() {
		return errSize("array.CopyFrom", src.size, a.st.Cap())
	}
	a.Clear()
	return a.appendN("array.CopyFrom", src.size, func(k int) (T, error) { return clone(*src.st.At(k)) })
}

// MoveFrom replaces the contents with src's elements, leaving src empty.
// Elements are relocated one by one since the storages differ.
func (a *Array[T]) MoveFrom(src *Array[T]) error {
	if src == a {
		return nil
	}
	if src.size > a.st.Cap() {
		return errSize("array.MoveFrom", src.size, a.st.Cap())
	}
	a.Clear()
	for i := range src.size {
		p := src.st.At(i)
		a.st.Create(i, *p)
		var zero T
		*p = zero
	}
	a.size, src.size = src.size, 0
	return nil
}

// All yields index and element pairs front to back.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, *a.st.At(i)) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(*a.st.At(i)) {
				return
			}
		}
	}
}
