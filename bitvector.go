// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"iter"
	"math"
	"slices"

	"github.com/cockroachdb/errors"
)

// BitVector is a growable sequence of bools packed eight to an octet.
//
// Capacity and the growth policy are evaluated on octets; Len and Cap count
// bits. Bits at or past Len() are always zero, so growing never has to clear
// them. The zero value is an empty bit vector over RawAllocator.
type BitVector struct {
	st   Heap[byte]
	size int
}

// NewBitVector returns an empty bit vector.
func NewBitVector(opts ...Option[byte]) (*BitVector, error) {
	o, err := buildOptions("bitvector.New", opts)
	if err != nil {
		return nil, err
	}
	return &BitVector{st: Heap[byte]{alloc: o.alloc}}, nil
}

// NewBitVectorN returns a bit vector of n false bits.
func NewBitVectorN(n int, opts ...Option[byte]) (*BitVector, error) {
	return NewBitVectorFill(n, false, opts...)
}

// NewBitVectorFill returns a bit vector of n copies of b.
func NewBitVectorFill(n int, b bool, opts ...Option[byte]) (*BitVector, error) {
	v, err := NewBitVector(opts...)
	if err != nil {
		return nil, err
	}
	if err := v.Resize(n); err != nil {
		return nil, err
	}
	if b {
		data := v.st.Data()
		for i := range n {
			setBit(data, i, true)
		}
	}
	return v, nil
}

// BitsOf returns a bit vector holding bits in order.
func BitsOf(bits ...bool) (*BitVector, error) {
	v := new(BitVector)
	if err := v.Assign(bits...); err != nil {
		return nil, err
	}
	return v, nil
}

// Clone returns a copy of v.
func (v *BitVector) Clone() (*BitVector, error) {
	c := &BitVector{st: Heap[byte]{alloc: v.st.allocator()}}
	if err := c.CopyFrom(v); err != nil {
		return nil, err
	}
	return c, nil
}

// Move returns a bit vector that took over v's storage. v is left empty.
func (v *BitVector) Move() *BitVector {
	m := &BitVector{st: Heap[byte]{alloc: v.st.allocator()}}
	m.MoveFrom(v)
	return m
}

// Free returns the block to the allocator.
func (v *BitVector) Free() error {
	v.Clear()
	return v.st.Release()
}

// Allocator returns the allocator of the octet storage.
func (v *BitVector) Allocator() Allocator[byte] { return v.st.Allocator() }

func (v *BitVector) check(where string, i int) error {
	if i < 0 || i >= v.size {
		return errIndex(where, i, v.size)
	}
	return nil
}

// Ref returns a reference to bit i, or ErrOutOfRange unless 0 <= i < Len().
func (v *BitVector) Ref(i int) (BitRef, error) {
	if err := v.check("bitvector.Ref", i); err != nil {
		return BitRef{}, err
	}
	return bitRef(v.st.Data(), i), nil
}

// ConstRef returns a read-only reference to bit i.
func (v *BitVector) ConstRef(i int) (ConstBitRef, error) {
	if err := v.check("bitvector.ConstRef", i); err != nil {
		return ConstBitRef{}, err
	}
	return bitRef(v.st.Data(), i).Const(), nil
}

// RefUnchecked returns a reference to bit i, which must be below Cap().
func (v *BitVector) RefUnchecked(i int) BitRef { return bitRef(v.st.Data(), i) }

// Get returns bit i.
func (v *BitVector) Get(i int) (bool, error) {
	if err := v.check("bitvector.Get", i); err != nil {
		return false, err
	}
	return getBit(v.st.Data(), i), nil
}

// Set writes bit i.
func (v *BitVector) Set(i int, b bool) error {
	if err := v.check("bitvector.Set", i); err != nil {
		return err
	}
	setBit(v.st.Data(), i, b)
	return nil
}

// Front returns a reference to the first bit.
func (v *BitVector) Front() (BitRef, error) {
	if err := v.check("bitvector.Front", 0); err != nil {
		return BitRef{}, err
	}
	return bitRef(v.st.Data(), 0), nil
}

// Back returns a reference to the last bit.
func (v *BitVector) Back() (BitRef, error) {
	if err := v.check("bitvector.Back", v.size-1); err != nil {
		return BitRef{}, err
	}
	return bitRef(v.st.Data(), v.size-1), nil
}

// Data returns the octets holding the live bits.
func (v *BitVector) Data() []byte { return v.st.Data()[:octets(v.size)] }

// Len returns the number of bits.
func (v *BitVector) Len() int { return v.size }

// Cap returns the number of bits the storage holds.
func (v *BitVector) Cap() int { return v.st.Cap() * 8 }

// Empty reports whether the bit vector holds no bit.
func (v *BitVector) Empty() bool { return v.size == 0 }

// MaxSize returns the largest number of bits a block can hold.
func (v *BitVector) MaxSize() int {
	n := maxSlots[byte]()
	if n > math.MaxInt/8 {
		return math.MaxInt
	}
	return n * 8
}

// Reserve grows the capacity to at least n bits. It fails with
// ErrOutOfMemory past MaxSize().
func (v *BitVector) Reserve(n int) error {
	if n > v.MaxSize() {
		return errors.Wrapf(ErrOutOfMemory, "bitvector.Reserve: %d bits exceed max size == %d", n, v.MaxSize())
	}
	if octets(n) > v.st.Cap() {
		return v.st.Reallocate(octets(n), octets(v.size), 0)
	}
	return nil
}

// ShrinkToFit reduces the capacity to the octets holding Len() bits.
func (v *BitVector) ShrinkToFit() error {
	return v.st.Reallocate(octets(v.size), octets(v.size), 0)
}

func (v *BitVector) fit(newSize int) error {
	return v.st.Reallocate(nextCapacity(v.st.Cap(), octets(newSize), maxSlots[byte]()), octets(v.size), 0)
}

// grow applies the growth policy for n more bits.
func (v *BitVector) grow(where string, n int) error {
	newSize, err := grownSize(where, v.size, n, v.MaxSize())
	if err != nil {
		return err
	}
	return v.fit(newSize)
}

// Resize sets Len() to n. New bits are false.
func (v *BitVector) Resize(n int) error {
	switch {
	case n < 0:
		return errIndex("bitvector.Resize", n, v.size)
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return err
		}
	case n < v.size:
		clearBits(v.st.Data(), n, v.size)
	}
	v.size = n
	return nil
}

// Clear removes every bit. The capacity is unchanged.
func (v *BitVector) Clear() {
	clear(v.Data())
	v.size = 0
}

// EmplaceBack appends the bit produced by ctor. A nil ctor appends false.
func (v *BitVector) EmplaceBack(ctor func() (bool, error)) (BitRef, error) {
	if err := v.grow("bitvector.EmplaceBack", 1); err != nil {
		return BitRef{}, err
	}
	var b bool
	if ctor != nil {
		var err error
		if b, err = ctor(); err != nil {
			return BitRef{}, err
		}
	}
	setBit(v.st.Data(), v.size, b)
	v.size++
	return bitRef(v.st.Data(), v.size-1), nil
}

// PushBack appends b.
func (v *BitVector) PushBack(b bool) error {
	_, err := v.EmplaceBack(func() (bool, error) { return b, nil })
	return err
}

// PopBack removes the last bit, then applies the growth policy.
func (v *BitVector) PopBack() error {
	if v.size == 0 {
		return errIndex("bitvector.PopBack", 0, 0)
	}
	v.size--
	setBit(v.st.Data(), v.size, false)
	return v.fit(v.size)
}

// BitPosition is an iterator usable as an insertion or erasure point.
// BitIterator and ConstBitIterator implement it.
type BitPosition interface {
	bitPosition() (*BitVector, int)
}

func (v *BitVector) checkPosition(where string, p BitPosition) (int, error) {
	if p == nil {
		return 0, errForeign(where)
	}
	owner, i := p.bitPosition()
	if owner != v {
		return 0, errForeign(where)
	}
	if i < 0 || i > v.size {
		return 0, errIndex(where, i, v.size)
	}
	return i, nil
}

// insert opens a gap of n bits at pos, the k-th set to gen(k). The tail is
// shifted one bit at a time from the back.
func (v *BitVector) insert(where string, pos BitPosition, n int, gen func(k int) bool) (BitIterator, error) {
	if n == 0 && pos != nil {
		_, i := pos.bitPosition()
		return BitIterator{v: v, index: i}, nil
	}
	index, err := v.checkPosition(where, pos)
	if err != nil {
		return BitIterator{}, err
	}
	if n < 0 {
		return BitIterator{}, errIndex(where, n, v.size)
	}
	if err := v.grow(where, n); err != nil {
		return BitIterator{}, err
	}
	data := v.st.Data()
	for i := v.size - 1; i >= index; i-- {
		setBit(data, i+n, getBit(data, i))
	}
	for k := range n {
		setBit(data, index+k, gen(k))
	}
	v.size += n
	return BitIterator{v: v, index: index}, nil
}

// Insert inserts bits before pos and returns an iterator to the first of them.
func (v *BitVector) Insert(pos BitPosition, bits ...bool) (BitIterator, error) {
	return v.insert("bitvector.Insert", pos, len(bits), func(k int) bool { return bits[k] })
}

// InsertN inserts n copies of b before pos.
func (v *BitVector) InsertN(pos BitPosition, n int, b bool) (BitIterator, error) {
	return v.insert("bitvector.InsertN", pos, n, func(int) bool { return b })
}

// InsertSeq inserts the bits of seq before pos.
func (v *BitVector) InsertSeq(pos BitPosition, seq iter.Seq[bool]) (BitIterator, error) {
	bits := slices.Collect(seq)
	return v.insert("bitvector.InsertSeq", pos, len(bits), func(k int) bool { return bits[k] })
}

// Erase removes the bit at pos.
func (v *BitVector) Erase(pos BitPosition) (BitIterator, error) {
	if pos == nil {
		return BitIterator{}, errForeign("bitvector.Erase")
	}
	owner, i := pos.bitPosition()
	return v.EraseRange(pos, BitIterator{v: owner, index: i + 1})
}

// EraseRange removes bits [first, last) and returns an iterator to the bit
// that followed them. An empty range is a no-op returning last.
func (v *BitVector) EraseRange(first, last BitPosition) (BitIterator, error) {
	from, err := v.checkPosition("bitvector.EraseRange: first", first)
	if err != nil {
		return BitIterator{}, err
	}
	to, err := v.checkPosition("bitvector.EraseRange: last", last)
	if err != nil {
		return BitIterator{}, err
	}
	if from >= to {
		return BitIterator{v: v, index: to}, nil
	}
	count := to - from
	data := v.st.Data()
	for i := to; i < v.size; i++ {
		setBit(data, i-count, getBit(data, i))
	}
	clearBits(data, v.size-count, v.size)
	v.size -= count
	return BitIterator{v: v, index: from}, nil
}

// Assign replaces the contents with bits.
func (v *BitVector) Assign(bits ...bool) error {
	v.Clear()
	if err := v.Reserve(len(bits)); err != nil {
		return err
	}
	data := v.st.Data()
	for i, b := range bits {
		setBit(data, i, b)
	}
	v.size = len(bits)
	return nil
}

// CopyFrom replaces the contents with a copy of src.
func (v *BitVector) CopyFrom(src *BitVector) error {
	if src == v {
		return nil
	}
	v.Clear()
	if err := v.Reserve(src.size); err != nil {
		return err
	}
	copy(v.st.Data(), src.Data())
	v.size = src.size
	return nil
}

// MoveFrom exchanges storage and sizes with src in constant time.
func (v *BitVector) MoveFrom(src *BitVector) {
	if src == v {
		return
	}
	v.st.Swap(&src.st)
	v.size, src.size = src.size, v.size
}

// Begin returns an iterator to the first bit.
func (v *BitVector) Begin() BitIterator { return BitIterator{v: v} }

// End returns an iterator past the last bit.
func (v *BitVector) End() BitIterator { return BitIterator{v: v, index: v.size} }

// CBegin returns a read-only iterator to the first bit.
func (v *BitVector) CBegin() ConstBitIterator { return v.Begin().Const() }

// CEnd returns a read-only iterator past the last bit.
func (v *BitVector) CEnd() ConstBitIterator { return v.End().Const() }

// RBegin returns a reverse iterator to the last bit.
func (v *BitVector) RBegin() BitReverseIterator { return BitReverseIterator{v: v} }

// REnd returns a reverse iterator before the first bit.
func (v *BitVector) REnd() BitReverseIterator { return BitReverseIterator{v: v, index: v.size} }

// All yields index and bit pairs front to back.
func (v *BitVector) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, getBit(v.st.Data(), i)) {
				return
			}
		}
	}
}

// Values yields the bits front to back.
func (v *BitVector) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(getBit(v.st.Data(), i)) {
				return
			}
		}
	}
}

// Backward yields index and bit pairs back to front.
func (v *BitVector) Backward() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if i >= v.size {
				continue
			}
			if !yield(i, getBit(v.st.Data(), i)) {
				return
			}
		}
	}
}

// BitIterator is a random-access position in a BitVector.
type BitIterator struct {
	v     *BitVector
	index int
}

func (it BitIterator) check(where string, i int) error {
	if it.v == nil {
		return errors.Wrapf(ErrInvalidIterator, "%s: detached iterator", where)
	}
	return it.v.check(where, i)
}

func (it BitIterator) bitPosition() (*BitVector, int) { return it.v, it.index }

// Offset returns the index the iterator designates.
func (it BitIterator) Offset() int { return it.index }

// Const returns a read-only iterator at the same position.
func (it BitIterator) Const() ConstBitIterator { return ConstBitIterator(it) }

// Ref returns a reference to the designated bit.
func (it BitIterator) Ref() (BitRef, error) {
	if err := it.check("bit iterator", it.index); err != nil {
		return BitRef{}, err
	}
	return bitRef(it.v.st.Data(), it.index), nil
}

// Get returns the designated bit.
func (it BitIterator) Get() (bool, error) {
	r, err := it.Ref()
	if err != nil {
		return false, err
	}
	return r.Get(), nil
}

// Set writes the designated bit.
func (it BitIterator) Set(b bool) error {
	r, err := it.Ref()
	if err != nil {
		return err
	}
	r.Set(b)
	return nil
}

// Index returns a reference to the bit k positions after the iterator.
func (it BitIterator) Index(k int) (BitRef, error) { return it.Add(k).Ref() }

// Next returns the iterator one position forward.
func (it BitIterator) Next() BitIterator { return it.Add(1) }

// Prev returns the iterator one position back.
func (it BitIterator) Prev() BitIterator { return it.Add(-1) }

// Add returns the iterator n positions forward.
func (it BitIterator) Add(n int) BitIterator { return BitIterator{v: it.v, index: it.index + n} }

// Sub returns the iterator n positions back.
func (it BitIterator) Sub(n int) BitIterator { return it.Add(-n) }

// Distance returns it - other in positions.
func (it BitIterator) Distance(other BitIterator) int { return it.index - other.index }

// Equal reports whether both iterators designate the same position.
func (it BitIterator) Equal(other BitIterator) bool { return it == other }

// Less reports whether it precedes other in the same bit vector.
func (it BitIterator) Less(other BitIterator) bool { return it.v == other.v && it.index < other.index }

// Greater reports whether it follows other in the same bit vector.
func (it BitIterator) Greater(other BitIterator) bool { return other.Less(it) }

// LessEq reports Less or Equal.
func (it BitIterator) LessEq(other BitIterator) bool { return it.Less(other) || it.Equal(other) }

// GreaterEq reports Greater or Equal.
func (it BitIterator) GreaterEq(other BitIterator) bool { return it.Greater(other) || it.Equal(other) }

// ConstBitIterator is a read-only random-access position in a BitVector.
type ConstBitIterator struct {
	v     *BitVector
	index int
}

func (it ConstBitIterator) bitPosition() (*BitVector, int) { return it.v, it.index }

// Offset returns the index the iterator designates.
func (it ConstBitIterator) Offset() int { return it.index }

// Ref returns a read-only reference to the designated bit.
func (it ConstBitIterator) Ref() (ConstBitRef, error) {
	r, err := BitIterator(it).Ref()
	if err != nil {
		return ConstBitRef{}, err
	}
	return r.Const(), nil
}

// Get returns the designated bit.
func (it ConstBitIterator) Get() (bool, error) { return BitIterator(it).Get() }

// Index returns the bit k positions after the iterator.
func (it ConstBitIterator) Index(k int) (bool, error) { return it.Add(k).Get() }

// Next returns the iterator one position forward.
func (it ConstBitIterator) Next() ConstBitIterator { return it.Add(1) }

// Prev returns the iterator one position back.
func (it ConstBitIterator) Prev() ConstBitIterator { return it.Add(-1) }

// Add returns the iterator n positions forward.
func (it ConstBitIterator) Add(n int) ConstBitIterator {
	return ConstBitIterator{v: it.v, index: it.index + n}
}

// Sub returns the iterator n positions back.
func (it ConstBitIterator) Sub(n int) ConstBitIterator { return it.Add(-n) }

// Distance returns it - other in positions.
func (it ConstBitIterator) Distance(other ConstBitIterator) int { return it.index - other.index }

// Equal reports whether both iterators designate the same position.
func (it ConstBitIterator) Equal(other ConstBitIterator) bool { return it == other }

// Less reports whether it precedes other in the same bit vector.
func (it ConstBitIterator) Less(other ConstBitIterator) bool {
	return it.v == other.v && it.index < other.index
}

// BitReverseIterator walks a BitVector from the back. Reverse index i
// designates bit Len()-1-i.
type BitReverseIterator struct {
	v     *BitVector
	index int
}

func (it BitReverseIterator) forward() BitIterator {
	if it.v == nil {
		return BitIterator{index: -1}
	}
	return BitIterator{v: it.v, index: it.v.size - it.index - 1}
}

// Offset returns the reverse index the iterator designates.
func (it BitReverseIterator) Offset() int { return it.index }

// Base returns the forward iterator one past the designated bit.
func (it BitReverseIterator) Base() BitIterator { return it.forward().Next() }

// Ref returns a reference to the designated bit.
func (it BitReverseIterator) Ref() (BitRef, error) { return it.forward().Ref() }

// Get returns the designated bit.
func (it BitReverseIterator) Get() (bool, error) { return it.forward().Get() }

// Set writes the designated bit.
func (it BitReverseIterator) Set(b bool) error { return it.forward().Set(b) }

// Index returns a reference to the bit k positions after the iterator.
func (it BitReverseIterator) Index(k int) (BitRef, error) { return it.Add(k).Ref() }

// Next returns the iterator one position towards the front.
func (it BitReverseIterator) Next() BitReverseIterator { return it.Add(1) }

// Prev returns the iterator one position towards the back.
func (it BitReverseIterator) Prev() BitReverseIterator { return it.Add(-1) }

// Add returns the iterator n positions towards the front.
func (it BitReverseIterator) Add(n int) BitReverseIterator {
	return BitReverseIterator{v: it.v, index: it.index + n}
}

// Sub returns the iterator n positions towards the back.
func (it BitReverseIterator) Sub(n int) BitReverseIterator { return it.Add(-n) }

// Distance returns it - other in positions.
func (it BitReverseIterator) Distance(other BitReverseIterator) int { return it.index - other.index }

// Equal reports whether both iterators designate the same position.
func (it BitReverseIterator) Equal(other BitReverseIterator) bool { return it == other }

// Less reports whether it precedes other in reverse order.
func (it BitReverseIterator) Less(other BitReverseIterator) bool {
	return it.v == other.v && it.index < other.index
}

// Greater reports whether it follows other in reverse order.
func (it BitReverseIterator) Greater(other BitReverseIterator) bool { return other.Less(it) }

// LessEq reports Less or Equal.
func (it BitReverseIterator) LessEq(other BitReverseIterator) bool {
	return it.Less(other) || it.Equal(other)
}

// GreaterEq reports Greater or Equal.
func (it BitReverseIterator) GreaterEq(other BitReverseIterator) bool {
	return it.Greater(other) || it.Equal(other)
}
