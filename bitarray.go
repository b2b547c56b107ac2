// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"iter"
)

// BitArray is a sequence of at most MaxSize bools packed eight to an octet
// in fixed storage. Bits at or past Len() are always zero.
type BitArray struct {
	st      Storage[byte]
	maxBits int
	size    int
}

// NewBitArray returns an empty bit array of maxBits bits over st, which must
// hold at least (maxBits+7)/8 octets. The octets are cleared.
func NewBitArray(st Storage[byte], maxBits int) (*BitArray, error) {
	if maxBits < 0 || octets(maxBits) > st.Cap() {
		return nil, errSize("bitarray.NewBitArray", maxBits, st.Cap()*8)
	}
	clear(st.Data()[:octets(maxBits)])
	return &BitArray{st: st, maxBits: maxBits}, nil
}

// NewBitArrayFill returns a bit array holding n copies of b.
func NewBitArrayFill(st Storage[byte], maxBits, n int, b bool) (*BitArray, error) {
	a, err := NewBitArray(st, maxBits)
	if err != nil {
		return nil, err
	}
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	if b {
		for i := range n {
			setBit(a.st.Data(), i, true)
		}
	}
	return a, nil
}

// NewBitArrayOf returns a bit array holding bits.
func NewBitArrayOf(st Storage[byte], maxBits int, bits ...bool) (*BitArray, error) {
	a, err := NewBitArray(st, maxBits)
	if err != nil {
		return nil, err
	}
	if err := a.Assign(bits...); err != nil {
		return nil, err
	}
	return a, nil
}

// Clone returns a copy of a over st.
func (a *BitArray) Clone(st Storage[byte]) (*BitArray, error) {
	c, err := NewBitArray(st, a.maxBits)
	if err != nil {
		return nil, err
	}
	if err := c.CopyFrom(a); err != nil {
		return nil, err
	}
	return c, nil
}

// MoveTo returns a bit array over st holding a's bits. a is left empty.
func (a *BitArray) MoveTo(st Storage[byte]) (*BitArray, error) {
	m, err := a.Clone(st)
	if err != nil {
		return nil, err
	}
	a.Clear()
	return m, nil
}

func (a *BitArray) check(where string, i int) error {
	if i < 0 || i >= a.size {
		return errIndex(where, i, a.size)
	}
	return nil
}

// Ref returns a reference to bit i, or ErrOutOfRange unless 0 <= i < Len().
func (a *BitArray) Ref(i int) (BitRef, error) {
	if err := a.check("bitarray.Ref", i); err != nil {
		return BitRef{}, err
	}
	return bitRef(a.st.Data(), i), nil
}

// ConstRef returns a read-only reference to bit i.
func (a *BitArray) ConstRef(i int) (ConstBitRef, error) {
	if err := a.check("bitarray.ConstRef", i); err != nil {
		return ConstBitRef{}, err
	}
	return bitRef(a.st.Data(), i).Const(), nil
}

// RefUnchecked returns a reference to bit i, which must be below MaxSize().
func (a *BitArray) RefUnchecked(i int) BitRef { return bitRef(a.st.Data(), i) }

// Get returns bit i.
func (a *BitArray) Get(i int) (bool, error) {
	if err := a.check("bitarray.Get", i); err != nil {
		return false, err
	}
	return getBit(a.st.Data(), i), nil
}

// Set writes bit i.
func (a *BitArray) Set(i int, b bool) error {
	if err := a.check("bitarray.Set", i); err != nil {
		return err
	}
	setBit(a.st.Data(), i, b)
	return nil
}

// Front returns a reference to the first bit.
func (a *BitArray) Front() (BitRef, error) {
	if err := a.check("bitarray.Front", 0); err != nil {
		return BitRef{}, err
	}
	return bitRef(a.st.Data(), 0), nil
}

// Back returns a reference to the last bit.
func (a *BitArray) Back() (BitRef, error) {
	if err := a.check("bitarray.Back", a.size-1); err != nil {
		return BitRef{}, err
	}
	return bitRef(a.st.Data(), a.size-1), nil
}

// Data returns the octets holding the live bits.
func (a *BitArray) Data() []byte { return a.st.Data()[:octets(a.size)] }

// Len returns the number of bits.
func (a *BitArray) Len() int { return a.size }

// Empty reports whether the bit array holds no bit.
func (a *BitArray) Empty() bool { return a.size == 0 }

// MaxSize returns the fixed bit capacity.
func (a *BitArray) MaxSize() int { return a.maxBits }

// Resize sets Len() to n. New bits are false.
func (a *BitArray) Resize(n int) error {
	if n < 0 || n > a.maxBits {
		return errSize("bitarray.Resize", n, a.maxBits)
	}
	if n < a.size {
		clearBits(a.st.Data(), n, a.size)
	}
	a.size = n
	return nil
}

// Clear removes every bit.
func (a *BitArray) Clear() {
	clear(a.Data())
	a.size = 0
}

// Assign replaces the contents with bits.
func (a *BitArray) Assign(bits ...bool) error {
	if len(bits) > a.maxBits {
		return errSize("bitarray.Assign", len(bits), a.maxBits)
	}
	a.Clear()
	data := a.st.Data()
	for i, b := range bits {
		setBit(data, i, b)
	}
	a.size = len(bits)
	return nil
}

// CopyFrom replaces the contents with a copy of src.
func (a *BitArray) CopyFrom(src *BitArray) error {
	if src == a {
		return nil
	}
	if src.size > a.maxBits {
		return errSize("bitarray.CopyFrom", src.size, a.maxBits)
	}
	a.Clear()
	copy(a.st.Data(), src.Data())
	a.size = src.size
	return nil
}

// All yields index and bit pairs front to back.
func (a *BitArray) All() iter.Seq2[int, bool] {
	return func(yield func(int, bool) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, getBit(a.st.Data(), i)) {
				return
			}
		}
	}
}

// Values yields the bits front to back.
func (a *BitArray) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(getBit(a.st.Data(), i)) {
				return
			}
		}
	}
}
