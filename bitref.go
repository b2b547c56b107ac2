// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// Bit i of a packed container lives in octet i>>3 at sub-bit i&7.

// octets returns the number of octets holding bits.
func octets(bits int) int { return bits>>3 + min(bits&7, 1) }

// BitRef designates one bit of a packed container. It stays valid until the
// container reallocates.
type BitRef struct {
	octet *byte
	bit   uint8
}

func bitRef(data []byte, i int) BitRef {
	return BitRef{octet: &data[i>>3], bit: uint8(i & 7)}
}

// Get returns the bit.
func (r BitRef) Get() bool { return *r.octet>>r.bit&1 != 0 }

// Set writes the bit.
func (r BitRef) Set(b bool) {
	if b {
		*r.octet |= 1 << r.bit
	} else {
		*r.octet &^= 1 << r.bit
	}
}

// Assign copies the bit designated by src.
func (r BitRef) Assign(src ConstBitRef) { r.Set(src.Get()) }

// Const returns a read-only reference to the same bit.
func (r BitRef) Const() ConstBitRef { return ConstBitRef(r) }

// ConstBitRef is a read-only BitRef.
type ConstBitRef struct {
	octet *byte
	bit   uint8
}

// Get returns the bit.
func (r ConstBitRef) Get() bool { return *r.octet>>r.bit&1 != 0 }

func getBit(data []byte, i int) bool { return data[i>>3]>>(i&7)&1 != 0 }

func setBit(data []byte, i int, b bool) {
	if b {
		data[i>>3] |= 1 << (i & 7)
	} else {
		data[i>>3] &^= 1 << (i & 7)
	}
}

// clearBits zeroes bits [from, to).
func clearBits(data []byte, from, to int) {
	for i := from; i < to; i++ {
		setBit(data, i, false)
	}
}
