// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// Embedded is a fixed region of slots whose size never changes after
// construction. It does not go through an allocator.
type Embedded[T any] struct {
	buf []T
}

// NewEmbedded returns storage with maxSize slots.
func NewEmbedded[T any](maxSize int) *Embedded[T] {
	return &Embedded[T]{buf: make([]T, max(maxSize, 0))}
}

// EmbeddedOver borrows buf as storage, typically a caller-owned array:
//
//	var slots [16]int
//	st := vec.EmbeddedOver(slots[:])
//
// Every slot of buf starts raw; its previous contents are cleared.
func EmbeddedOver[T any](buf []T) *Embedded[T] {
	clear(buf)
	return &Embedded[T]{buf: buf[:len(buf):len(buf)]}
}

// Create places v into slot i.
func (s *Embedded[T]) Create(i int, v T) { s.buf[i] = v }

// Destroy destroys the element in slot i.
func (s *Embedded[T]) Destroy(i int) error { return destroy(&s.buf[i]) }

// At returns slot i.
func (s *Embedded[T]) At(i int) *T { return &s.buf[i] }

// Data returns all slots.
func (s *Embedded[T]) Data() []T { return s.buf }

// Cap returns the fixed number of slots.
func (s *Embedded[T]) Cap() int { return len(s.buf) }

// Allocator returns the empty allocator.
func (s *Embedded[T]) Allocator() EmptyAllocator[T] { return EmptyAllocator[T]{} }
