// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

// Storage owns a contiguous region of element slots.
//
// Slots [0, Cap()) are addressable. Which of them hold live elements is
// bookkeeping of the owning container, never of the storage: Create places
// an already constructed element into a slot, Destroy runs the element's
// destructor and returns the slot to its raw, zeroed state.
type Storage[T any] interface {
	// Create places v into slot i.
	Create(i int, v T)
	// Destroy destroys the element in slot i.
	Destroy(i int) error
	// At returns slot i without checking whether it is live.
	At(i int) *T
	// Data returns all slots.
	Data() []T
	// Cap returns the number of slots.
	Cap() int
}

var (
	_ Storage[int] = (*Embedded[int])(nil)
	_ Storage[int] = (*Heap[int])(nil)
)
