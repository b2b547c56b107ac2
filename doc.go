// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vec provides sequence containers layered over interchangeable
// storage strategies and pluggable allocators.
//
// The core type [Vector] is a growable sequence over [Heap] storage. [Array]
// is a sequence of bounded size over any [Storage], either a fixed
// [Embedded] region or a [Heap] block. [BitVector] and [BitArray] pack
// bools eight to an octet.
//
// # Design Philosophy
//
// vec provides:
//   - Explicit element lifecycle: containers decide when an element is
//     constructed, moved and destroyed, and storage only places values
//   - Strong failure guarantees: a bulk operation that fails part way destroys
//     what it built and leaves the container as it was
//   - Checked access everywhere except the explicit Unchecked entry points
//
// # Element Lifecycle
//
// Element types opt into lifecycle hooks through optional interfaces:
//
//   - [Initializer]: default construction, implemented on *T
//   - [Cloner]: copy construction, implemented on T
//   - [Destroyer]: destruction, implemented on *T
//   - [Constructor]: in-place construction for [Vector.EmplaceBack]
//
// A type implementing none of them behaves like a plain Go value. A move is
// an assignment that zeroes the source; it never fails and runs no hook.
//
// # Allocators
//
//   - [RawAllocator]: unconstructed slots on the Go heap (default)
//   - [TypedAllocator]: every slot default-constructed, destroyed on release
//   - [EmptyAllocator]: marker reported by [Embedded] storage
//   - [PoolAllocator]: raw slots recycled through sync.Pool by power-of-two size
//   - [MmapAllocator]: raw slots in anonymous mappings, pointer-free types only
//   - [MeteredAllocator]: Prometheus accounting around another allocator
//
// # Storage
//
//   - [Storage]: slot region with Create, Destroy, At, Data and Cap
//   - [Embedded]: fixed slots, optionally borrowed with [EmbeddedOver]
//   - [Heap]: one allocator block, relocatable by [Heap.Reallocate]
//
// # Vector
//
// Construction:
//
//   - [New], [NewN], [NewFill], [Of]: Empty, default, filled and listed vectors
//   - [WithAllocator]: Select a raw allocator
//   - [Vector.Clone], [Vector.Move]: Copy and constant-time takeover
//
// Growth: push, pop and insert double the capacity, starting from one, until it
// exceeds the new size, and halve it once three quarters or more of it is
// unused. [Vector.Reserve] and [Vector.Resize] never shrink;
// [Vector.ShrinkToFit] does.
//
// Iterators are (vector, index) pairs. They survive reallocation and are
// bounds-checked on every dereference:
//
//   - [Iterator], [ConstIterator]: Front to back
//   - [ReverseIterator], [ConstReverseIterator]: Back to front
//   - [Position]: Insertion and erasure point accepted by [Vector.Insert]
//     and [Vector.EraseRange]
//   - [Vector.All], [Vector.Values], [Vector.Backward]: Range-over-func
//
// # Packed Bools
//
//   - [BitVector], [BitArray]: Bit i at octet i>>3, sub-bit i&7
//   - [BitRef], [ConstBitRef]: References to one bit
//   - [BitIterator], [BitReverseIterator]: Positions in a [BitVector]
//
// # Errors
//
// Failures are reported with sentinel errors wrapped with context, tested
// with errors.Is:
//
//   - [ErrOutOfRange]: Checked access, position or size out of bounds
//   - [ErrInvalidIterator]: Position of another container (also [ErrOutOfRange])
//   - [ErrInvalidArgument]: Reallocation that cannot keep its elements
//   - [ErrOutOfMemory]: Allocation refused
//   - [ErrPointerElements], [ErrUnsupported]: [MmapAllocator] limits
//
// # Logging
//
// [SetLogger] installs a zap logger; reallocations and swallowed destructor
// failures are traced at debug level.
//
// Containers are not safe for concurrent use.
package vec
