// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrOutOfRange reports a checked access outside [0, size), a position
	// outside [0, size], a size beyond a fixed container's maximum, or a pop
	// from an empty container.
	ErrOutOfRange = errors.New("vec: out of range")

	// ErrInvalidIterator reports a position that belongs to another container.
	// It matches ErrOutOfRange under errors.Is.
	ErrInvalidIterator = errors.Wrap(ErrOutOfRange, "vec: invalid iterator")

	// ErrInvalidArgument reports a storage reallocation that cannot keep the
	// elements it was asked to preserve, or a misused allocator.
	ErrInvalidArgument = errors.New("vec: invalid argument")

	// ErrOutOfMemory reports an allocation the allocator could not satisfy.
	ErrOutOfMemory = errors.New("vec: out of memory")

	// ErrPointerElements reports an element type holding Go pointers handed to
	// an allocator whose memory the garbage collector does not scan.
	ErrPointerElements = errors.New("vec: element type holds pointers")

	// ErrUnsupported reports an allocator unavailable on this platform.
	ErrUnsupported = errors.New("vec: unsupported")
)

func errIndex(where string, index, size int) error {
	return errors.Wrapf(ErrOutOfRange, "%s: index == %d out of range within size == %d", where, index, size)
}

func errSize(where string, size, maxSize int) error {
	return errors.Wrapf(ErrOutOfRange, "%s: size == %d exceeds max size == %d", where, size, maxSize)
}

func errForeign(where string) error {
	return errors.Wrapf(ErrInvalidIterator, "%s: iterator refers to another container", where)
}
