// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux || darwin

package vec

import (
	"reflect"
	"unsafe"

	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// MmapAllocator allocates raw slots in anonymous private mappings outside
// the Go heap. Each block is its own mapping, released by Deallocate.
//
// The collector does not scan mapped memory, so element types holding Go
// pointers are refused with ErrPointerElements.
type MmapAllocator[T any] struct{}

// Raw returns true: fresh mappings are zero-filled.
func (MmapAllocator[T]) Raw() bool { return true }

// Allocate maps a block of n slots.
func (MmapAllocator[T]) Allocate(n int) ([]T, error) {
	if err := checkAllocSize[T](n); err != nil {
		return nil, err
	}
	if t := reflect.TypeFor[T](); hasPointers(t) {
		return nil, errors.Wrapf(ErrPointerElements, "mmap: %s", t)
	}
	size := int(unsafe.Sizeof(*new(T))) * n
	if size == 0 {
		return make([]T, n), nil
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		if errors.Is(err, unix.ENOMEM) {
			return nil, errors.Wrapf(ErrOutOfMemory, "mmap: %d bytes", size)
		}
		return nil, errors.Wrapf(err, "mmap: %d bytes", size)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// Deallocate unmaps a block returned by Allocate.
func (MmapAllocator[T]) Deallocate(block []T, n int) error {
	if err := checkRelease(block, n); err != nil {
		return err
	}
	size := int(unsafe.Sizeof(*new(T))) * n
	if size == 0 {
		return nil
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(block))), size)
	if err := unix.Munmap(b); err != nil {
		return errors.Wrapf(err, "munmap: %d bytes", size)
	}
	return nil
}

// hasPointers reports whether values of t hold anything the collector must
// trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.Slice, reflect.String:
		return true
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
	}
	return false
}
