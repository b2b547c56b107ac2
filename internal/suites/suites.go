// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package suites holds the scripted container checks run by vecdbg.
package suites

import (
	"cmp"
	"fmt"
	"io"
	"iter"

	"code.hybscloud.com/vec"
	"code.hybscloud.com/vec/internal/harness"
)

// Entry is one named suite. Run starts the suite on s and returns its report.
type Entry struct {
	Name string
	Run  func(s *harness.Suite) harness.Report
}

// All returns every suite in run order.
func All() []Entry {
	return []Entry{
		{"default_config_int", DefaultConfigInt},
		{"default_config_str", DefaultConfigStr},
		{"iterator_tests", IteratorTests},
		{"emplace_insert_remove", EmplaceInsertRemove},
		{"on_stack", OnStack},
		{"on_heap", OnHeap},
		{"bool_specialization", BoolSpecialization},
		{"bit_vector", BitVector},
	}
}

// Lookup returns the suite called name.
func Lookup(name string) (Entry, bool) {
	for _, e := range All() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// printAll writes every value followed by a space.
func printAll[T any](w io.Writer, values iter.Seq[T]) {
	for x := range values {
		fmt.Fprint(w, x, " ")
	}
}

func bit(b bool) int {
	if b {
		return 1
	}
	return 0
}

// randomAccess is the iterator surface sortRange needs.
type randomAccess[I randomAccess[I, T], T any] interface {
	Add(n int) I
	Distance(other I) int
	Ptr() (*T, error)
}

// sortRange sorts [first, last) in ascending order by insertion, using only
// iterator arithmetic and dereference.
func sortRange[I randomAccess[I, T], T cmp.Ordered](first, last I) error {
	n := last.Distance(first)
	for i := 1; i < n; i++ {
		for j := i; j > 0; j-- {
			a, err := first.Add(j - 1).Ptr()
			if err != nil {
				return err
			}
			b, err := first.Add(j).Ptr()
			if err != nil {
				return err
			}
			if *a <= *b {
				break
			}
			*a, *b = *b, *a
		}
	}
	return nil
}

// copyRange copies [first, last) to the positions starting at out.
func copyRange[T any](first, last vec.ConstIterator[T], out vec.Iterator[T]) error {
	for it := first; it.Less(last); it = it.Next() {
		x, err := it.Get()
		if err != nil {
			return err
		}
		if err := out.Set(x); err != nil {
			return err
		}
		out = out.Next()
	}
	return nil
}
