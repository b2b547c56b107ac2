// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package suites

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"code.hybscloud.com/vec"
	"code.hybscloud.com/vec/internal/harness"
)

const arraySize = 5

// arrayScript runs the fixed-size array script over storage from newStorage.
func arrayScript(s *harness.Suite, newStorage func() (vec.Storage[int], error)) harness.Report {
	var arr *vec.Array[int]

	s.Case("allocate storage", func(w io.Writer) error {
		st, err := newStorage()
		if err != nil {
			return err
		}
		arr = vec.NewArray(st)
		fmt.Fprint(w, arr.MaxSize())
		return nil
	}, "5")

	s.ExpectFailure("bounds checked", func() error {
		return arr.Set(0, 0)
	})

	s.Case("bounds unchecked", func(io.Writer) error {
		*arr.AtUnchecked(0) = 0
		return nil
	}, "")

	fill := func() error {
		if err := arr.Resize(arraySize); err != nil {
			return err
		}
		for i := range arraySize {
			if err := arr.Set(i, i); err != nil {
				return err
			}
		}
		return nil
	}

	s.Case("resize and simple routines work", func(w io.Writer) error {
		if err := fill(); err != nil {
			return err
		}
		printAll(w, arr.Values())
		return nil
	}, "0 1 2 3 4 ")

	s.ExpectFailure("resize past max size", func() error {
		return arr.Resize(arraySize + 1)
	})

	s.Case("resize zeroes", func(w io.Writer) error {
		if err := arr.Resize(0); err != nil {
			return err
		}
		if err := arr.Resize(4); err != nil {
			return err
		}
		fmt.Fprint(w, arr.Len(), " ")
		printAll(w, arr.Values())
		return nil
	}, "4 0 0 0 0 ")

	s.Case("back and front", func(w io.Writer) error {
		back, err := arr.Back()
		if err != nil {
			return err
		}
		*back = -1
		front, err := arr.Front()
		if err != nil {
			return err
		}
		*front = -2
		fmt.Fprint(w, *front, " ", *back)
		return nil
	}, "-2 -1")

	s.Case("data", func(w io.Writer) error {
		if err := fill(); err != nil {
			return err
		}
		printAll(w, slices.Values(arr.Data()))
		return nil
	}, "0 1 2 3 4 ")

	s.Case("move ctr", func(w io.Writer) error {
		st, err := newStorage()
		if err != nil {
			return err
		}
		mv, err := arr.MoveTo(st)
		if err != nil {
			return err
		}
		printAll(w, mv.Values())
		return nil
	}, "0 1 2 3 4 ")

	s.Case("list assign", func(w io.Writer) error {
		if err := arr.Assign(0, -2, -5); err != nil {
			return err
		}
		printAll(w, arr.Values())
		return nil
	}, "0 -2 -5 ")

	return s.Finish()
}

// OnStack scripts an array over embedded storage.
func OnStack(s *harness.Suite) harness.Report {
	s.Start("on_stack")
	return arrayScript(s, func() (vec.Storage[int], error) {
		return vec.NewEmbedded[int](arraySize), nil
	})
}

// OnHeap scripts an array over heap storage.
func OnHeap(s *harness.Suite) harness.Report {
	s.Start("on_heap")
	return arrayScript(s, func() (vec.Storage[int], error) {
		return vec.NewHeap[int](arraySize, nil)
	})
}

func printBits(w io.Writer, bits iter.Seq[bool]) {
	for b := range bits {
		fmt.Fprint(w, bit(b), " ")
	}
}

const bitArraySize = 25

// BoolSpecialization scripts a packed bit array over embedded storage.
func BoolSpecialization(s *harness.Suite) harness.Report {
	s.Start("bool_specialization")
	newStorage := func() vec.Storage[byte] { return vec.NewEmbedded[byte]((bitArraySize + 7) / 8) }
	var arr *vec.BitArray

	s.Case("allocate storage", func(w io.Writer) error {
		var err error
		if arr, err = vec.NewBitArray(newStorage(), bitArraySize); err != nil {
			return err
		}
		fmt.Fprint(w, arr.MaxSize())
		return nil
	}, "25")

	s.ExpectFailure("bounds checked", func() error {
		return arr.Set(0, false)
	})

	s.Case("bounds unchecked", func(io.Writer) error {
		arr.RefUnchecked(0).Set(false)
		return nil
	}, "")

	s.Case("resize and simple routines work", func(w io.Writer) error {
		if err := arr.Resize(arr.MaxSize()); err != nil {
			return err
		}
		for i := range arr.Len() {
			if err := arr.Set(i, i&1 == 1); err != nil {
				return err
			}
		}
		printBits(w, arr.Values())
		return nil
	}, "0 1 0 1 0 1 0 1 "+
		"0 1 0 1 0 1 0 1 "+
		"0 1 0 1 0 1 0 1 0 ")

	s.Case("resize zeroes", func(w io.Writer) error {
		if err := arr.Resize(0); err != nil {
			return err
		}
		if err := arr.Resize(4); err != nil {
			return err
		}
		fmt.Fprint(w, arr.Len(), " ")
		printBits(w, arr.Values())
		return nil
	}, "4 0 0 0 0 ")

	s.Case("back and front", func(w io.Writer) error {
		back, err := arr.Back()
		if err != nil {
			return err
		}
		back.Set(true)
		front, err := arr.Front()
		if err != nil {
			return err
		}
		front.Set(false)
		printBits(w, arr.Values())
		return nil
	}, "0 0 0 1 ")

	s.Case("move ctr", func(w io.Writer) error {
		mv, err := arr.MoveTo(newStorage())
		if err != nil {
			return err
		}
		printBits(w, mv.Values())
		return nil
	}, "0 0 0 1 ")

	s.Case("list assign", func(w io.Writer) error {
		if err := arr.Assign(true, true, false, true); err != nil {
			return err
		}
		printBits(w, arr.Values())
		return nil
	}, "1 1 0 1 ")

	s.Case("const ref works", func(w io.Writer) error {
		carr, err := arr.Clone(newStorage())
		if err != nil {
			return err
		}
		for i := range carr.Len() {
			r, err := carr.ConstRef(i)
			if err != nil {
				return err
			}
			fmt.Fprint(w, bit(r.Get()), " ")
		}
		return nil
	}, "1 1 0 1 ")

	return s.Finish()
}
