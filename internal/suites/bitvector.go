// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package suites

import (
	"fmt"
	"io"

	"code.hybscloud.com/vec"
	"code.hybscloud.com/vec/internal/harness"
)

// BitVector scripts a packed growable bit vector.
func BitVector(s *harness.Suite) harness.Report {
	s.Start("bit_vector")
	v := new(vec.BitVector)

	s.ExpectFailure("bounds checked", func() error {
		return v.Set(0, true)
	})

	s.Case("push back", func(w io.Writer) error {
		for i := range 10 {
			if err := v.PushBack(i%3 == 0); err != nil {
				return err
			}
		}
		printBits(w, v.Values())
		return nil
	}, "1 0 0 1 0 0 1 0 0 1 ")

	s.Case("capacity in octets", func(w io.Writer) error {
		fmt.Fprint(w, v.Cap())
		return nil
	}, "32")

	s.Case("insert", func(w io.Writer) error {
		if _, err := v.Insert(v.Begin().Add(1), true, true); err != nil {
			return err
		}
		printBits(w, v.Values())
		return nil
	}, "1 1 1 0 0 1 0 0 1 0 0 1 ")

	s.Case("erase range", func(w io.Writer) error {
		if _, err := v.EraseRange(v.Begin(), v.Begin().Add(3)); err != nil {
			return err
		}
		printBits(w, v.Values())
		return nil
	}, "0 0 1 0 0 1 0 0 1 ")

	s.Case("reverse iterators", func(w io.Writer) error {
		for it := v.RBegin(); !it.Equal(v.REnd()); it = it.Next() {
			b, err := it.Get()
			if err != nil {
				return err
			}
			fmt.Fprint(w, bit(b), " ")
		}
		return nil
	}, "1 0 0 1 0 0 1 0 0 ")

	s.Case("pop back shrinks", func(w io.Writer) error {
		for v.Len() > 1 {
			if err := v.PopBack(); err != nil {
				return err
			}
		}
		fmt.Fprint(w, v.Len(), " ", v.Cap())
		return nil
	}, "1 16")

	s.Case("copy", func(w io.Writer) error {
		cp, err := v.Clone()
		if err != nil {
			return err
		}
		if err := cp.Set(0, true); err != nil {
			return err
		}
		printBits(w, v.Values())
		printBits(w, cp.Values())
		return nil
	}, "0 1 ")

	s.ExpectFailure("pop past empty", func() error {
		v.Clear()
		return v.PopBack()
	})

	return s.Finish()
}
