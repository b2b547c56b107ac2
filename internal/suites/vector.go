// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package suites

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"code.hybscloud.com/vec"
	"code.hybscloud.com/vec/internal/harness"
)

func printFirst[T any](w io.Writer, v *vec.Vector[T], n int) error {
	for i := range n {
		x, err := v.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprint(w, x, " ")
	}
	return nil
}

// defaultConfig scripts a vector of T; conv renders an int as a T.
func defaultConfig[T any](s *harness.Suite, conv func(int) T, zeroes string, moveBack bool) harness.Report {
	v := new(vec.Vector[T])

	s.ExpectFailure("bounds checked", func() error {
		return v.Set(0, conv(0))
	})

	fill := func() error {
		if err := v.Resize(5); err != nil {
			return err
		}
		for i := range 5 {
			if err := v.Set(i, conv(i)); err != nil {
				return err
			}
		}
		return nil
	}

	s.Case("resize and simple routines work", func(w io.Writer) error {
		if err := fill(); err != nil {
			return err
		}
		return printFirst(w, v, 5)
	}, "0 1 2 3 4 ")

	s.Case("reserve more", func(w io.Writer) error {
		if err := v.Reserve(8); err != nil {
			return err
		}
		fmt.Fprint(w, bit(v.Cap() >= 8))
		return nil
	}, "1")

	s.Case("bounds unchecked", func(io.Writer) error {
		*v.AtUnchecked(5) = conv(0)
		return nil
	}, "")

	s.Case("resize zeroes", func(w io.Writer) error {
		if err := v.Resize(0); err != nil {
			return err
		}
		if err := v.Resize(4); err != nil {
			return err
		}
		fmt.Fprint(w, v.Len(), " ")
		printAll(w, v.Values())
		return nil
	}, zeroes)

	s.Case("back and front", func(w io.Writer) error {
		back, err := v.Back()
		if err != nil {
			return err
		}
		*back = conv(-1)
		front, err := v.Front()
		if err != nil {
			return err
		}
		*front = conv(-2)
		first, err := v.Get(0)
		if err != nil {
			return err
		}
		last, err := v.Get(v.Len() - 1)
		if err != nil {
			return err
		}
		fmt.Fprint(w, first, " ", last)
		return nil
	}, "-2 -1")

	s.Case("data", func(w io.Writer) error {
		if err := fill(); err != nil {
			return err
		}
		printAll(w, slices.Values(v.Data()))
		return nil
	}, "0 1 2 3 4 ")

	moved := "0 1 2 3 4 "
	if moveBack {
		moved += moved
	}
	s.Case("move ctr", func(w io.Writer) error {
		mv := v.Move()
		if err := printFirst(w, mv, 5); err != nil {
			return err
		}
		v.MoveFrom(mv)
		if moveBack {
			return printFirst(w, v, 5)
		}
		return nil
	}, moved)

	s.Case("copy ctr", func(w io.Writer) error {
		cp, err := v.Clone()
		if err != nil {
			return err
		}
		return printFirst(w, cp, 5)
	}, "0 1 2 3 4 ")

	s.Case("list assign", func(w io.Writer) error {
		if err := v.Assign(conv(0), conv(-2), conv(-5)); err != nil {
			return err
		}
		printAll(w, v.Values())
		return nil
	}, "0 -2 -5 ")

	return s.Finish()
}

// DefaultConfigInt scripts a vector of ints over the default allocator.
func DefaultConfigInt(s *harness.Suite) harness.Report {
	s.Start("default_config_int")
	return defaultConfig(s, func(i int) int { return i }, "4 0 0 0 0 ", false)
}

// DefaultConfigStr scripts a vector of strings over the default allocator.
func DefaultConfigStr(s *harness.Suite) harness.Report {
	s.Start("default_config_str")
	return defaultConfig(s, strconv.Itoa, "4     ", true)
}

// IteratorTests scripts iteration, iterator sorting and copying.
func IteratorTests(s *harness.Suite) harness.Report {
	s.Start("iterator_tests")
	var v *vec.Vector[int]

	s.Case("list init", func(w io.Writer) error {
		var err error
		if v, err = vec.Of(0, 4, 1, 3, 2); err != nil {
			return err
		}
		return printFirst(w, v, v.Len())
	}, "0 4 1 3 2 ")

	s.Case("range based for", func(w io.Writer) error {
		printAll(w, v.Values())
		return nil
	}, "0 4 1 3 2 ")

	s.Case("range based for ref", func(w io.Writer) error {
		for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
			p, err := it.Ptr()
			if err != nil {
				return err
			}
			fmt.Fprint(w, *p, " ")
		}
		return nil
	}, "0 4 1 3 2 ")

	s.Case("range based for const ref", func(w io.Writer) error {
		for it := v.CBegin(); !it.Equal(v.CEnd()); it = it.Next() {
			x, err := it.Get()
			if err != nil {
				return err
			}
			fmt.Fprint(w, x, " ")
		}
		return nil
	}, "0 4 1 3 2 ")

	s.Case("reverse iterators", func(w io.Writer) error {
		for it := v.RBegin(); !it.Equal(v.REnd()); it = it.Next() {
			x, err := it.Get()
			if err != nil {
				return err
			}
			fmt.Fprint(w, x, " ")
		}
		return nil
	}, "2 3 1 4 0 ")

	s.Case("sort", func(w io.Writer) error {
		if err := sortRange[vec.Iterator[int], int](v.Begin(), v.End()); err != nil {
			return err
		}
		printAll(w, v.Values())
		return nil
	}, "0 1 2 3 4 ")

	s.Case("sort reverse", func(w io.Writer) error {
		if err := sortRange[vec.ReverseIterator[int], int](v.RBegin(), v.REnd()); err != nil {
			return err
		}
		printAll(w, v.Values())
		return nil
	}, "4 3 2 1 0 ")

	s.Case("copy", func(w io.Writer) error {
		cp, err := vec.NewN[int](v.Len())
		if err != nil {
			return err
		}
		if err := copyRange(v.CBegin(), v.CEnd(), cp.Begin()); err != nil {
			return err
		}
		printAll(w, cp.Values())
		return nil
	}, "4 3 2 1 0 ")

	s.Case("emplace back", func(w io.Writer) error {
		sv := new(vec.Vector[string])
		if _, err := sv.EmplaceBack(repeat('a', 3)); err != nil {
			return err
		}
		back, err := sv.Back()
		if err != nil {
			return err
		}
		fmt.Fprint(w, *back)
		return nil
	}, "aaa")

	return s.Finish()
}

// repeat returns a constructor of n copies of c.
func repeat(c rune, n int) vec.Constructor[string] {
	return func() (string, error) { return strings.Repeat(string(c), n), nil }
}

func printConcat(w io.Writer, v *vec.Vector[string]) {
	for x := range v.Values() {
		fmt.Fprint(w, x)
	}
}

// EmplaceInsertRemove scripts the modifiers of a vector of strings.
func EmplaceInsertRemove(s *harness.Suite) harness.Report {
	s.Start("emplace_insert_remove")
	v := new(vec.Vector[string])

	s.Case("emplace back", func(w io.Writer) error {
		p, err := v.EmplaceBack(repeat('a', 3))
		if err != nil {
			return err
		}
		back, err := v.Back()
		if err != nil {
			return err
		}
		fmt.Fprint(w, *back, *p)
		return nil
	}, "aaa"+"aaa")

	s.Case("push back", func(w io.Writer) error {
		if err := v.PushBack("bbb"); err != nil {
			return err
		}
		printAll(w, v.Values())
		return nil
	}, "aaa bbb ")

	s.Case("pop back", func(w io.Writer) error {
		if err := v.PopBack(); err != nil {
			return err
		}
		back, err := v.Back()
		if err != nil {
			return err
		}
		fmt.Fprint(w, *back)
		return nil
	}, "aaa")

	s.Case("insert", func(w io.Writer) error {
		if _, err := v.Insert(v.End(), "bbb"); err != nil {
			return err
		}
		if _, err := v.Insert(v.Begin(), "ccc"); err != nil {
			return err
		}
		if _, err := v.InsertN(v.Begin().Next(), 2, "ddd"); err != nil {
			return err
		}
		printConcat(w, v)
		return nil
	}, "ccc"+"ddd"+"ddd"+"aaa"+"bbb")

	s.Case("insert range", func(w io.Writer) error {
		if err := v.Assign("a", "r", "e", "ya"); err != nil {
			return err
		}
		rng := []string{"r", "an", "ge"}
		if _, err := v.InsertSeq(v.Begin().Add(1), slices.Values(rng)); err != nil {
			return err
		}
		printConcat(w, v)
		return nil
	}, "arangereya")

	s.Case("insert list", func(w io.Writer) error {
		if _, err := v.Insert(v.End(), " АХАХАХ ", "ЕГОР ГДЕ БАБЛО??"); err != nil {
			return err
		}
		printConcat(w, v)
		return nil
	}, "arangereya АХАХАХ ЕГОР ГДЕ БАБЛО??")

	s.Case("erase range", func(w io.Writer) error {
		if _, err := v.EraseRange(v.Begin().Add(1), v.End().Sub(2)); err != nil {
			return err
		}
		printConcat(w, v)
		return nil
	}, "a АХАХАХ ЕГОР ГДЕ БАБЛО??")

	return s.Finish()
}
