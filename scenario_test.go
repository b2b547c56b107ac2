// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"slices"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"code.hybscloud.com/vec"
)

func TestScenarios(t *testing.T) {
	Convey("Given an empty vector of ints", t, func() {
		v := new(vec.Vector[int])

		Convey("pushing 0 through 4 yields them in order", func() {
			for i := range 5 {
				So(v.PushBack(i), ShouldBeNil)
			}
			So(v.Len(), ShouldEqual, 5)
			So(slices.Collect(v.Values()), ShouldResemble, []int{0, 1, 2, 3, 4})

			Convey("shrinking to zero and growing to four default-constructs", func() {
				So(v.Resize(0), ShouldBeNil)
				So(v.Resize(4), ShouldBeNil)
				So(slices.Collect(v.Values()), ShouldResemble, []int{0, 0, 0, 0})
			})
		})
	})

	Convey("Given a vector of strings after a push and a pop", t, func() {
		v := new(vec.Vector[string])
		So(v.PushBack("aaa"), ShouldBeNil)
		So(v.PushBack("bbb"), ShouldBeNil)
		So(v.PopBack(), ShouldBeNil)

		Convey("inserting at the end, the front and after the front keeps order", func() {
			_, err := v.Insert(v.End(), "bbb")
			So(err, ShouldBeNil)
			_, err = v.Insert(v.Begin(), "ccc")
			So(err, ShouldBeNil)
			_, err = v.InsertN(v.Begin().Next(), 2, "ddd")
			So(err, ShouldBeNil)
			So(strings.Join(v.Data(), " "), ShouldEqual, "ccc ddd ddd aaa bbb")
		})
	})

	Convey("Given a 25-bit packed array", t, func() {
		a, err := vec.NewBitArray(vec.NewEmbedded[byte](4), 25)
		So(err, ShouldBeNil)

		Convey("alternating bits read back exactly", func() {
			So(a.Resize(a.MaxSize()), ShouldBeNil)
			want := make([]bool, 25)
			for i := range a.Len() {
				So(a.Set(i, i&1 == 1), ShouldBeNil)
				want[i] = i&1 == 1
			}
			So(slices.Collect(a.Values()), ShouldResemble, want)

			Convey("shrinking to zero and growing to four clears", func() {
				So(a.Resize(0), ShouldBeNil)
				So(a.Resize(4), ShouldBeNil)
				So(slices.Collect(a.Values()), ShouldResemble, []bool{false, false, false, false})
			})
		})
	})

	Convey("Given two vectors", t, func() {
		a, err := vec.Of(1, 2, 3)
		So(err, ShouldBeNil)
		b, err := vec.Of(9, 8)
		So(err, ShouldBeNil)

		Convey("moving one into the other swaps their contents", func() {
			b.MoveFrom(a)
			So(b.Data(), ShouldResemble, []int{1, 2, 3})
			So(a.Data(), ShouldResemble, []int{9, 8})
		})

		Convey("moving bit vectors swaps their contents too", func() {
			x, err := vec.BitsOf(true, true)
			So(err, ShouldBeNil)
			y, err := vec.BitsOf(false)
			So(err, ShouldBeNil)
			y.MoveFrom(x)
			So(slices.Collect(y.Values()), ShouldResemble, []bool{true, true})
			So(slices.Collect(x.Values()), ShouldResemble, []bool{false})
		})
	})
}
