// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		capacity, newSize, want int
		limit                    int
	}{
		{0, 0, 1, 0},
		{0, 1, 2, 0},
		{1, 1, 2, 0},
		{2, 1, 2, 0},
		{2, 2, 4, 0},
		{4, 3, 4, 0},
		{4, 1, 2, 0},
		{8, 2, 4, 0},
		{8, 3, 8, 0},
		{8, 8, 16, 0},
		{16, 4, 8, 0},
		{2, 0, 1, 0},
		{1, 0, 1, 0},
		{3, 0, 2, 0},
		{5, 9, 10, 0},
		{0, 100, 128, 0},
		{0, 5, 6, 6},
		{4, 6, 6, 6},
		{8, 1 << 61, 1 << 62, 0},
		{1, 1 << 62, math.MaxInt, 0},
		{1 << 62, math.MaxInt, math.MaxInt, 0},
	}
	for _, tt := range tests {
		if tt.limit == 0 {
			tt.limit = math.MaxInt
		}
		if got := nextCapacity(tt.capacity, tt.newSize, tt.limit); got != tt.want {
			t.Errorf("nextCapacity(%d, %d, %d) = %d; want %d", tt.capacity, tt.newSize, tt.limit, got, tt.want)
		}
	}
}

func TestGrownSize(t *testing.T) {
	if got, err := grownSize("grow", 3, 4, 7); err != nil || got != 7 {
		t.Errorf("grownSize(3, 4, 7) = %d, %v; want 7", got, err)
	}
	for _, n := range []int{5, math.MaxInt} {
		if _, err := grownSize("grow", 3, n, 7); !errors.Is(err, ErrOutOfMemory) {
			t.Errorf("grownSize(3, %d, 7) error = %v; want ErrOutOfMemory", n, err)
		}
	}
}

func TestOctets(t *testing.T) {
	for bits, want := range map[int]int{0: 0, 1: 1, 7: 1, 8: 1, 9: 2, 25: 4, math.MaxInt: math.MaxInt>>3 + 1} {
		if got := octets(bits); got != want {
			t.Errorf("octets(%d) = %d; want %d", bits, got, want)
		}
	}
}

func TestClearBits(t *testing.T) {
	data := []byte{0xFF, 0xFF}
	clearBits(data, 3, 11)
	if data[0] != 0b0000_0111 || data[1] != 0b1111_1000 {
		t.Errorf("clearBits = %08b %08b", data[0], data[1])
	}
}

func TestDestroyRangeClearsSlots(t *testing.T) {
	s := &Embedded[*int]{buf: make([]*int, 2)}
	x := 1
	s.Create(0, &x)
	if err := destroyRange[*int](s, 0, 1); err != nil {
		t.Fatal(err)
	}
	if s.buf[0] != nil {
		t.Errorf("destroyed slot still references its element")
	}
}
