// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import "github.com/cockroachdb/errors"

// nextCapacity returns the capacity a buffer of the given capacity should
// move to so that newSize slots are in use. newSize must not exceed limit.
//
// A buffer using a quarter or less of its slots halves, rounding up.
// Otherwise the capacity doubles, starting from 1, until it exceeds newSize
// or would pass limit, in which case it is limit.
// The halved buffer is still at least half empty, so the next push does not
// grow it again.
func nextCapacity(capacity, newSize, limit int) int {
	if capacity > 0 && newSize <= capacity/4 {
		return (capacity + 1) / 2
	}
	c := capacity
	for newSize >= c {
		if c > limit/2 {
			return limit
		}
		c = max(2*c, 1)
	}
	return c
}

// grownSize returns size+n, or ErrOutOfMemory when that exceeds limit.
func grownSize(where string, size, n, limit int) (int, error) {
	if n > limit-size {
		return 0, errors.Wrapf(ErrOutOfMemory, "%s: %d more elements past size == %d exceed max size == %d",
			where, n, size, limit)
	}
	return size + n, nil
}
