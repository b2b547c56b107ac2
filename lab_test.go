// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec_test

import (
	"testing"

	"github.com/cockroachdb/errors"
)

var (
	errInit    = errors.New("widget: init failed")
	errClone   = errors.New("widget: clone failed")
	errDestroy = errors.New("widget: destroy failed")
)

// lab counts widget lifecycle events and injects failures. failInit,
// failClone and failDestroy name the 1-based call that fails; 0 never fails.
type lab struct {
	live     int
	inits    int
	clones   int
	destroys int

	failInit    int
	failClone   int
	failDestroy int
}

var theLab *lab

// newLab installs a fresh lab for the duration of the test.
func newLab(t *testing.T) *lab {
	t.Helper()
	l := new(lab)
	theLab = l
	t.Cleanup(func() { theLab = nil })
	return l
}

// widget is an element type with every lifecycle hook. Only widgets produced
// by Init or Clone are alive; the zero value is a raw slot.
type widget struct {
	v     int
	alive bool
}

func (w *widget) Init() error {
	theLab.inits++
	if theLab.inits == theLab.failInit {
		return errInit
	}
	w.alive = true
	theLab.live++
	return nil
}

func (w widget) Clone() (widget, error) {
	theLab.clones++
	if theLab.clones == theLab.failClone {
		return widget{}, errClone
	}
	theLab.live++
	return widget{v: w.v, alive: true}, nil
}

func (w *widget) Destroy() error {
	if !w.alive {
		return nil
	}
	w.alive = false
	theLab.live--
	theLab.destroys++
	if theLab.destroys == theLab.failDestroy {
		return errDestroy
	}
	return nil
}

func values(ws []widget) []int {
	out := make([]int, len(ws))
	for i, w := range ws {
		out[i] = w.v
	}
	return out
}

func widgets(vs ...int) []widget {
	out := make([]widget, len(vs))
	for i, v := range vs {
		out[i] = widget{v: v}
	}
	return out
}
