// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vec

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Element lifecycle.
// Containers construct and destroy elements explicitly; the hooks below are
// discovered on the element type. A type implementing none of them behaves
// like a plain Go value: the zero value is its default, assignment copies it,
// and destruction only clears the slot.

// Initializer is implemented by *T when default construction does more than
// produce the zero value, or can fail.
type Initializer interface {
	Init() error
}

// Cloner is implemented by T when copy construction differs from assignment.
type Cloner[T any] interface {
	Clone() (T, error)
}

// Destroyer is implemented by *T when an element owns something to release.
// Destroy must tolerate the zero value: typed blocks destroy every slot,
// including ones that never held a constructed element.
type Destroyer interface {
	Destroy() error
}

// Constructor builds one element in place of a slot.
type Constructor[T any] func() (T, error)

// construct default-constructs a T.
func construct[T any]() (T, error) {
	var v T
	if p, ok := any(&v).(Initializer); ok {
		if err := p.Init(); err != nil {
			var zero T
			return zero, err
		}
	}
	return v, nil
}

// clone copy-constructs a T from v.
func clone[T any](v T) (T, error) {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// destroy runs the destructor of *p and leaves the slot zeroed.
// The slot is zeroed even when the destructor fails.
func destroy[T any](p *T) error {
	var err error
	if d, ok := any(p).(Destroyer); ok {
		err = d.Destroy()
	}
	var zero T
	*p = zero
	return err
}

// relocate moves *src into *dst and leaves src zeroed. Ownership moves with
// the value, so no destructor runs.
func relocate[T any](dst, src *T) {
	*dst = *src
	var zero T
	*src = zero
}

// destroyRange destroys slots [from, to) of s in reverse order and returns
// every failure combined. All slots are destroyed regardless of failures.
func destroyRange[T any](s Storage[T], from, to int) error {
	var err error
	for i := to; i > from; {
		i--
		err = multierr.Append(err, s.Destroy(i))
	}
	return err
}

// swallow reports destructor failures that a terminal operation cannot
// propagate.
func swallow(where string, err error) {
	if err == nil {
		return
	}
	Logger().Debug("vec: destructor failure swallowed",
		zap.String("op", where),
		zap.Int("failures", len(multierr.Errors(err))),
		zap.Error(err),
	)
}
