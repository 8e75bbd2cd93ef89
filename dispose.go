// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

import (
	"io"
	"os"
)

// Guarded disposal primitives.
// Finalizing a panic payload is exactly as likely to panic as any other code;
// unguarded, a failing finalizer during already-failing control flow starts a
// second unwind with no boundary left to contain it.

// Finalizer is implemented by panic payloads that own resources requiring
// explicit release when the payload is dropped.
type Finalizer interface {
	Finalize()
}

// FinalizeFunc adapts a plain function to the Finalizer interface.
type FinalizeFunc func()

// Finalize calls f.
func (f FinalizeFunc) Finalize() { f() }

// abort terminates the process immediately. Deferred functions do not run and
// no further payload is finalized. Package variable so the test binary can
// intercept the otherwise unobservable path.
var abort = func() {
	os.Exit(2)
}

// finalize releases the resources owned by v, if any.
// Values implementing Finalizer are finalized via Finalize; values
// implementing io.Closer are closed, with the returned error discarded —
// only a panic counts as a finalization fault. Other values are no-ops.
func finalize(v any) {
	switch f := v.(type) {
	case Finalizer:
		f.Finalize()
	case io.Closer:
		_ = f.Close()
	}
}

// DisposeOrElse finalizes value inside its own panic boundary.
// Returns Right on normal completion. If finalization itself panics, the
// secondary payload is passed to orElse and its result is returned as Left.
func DisposeOrElse[E any](value any, orElse func(secondary any) E) Either[E, struct{}] {
	secondary, panicked := dispose(value)
	if panicked {
		return Left[E, struct{}](orElse(secondary))
	}
	return Right[E](struct{}{})
}

// dispose runs finalize(value) under its own recover boundary.
// Since go1.21 a recovered panic value is never nil (panic(nil) recovers as
// *runtime.PanicNilError), so a non-nil result is a reliable panic signal.
func dispose(value any) (secondary any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			secondary, panicked = r, true
		}
	}()
	finalize(value)
	return nil, false
}

// DisposeOrAbort finalizes value; if finalization panics, the process is
// terminated immediately. The secondary payload is never finalized: abort
// bypasses all further cleanup.
func DisposeOrAbort(value any) {
	_ = DisposeOrElse(value, func(any) struct{} {
		abort()
		return struct{}{}
	})
}

// DisposeOrForget finalizes value; if finalization panics, the secondary
// payload is absorbed and deliberately never finalized, leaking any resources
// it owns. Always returns normally.
func DisposeOrForget(value any) {
	_ = DisposeOrElse(value, func(any) struct{} { return struct{}{} })
}
