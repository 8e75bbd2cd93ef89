// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

import "strconv"

// Boundary capture functions.
// Each runs a caller-supplied unit of work under a recover boundary and
// routes a caught payload through a disposal policy. work must be safe to
// observe its captured environment again after a panic; there is no
// Go-expressible marker for this, it is a precondition on the closure.

// Disposition selects the outcome for an inspected payload.
// Exactly one disposition is chosen per payload; it is terminal.
type Disposition uint8

const (
	// DropOrAbort finalizes the payload under a guard that terminates the
	// process if finalization panics.
	DropOrAbort Disposition = iota

	// DropOrForget finalizes the payload under a guard that leaks the
	// secondary payload if finalization panics.
	DropOrForget

	// DropOrUnwind finalizes the payload with no secondary guard; a
	// finalization panic propagates to the caller of CatchWith.
	DropOrUnwind

	// ResumeUnwind re-raises the original panic with the same payload.
	ResumeUnwind
)

// String returns the disposition name.
func (d Disposition) String() string {
	switch d {
	case DropOrAbort:
		return "DropOrAbort"
	case DropOrForget:
		return "DropOrForget"
	case DropOrUnwind:
		return "DropOrUnwind"
	case ResumeUnwind:
		return "ResumeUnwind"
	default:
		return "Disposition(" + strconv.Itoa(int(d)) + ")"
	}
}

// capture runs work under a recover boundary without constructing a carrier.
func capture[R any](work func() R) (result R, payload any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			payload, panicked = r, true
		}
	}()
	return work(), nil, false
}

// CatchOrAbort runs work inside a panic boundary. A caught payload is
// disposed with the abort policy: should its finalizer panic in turn, the
// process terminates.
//
// Returns (result, true) when no panic was caught, (zero, false) otherwise.
// No Payload carrier is ever constructed.
func CatchOrAbort[R any](work func() R) (R, bool) {
	result, payload, panicked := capture(work)
	if panicked {
		DisposeOrAbort(payload)
		var zero R
		return zero, false
	}
	return result, true
}

// CatchOrForget runs work inside a panic boundary. A caught payload is
// disposed with the forget policy: should its finalizer panic in turn, the
// secondary payload is leaked and control returns normally.
//
// Returns (result, true) when no panic was caught, (zero, false) otherwise.
// No Payload carrier is ever constructed.
func CatchOrForget[R any](work func() R) (R, bool) {
	result, payload, panicked := capture(work)
	if panicked {
		DisposeOrForget(payload)
		var zero R
		return zero, false
	}
	return result, true
}

// Catch runs work inside a panic boundary.
// Returns (result, nil) when work completes normally. A caught payload is
// wrapped in a one-shot Payload carrier and handed back for on-demand
// decision-making; the result is the zero value in that case.
func Catch[R any](work func() R) (R, *Payload) {
	result, payload, panicked := capture(work)
	if panicked {
		var zero R
		return zero, newPayload(payload)
	}
	return result, nil
}

// CatchWith runs work inside a panic boundary and, on a caught panic, lets
// inspect choose the payload's disposition.
//
// inspect receives a borrowed view of the payload and runs inside its own
// nested boundary. If inspect itself panics, the process terminates
// immediately: inspection is caller logic operating on fault-controlled data
// under already-abnormal conditions, and no safe disposition can be inferred
// for it. Like work, inspect must be safe to invoke after a panic.
//
// Returns (result, true) when work completes normally. Otherwise the returned
// Disposition is applied: ResumeUnwind re-raises the original panic and does
// not return normally; DropOrAbort and DropOrForget dispose the payload under
// the matching guard and return (zero, false); DropOrUnwind finalizes the
// payload unguarded, so a finalization panic propagates to the caller.
func CatchWith[R any](work func() R, inspect func(payload any) Disposition) (R, bool) {
	result, payload, panicked := capture(work)
	if !panicked {
		return result, true
	}
	d, inspected := safeInspect(inspect, payload)
	if !inspected {
		abort()
		var zero R
		return zero, false
	}
	switch d {
	case ResumeUnwind:
		panic(payload)
	case DropOrUnwind:
		finalize(payload)
	case DropOrForget:
		DisposeOrForget(payload)
	default:
		DisposeOrAbort(payload)
	}
	var zero R
	return zero, false
}

// safeInspect invokes inspect under its own boundary.
// The tertiary payload, if any, is discarded: abort runs no finalizers.
func safeInspect(inspect func(any) Disposition, payload any) (d Disposition, ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return inspect(payload), true
}
