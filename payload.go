// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

import (
	"runtime"
	"sync/atomic"
)

// Payload owns the value recovered from a caught panic.
// A carrier is created only as the failure result of [Catch]. It is always in
// exactly one of two states, present or consumed; once consumed, no operation
// may reach the payload again.
//
// The consuming operations are Extract, TryExtract, DisposeOrAbort,
// DisposeOrForget, and Resume. Each may be applied at most once per carrier;
// a second consuming call is an implementation bug in the caller and panics.
//
// A carrier dropped while still present is a decision the caller never made:
// a cleanup registered at construction applies the abort disposal policy to
// the payload once the carrier becomes unreachable. The cleanup runs at
// collection time, not scope exit — it is a backstop, not a substitute for
// consuming the carrier.
type Payload struct {
	used    atomic.Uintptr
	box     *payloadBox
	cleanup runtime.Cleanup
}

// payloadBox holds the carried value apart from the carrier so the drop
// cleanup does not retain the carrier itself.
type payloadBox struct {
	value any
}

func newPayload(v any) *Payload {
	box := &payloadBox{value: v}
	p := &Payload{box: box}
	p.cleanup = runtime.AddCleanup(p, func(b *payloadBox) {
		DisposeOrAbort(b.value)
	}, box)
	return p
}

// consume transitions the carrier to the consumed state and returns the raw
// payload. Panics if the carrier has already been consumed.
func (p *Payload) consume() any {
	if p.used.Add(1) != 1 {
		panic("unwind: payload already consumed")
	}
	p.cleanup.Stop()
	v := p.box.value
	p.box.value = nil
	return v
}

// Get borrows the payload without consuming it.
// Panics if the payload has already been consumed.
func (p *Payload) Get() any {
	if p.used.Load() != 0 {
		panic("unwind: payload already consumed")
	}
	return p.box.value
}

// Set replaces the payload in place without consuming the carrier.
// Panics if the payload has already been consumed.
func (p *Payload) Set(v any) {
	if p.used.Load() != 0 {
		panic("unwind: payload already consumed")
	}
	p.box.value = v
}

// Extract consumes the carrier and transfers ownership of the raw payload to
// the caller, who now bears full responsibility for its safe finalization.
func (p *Payload) Extract() any {
	return p.consume()
}

// TryExtract attempts to consume the carrier.
// Returns (payload, true) on success, or (nil, false) if already consumed.
func (p *Payload) TryExtract() (any, bool) {
	if p.used.Add(1) != 1 {
		return nil, false
	}
	p.cleanup.Stop()
	v := p.box.value
	p.box.value = nil
	return v, true
}

// DisposeOrAbort consumes the carrier and finalizes the payload, terminating
// the process if finalization panics.
func (p *Payload) DisposeOrAbort() {
	DisposeOrAbort(p.consume())
}

// DisposeOrForget consumes the carrier and finalizes the payload, leaking the
// secondary payload if finalization panics.
func (p *Payload) DisposeOrForget() {
	DisposeOrForget(p.consume())
}

// Resume consumes the carrier and re-raises the original panic, carrying the
// same payload into the enclosing call stack.
func (p *Payload) Resume() {
	panic(p.consume())
}
