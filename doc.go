// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package unwind provides panic boundaries that remain safe when the caught
// panic payload itself panics during finalization.
//
// A naive catch-and-drop sequence can compound: the payload recovered at a
// boundary may own resources whose release panics in turn, and that second
// unwind happens with no boundary left to contain it. unwind contains the
// second fault with an explicit per-payload policy: terminate the process,
// leak the payload, surface the fault to a caller-supplied handler, or hand
// the payload back for on-demand inspection.
//
// # Design Philosophy
//
// unwind provides:
//   - Guarded disposal: finalize a value inside its own boundary and apply a
//     policy to the secondary payload if finalization panics
//   - Boundary capture: run a unit of work under a boundary and route a caught
//     payload through guarded disposal, or return it as a one-shot carrier
//   - A closed disposition protocol for caller-directed payload handling
//
// All operations run on a single call stack. Nested boundaries are strictly
// stack-ordered: an inner boundary always settles before the outer boundary
// observes any result. The only process-wide effect is termination under the
// abort policies.
//
// # Guarded Disposal
//
// Finalizing a panic payload is exactly as likely to panic as any other code.
// Disposal therefore runs inside its own boundary:
//
//   - [Finalizer]: implemented by payloads owning resources to release
//   - [FinalizeFunc]: adapts a plain function to [Finalizer]
//   - [DisposeOrElse]: finalize, mapping a secondary panic through a handler
//   - [DisposeOrAbort]: finalize, terminating the process on a secondary panic
//   - [DisposeOrForget]: finalize, leaking the secondary payload on a
//     secondary panic
//
// Values implementing neither [Finalizer] nor [io.Closer] finalize as no-ops.
//
// # Boundary Capture
//
//   - [CatchOrAbort]: run work; dispose a caught payload with the abort policy
//   - [CatchOrForget]: run work; dispose a caught payload with the forget policy
//   - [Catch]: run work; return a caught payload as a [*Payload] carrier
//   - [CatchWith]: run work; let an inspection function choose a [Disposition]
//
// The simple variants report presence of a result as (value, ok). Work passed
// to any capture function must be safe to observe its captured environment
// again after a panic; this is a documented precondition, not a checked one.
//
// # Payload Carrier
//
// [Payload] owns one recovered payload and is consumed at most once:
//
//   - [Payload.Get], [Payload.Set]: borrow or replace without consuming
//   - [Payload.Extract]: consume, transferring the raw payload to the caller
//   - [Payload.TryExtract]: non-panicking variant of Extract
//   - [Payload.DisposeOrAbort], [Payload.DisposeOrForget]: consume and dispose
//   - [Payload.Resume]: consume and re-raise the original panic
//
// A carrier dropped without being consumed applies the abort disposal policy
// to its payload once it becomes unreachable, so an undecided payload is never
// silently discarded.
//
// # Dispositions
//
// [CatchWith] runs the inspection function inside its own nested boundary and
// applies the returned [Disposition]:
//
//   - [DropOrAbort]: guarded disposal, abort on secondary panic
//   - [DropOrForget]: guarded disposal, leak on secondary panic
//   - [DropOrUnwind]: unguarded finalization; a secondary panic propagates
//   - [ResumeUnwind]: re-raise the original panic with the same payload
//
// A panic raised by the inspection function itself terminates the process:
// there is no safe disposition to fall back to.
//
// # Disposal Results
//
// [DisposeOrElse] reports its outcome as an [Either]:
//
//   - [Left], [Right]: constructors
//   - [Either.IsLeft], [Either.IsRight]: predicates
//   - [Either.GetLeft], [Either.GetRight]: accessors
//   - [MatchEither]: pattern matching
//
// # Scoped Acquisition
//
// Payload-holding values want a guaranteed release on every exit path:
//
//   - [Bracket]: acquire-use-release with release guaranteed on the panic path
//   - [OnPanic]: run cleanup only when the body panics, then re-raise
//
// # Example
//
//	result, ok := unwind.CatchWith(riskyWork, func(payload any) unwind.Disposition {
//		if _, transient := payload.(TransientFault); transient {
//			return unwind.DropOrForget
//		}
//		return unwind.ResumeUnwind
//	})
//	if !ok {
//		// transient fault absorbed, payload leaked by explicit choice
//	}
package unwind
