// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

// Scoped acquisition with guaranteed release.
// Payload-holding values must be released on every exit path, including the
// unwinding one, without letting a cleanup fault mask the original panic.

// Bracket acquires a resource, applies use, and releases the resource on both
// the normal and the panic path.
//
// On the normal path release runs unguarded, like an ordinary deferred call.
// On the panic path release runs under the forget guard — a release panic
// must not replace the payload already in flight — and the original panic is
// re-raised after release.
func Bracket[T, R any](acquire func() T, use func(T) R, release func(T)) R {
	resource := acquire()
	result, payload, panicked := capture(func() R { return use(resource) })
	if panicked {
		DisposeOrForget(FinalizeFunc(func() { release(resource) }))
		panic(payload)
	}
	release(resource)
	return result
}

// OnPanic runs cleanup only when body panics, handing it the caught payload,
// then re-raises the original panic. cleanup runs under the forget guard so a
// cleanup fault cannot replace the original payload.
func OnPanic[R any](body func() R, cleanup func(payload any)) R {
	result, payload, panicked := capture(body)
	if panicked {
		DisposeOrForget(FinalizeFunc(func() { cleanup(payload) }))
		panic(payload)
	}
	return result
}
