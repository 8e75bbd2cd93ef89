// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

// SetAbort replaces the process-abort hook for the duration of a test and
// returns a function restoring the previous hook.
func SetAbort(f func()) (restore func()) {
	prev := abort
	abort = f
	return func() { abort = prev }
}
