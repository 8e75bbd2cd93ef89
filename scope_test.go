// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind_test

import (
	"testing"

	"code.hybscloud.com/unwind"
)

func TestBracketNormalPath(t *testing.T) {
	var order []string
	got := unwind.Bracket(
		func() string { order = append(order, "acquire"); return "resource" },
		func(r string) int { order = append(order, "use "+r); return 42 },
		func(string) { order = append(order, "release") },
	)
	if got != 42 {
		t.Fatalf("got %d, want 42", got)
	}
	want := []string{"acquire", "use resource", "release"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestBracketReleasesOnPanic(t *testing.T) {
	released := false
	defer func() {
		if r := recover(); r != "use failed" {
			t.Fatalf("got %v, want original payload %q", r, "use failed")
		}
		if !released {
			t.Fatal("release must run on the panic path")
		}
	}()

	unwind.Bracket(
		func() int { return 3 },
		func(int) int { panic("use failed") },
		func(int) { released = true },
	)
	t.Fatal("Bracket returned normally after a panicking use")
}

func TestBracketReleaseFaultDoesNotMaskPayload(t *testing.T) {
	defer func() {
		if r := recover(); r != "use failed" {
			t.Fatalf("original payload masked: got %v, want %q", r, "use failed")
		}
	}()

	unwind.Bracket(
		func() int { return 0 },
		func(int) int { panic("use failed") },
		func(int) { panic("cleanup failed") },
	)
	t.Fatal("Bracket returned normally")
}

func TestOnPanicSkipsCleanupOnSuccess(t *testing.T) {
	cleaned := false
	got := unwind.OnPanic(func() int { return 7 }, func(any) { cleaned = true })
	if got != 7 {
		t.Fatalf("got %d, want 7", got)
	}
	if cleaned {
		t.Fatal("cleanup must not run on success")
	}
}

func TestOnPanicCleanupSeesPayload(t *testing.T) {
	var seen any
	defer func() {
		if r := recover(); r != "body failed" {
			t.Fatalf("got %v, want original payload %q", r, "body failed")
		}
		if seen != "body failed" {
			t.Fatalf("cleanup saw %v, want %q", seen, "body failed")
		}
	}()

	unwind.OnPanic(func() int { panic("body failed") }, func(payload any) { seen = payload })
	t.Fatal("OnPanic returned normally after a panicking body")
}

func TestOnPanicCleanupFaultAbsorbed(t *testing.T) {
	defer func() {
		if r := recover(); r != "body failed" {
			t.Fatalf("original payload masked: got %v, want %q", r, "body failed")
		}
	}()

	unwind.OnPanic(func() int { panic("body failed") }, func(any) { panic("cleanup failed") })
	t.Fatal("OnPanic returned normally")
}
