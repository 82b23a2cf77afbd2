// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux

package fbdev

import (
	"testing"
	"unsafe"

	"github.com/gogpu/ywin/driver"
)

func TestScreenInfoLayout(t *testing.T) {
	if got := unsafe.Sizeof(varScreenInfo{}); got != 160 {
		t.Errorf("sizeof(varScreenInfo) = %d, want 160", got)
	}
	if unsafe.Sizeof(uintptr(0)) == 8 {
		if got := unsafe.Sizeof(fixScreenInfo{}); got != 80 {
			t.Errorf("sizeof(fixScreenInfo) = %d, want 80", got)
		}
		if got := unsafe.Offsetof(fixScreenInfo{}.LineLength); got != 48 {
			t.Errorf("offsetof(LineLength) = %d, want 48", got)
		}
	}
}

func TestOpenMissingDevice(t *testing.T) {
	opts := driver.DefaultOptions()
	opts.Device = t.TempDir() + "/fb-missing"
	if _, err := Open(opts); err == nil {
		t.Error("Open of a missing device succeeded")
	}
}
