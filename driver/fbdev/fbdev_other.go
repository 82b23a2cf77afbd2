// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !linux

package fbdev

import "github.com/gogpu/ywin/driver"

// Open reports ErrUnsupported; framebuffer devices are Linux only.
func Open(driver.Options) (*Driver, error) {
	return nil, ErrUnsupported
}
