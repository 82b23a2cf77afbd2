// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package driver defines video drivers and the registry that selects one.
//
// Driver packages register themselves from init:
//
//	func init() {
//	    driver.Register("memory", 10, open, nil)
//	}
//
// and the server opens one by name or picks the best available:
//
//	d, err := driver.Open("term", driver.DefaultOptions())
//	d, err := driver.OpenBest(driver.DefaultOptions())
package driver

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/render"
)

// Driver is a video driver the screen composites onto.
type Driver interface {
	ywin.VideoDriver

	// Name returns the registry name of the driver.
	Name() string

	// Format returns the scan-out pixel format.
	Format() gputypes.TextureFormat

	// Close releases the device.
	Close() error
}

// Options configures a driver when it is opened.
type Options struct {
	// Width and Height size drivers without a physical display.
	Width, Height int

	// Mode selects the renderer variant the driver hands out.
	Mode render.Mode

	// HardwarePointer makes the driver draw the pointer itself. Drivers
	// that are not a ywin.PointerDriver ignore it.
	HardwarePointer bool

	// Device is the device node for drivers that open one.
	Device string

	// Custom holds driver-specific settings.
	Custom map[string]any
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Width:  640,
		Height: 480,
		Mode:   render.ModeSoftware,
	}
}

// Renderer builds the renderer selected by opts for a driver. accel may
// be nil when the driver has no accelerated path. The hardware pointer
// option is only set when sink can show a pointer.
func Renderer(opts Options, sink render.Sink, accel ywin.Accel, rect ywin.Rectangle) *ywin.Renderer {
	r := render.New(opts.Mode, sink, accel, rect)
	if HardwarePointer(opts, sink) {
		r.SetOption(ywin.OptionHardwarePointer, "yes")
	}
	return r
}

// HardwarePointer reports whether d draws the pointer under opts.
func HardwarePointer(opts Options, d any) bool {
	_, ok := d.(ywin.PointerDriver)
	return ok && opts.HardwarePointer
}
