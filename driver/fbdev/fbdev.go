// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fbdev provides a video driver for the Linux framebuffer device.
//
// Only 32 bits per pixel framebuffers are supported. Pixels are written
// straight into the mapped device memory, one line_length stride per row,
// with red and blue exchanged when the device stores RGBA words.
package fbdev

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/blend"
	"github.com/gogpu/ywin/driver"
)

// Name is the registry name of the driver.
const Name = "fbdev"

// DefaultDevice is opened when Options.Device is empty.
const DefaultDevice = "/dev/fb0"

var (
	// ErrUnsupportedDepth is returned for framebuffers that are not 32bpp.
	ErrUnsupportedDepth = errors.New("fbdev: unsupported pixel depth")

	// ErrUnsupported is returned on platforms without framebuffer devices.
	ErrUnsupported = errors.New("fbdev: not supported on this platform")
)

// Driver draws into a mapped framebuffer.
type Driver struct {
	device string
	opts   driver.Options
	format gputypes.TextureFormat
	swap   bool

	width, height int
	stride        int // in pixels
	pixels        []uint32

	release func() error
}

var _ driver.Driver = (*Driver)(nil)

// newDriver wraps pixels in format, laid out with stride pixels per row.
func newDriver(device string, opts driver.Options, format gputypes.TextureFormat, pixels []uint32, w, h, stride int, release func() error) (*Driver, error) {
	if w <= 0 || h <= 0 || stride < w || len(pixels) < stride*(h-1)+w {
		return nil, fmt.Errorf("fbdev: %s: bad geometry %dx%d stride %d", device, w, h, stride)
	}
	if format != gputypes.TextureFormatBGRA8Unorm && format != gputypes.TextureFormatRGBA8Unorm {
		return nil, fmt.Errorf("%w: %s: %s", driver.ErrUnsupportedFormat, device, format)
	}
	return &Driver{
		device:  device,
		opts:    opts,
		format:  format,
		swap:    driver.Swizzled(format),
		width:   w,
		height:  h,
		stride:  stride,
		pixels:  pixels,
		release: release,
	}, nil
}

// Name implements driver.Driver.
func (d *Driver) Name() string { return Name }

// Device returns the path of the opened device.
func (d *Driver) Device() string { return d.device }

// Format implements driver.Driver. It follows the device's red and blue
// channel offsets.
func (d *Driver) Format() gputypes.TextureFormat { return d.format }

// PixelDimensions implements ywin.VideoDriver.
func (d *Driver) PixelDimensions() (int, int) { return d.width, d.height }

// BeginUpdates implements ywin.VideoDriver.
func (d *Driver) BeginUpdates() {}

// EndUpdates implements ywin.VideoDriver.
func (d *Driver) EndUpdates() {}

// Renderer implements ywin.VideoDriver.
func (d *Driver) Renderer(rect ywin.Rectangle) *ywin.Renderer {
	return driver.Renderer(d.opts, d, nil, rect)
}

func (d *Driver) row(x, y, w int) []uint32 {
	off := y*d.stride + x
	return d.pixels[off : off+w]
}

func (d *Driver) clip(x, y, w, h int) (ywin.Rectangle, int, int, bool) {
	c, ok := ywin.Rect(x, y, w, h).Intersect(ywin.Rect(0, 0, d.width, d.height))
	return c, c.X - x, c.Y - y, ok
}

// Blit implements ywin.VideoDriver.
func (d *Driver) Blit(pixels []uint32, x, y, w, h, stride int) {
	c, dx, dy, ok := d.clip(x, y, w, h)
	if !ok {
		return
	}
	for j := 0; j < c.H; j++ {
		so := (dy+j)*stride + dx
		if so+c.W > len(pixels) {
			return
		}
		dst, src := d.row(c.X, c.Y+j, c.W), pixels[so:so+c.W]
		if !d.swap {
			copy(dst, src)
			continue
		}
		for i, p := range src {
			dst[i] = driver.ToFormat(d.format, p)
		}
	}
}

// DrawFilledRectangle implements ywin.VideoDriver for the inclusive
// rectangle (x1, y1)-(x2, y2).
func (d *Driver) DrawFilledRectangle(argb uint32, x1, y1, x2, y2 int) {
	c, _, _, ok := d.clip(x1, y1, x2-x1+1, y2-y1+1)
	if !ok {
		return
	}
	// Blending treats red and blue alike, so it can run in device order.
	argb = driver.ToFormat(d.format, argb)
	for j := 0; j < c.H; j++ {
		blend.FillSpan(d.row(c.X, c.Y+j, c.W), argb)
	}
}

// Pixel returns the ARGB pixel at (x, y), or 0 outside the screen.
func (d *Driver) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return 0
	}
	return driver.FromFormat(d.format, d.pixels[y*d.stride+x])
}

// Close implements driver.Driver and unmaps the device.
func (d *Driver) Close() error {
	if d.release == nil {
		return nil
	}
	err := d.release()
	d.release = nil
	d.pixels = nil
	return err
}
