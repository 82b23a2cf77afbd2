// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package memory provides an off-screen video driver backed by a pixel
// slice. It is used for snapshots, tests and headless servers.
package memory

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/blend"
	"github.com/gogpu/ywin/driver"
)

// Name is the registry name of the driver.
const Name = "memory"

// ErrInvalidSize is returned by New for a non-positive size.
var ErrInvalidSize = errors.New("memory: invalid size")

func init() {
	driver.Register(Name, 10, func(opts driver.Options) (driver.Driver, error) {
		return New(opts)
	}, nil)
}

// Driver is an in-memory framebuffer of ARGB pixels.
//
// It is not safe for concurrent use; the screen serialises access.
type Driver struct {
	width, height int
	pixels        []uint32
	opts          driver.Options
	accel         *accel
	updating      bool
	frames        int
}

var _ driver.Driver = (*Driver)(nil)

// New creates a driver of opts.Width × opts.Height cleared to zero.
// Options.Custom["contexts"] bounds the accelerated context index.
func New(opts driver.Options) (*Driver, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, opts.Width, opts.Height)
	}
	limit := DefaultContextLimit
	if v, ok := opts.Custom["contexts"].(int); ok && v > 0 {
		limit = v
	}
	d := &Driver{
		width:  opts.Width,
		height: opts.Height,
		pixels: make([]uint32, opts.Width*opts.Height),
		opts:   opts,
	}
	a, err := newAccel(d, limit)
	if err != nil {
		return nil, err
	}
	d.accel = a
	return d, nil
}

// Name implements driver.Driver.
func (d *Driver) Name() string { return Name }

// Format implements driver.Driver. ARGB words are stored little-endian.
func (d *Driver) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

// PixelDimensions implements ywin.VideoDriver.
func (d *Driver) PixelDimensions() (int, int) { return d.width, d.height }

// BeginUpdates implements ywin.VideoDriver.
func (d *Driver) BeginUpdates() { d.updating = true }

// EndUpdates implements ywin.VideoDriver. Each bracket counts as a frame.
func (d *Driver) EndUpdates() {
	if d.updating {
		d.frames++
	}
	d.updating = false
}

// Frames returns the number of completed update brackets.
func (d *Driver) Frames() int { return d.frames }

// Renderer implements ywin.VideoDriver.
func (d *Driver) Renderer(rect ywin.Rectangle) *ywin.Renderer {
	return driver.Renderer(d.opts, d, d.accel, rect)
}

// Accel returns the accelerated path used by the hardware renderer.
func (d *Driver) Accel() ywin.Accel { return d.accel }

// clip restricts a device rectangle to the framebuffer and returns the
// offset of its corner inside the original.
func (d *Driver) clip(x, y, w, h int) (c ywin.Rectangle, dx, dy int, ok bool) {
	c, ok = ywin.Rect(x, y, w, h).Intersect(ywin.Rect(0, 0, d.width, d.height))
	return c, c.X - x, c.Y - y, ok
}

func (d *Driver) row(x, y, w int) []uint32 {
	off := y*d.width + x
	return d.pixels[off : off+w]
}

// Blit implements ywin.VideoDriver. Pixels are copied without blending.
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
		copy(d.row(c.X, c.Y+j, c.W), pixels[so:so+c.W])
	}
}

// DrawFilledRectangle implements ywin.VideoDriver for the inclusive
// rectangle (x1, y1)-(x2, y2).
func (d *Driver) DrawFilledRectangle(argb uint32, x1, y1, x2, y2 int) {
	c, _, _, ok := d.clip(x1, y1, x2-x1+1, y2-y1+1)
	if !ok {
		return
	}
	for j := 0; j < c.H; j++ {
		blend.FillSpan(d.row(c.X, c.Y+j, c.W), argb)
	}
}

// Pixel returns the framebuffer pixel at (x, y), or 0 outside it.
func (d *Driver) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= d.width || y >= d.height {
		return 0
	}
	return d.pixels[y*d.width+x]
}

// Framebuffer wraps the framebuffer in an RGBABuffer sharing its pixels.
func (d *Driver) Framebuffer() *ywin.RGBABuffer {
	return ywin.NewRGBABufferFromData(d.width, d.height, d.width, d.height, d.pixels)
}

// Image returns a copy of the framebuffer. Pixels are not premultiplied.
func (d *Driver) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, d.width, d.height))
	for y := 0; y < d.height; y++ {
		for x, p := range d.row(0, y, d.width) {
			img.SetNRGBA(x, y, color.NRGBA{
				R: blend.Red(p), G: blend.Green(p), B: blend.Blue(p), A: blend.Alpha(p),
			})
		}
	}
	return img
}

// Close implements driver.Driver. Cached buffer contexts are released.
func (d *Driver) Close() error {
	d.accel.purge()
	return nil
}
