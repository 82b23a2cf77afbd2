// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package term provides a video driver that draws into a terminal.
//
// Every character cell shows two vertically stacked pixels: the upper
// half block is drawn in the top pixel's colour over a background of the
// bottom pixel's colour.
package term

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gputypes"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/blend"
	"github.com/gogpu/ywin/driver"
)

// Name is the registry name of the driver.
const Name = "term"

// halfBlock is drawn with the top pixel as foreground.
const halfBlock = '▀'

// sameColour is the Lab distance below which the two pixels of a cell
// are drawn as a plain background.
const sameColour = 0.01

func init() {
	driver.Register(Name, 50, func(opts driver.Options) (driver.Driver, error) {
		return New(opts)
	}, func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
}

// Driver renders into a tcell screen.
type Driver struct {
	screen tcell.Screen
	opts   driver.Options

	cols, rows int
	pixels     []uint32
	dirty      bool

	eventsOnce sync.Once
	events     chan Event
	quit       chan struct{}
	closeOnce  sync.Once
}

var (
	_ driver.Driver      = (*Driver)(nil)
	_ ywin.PointerDriver = (*Driver)(nil)
)

// New opens the controlling terminal.
func New(opts driver.Options) (*Driver, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}
	return NewWithScreen(s, opts)
}

// NewWithScreen initialises s and draws into it.
func NewWithScreen(s tcell.Screen, opts driver.Options) (*Driver, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init: %w", err)
	}
	s.HideCursor()
	d := &Driver{
		screen: s,
		opts:   opts,
		quit:   make(chan struct{}),
	}
	d.Resize()
	return d, nil
}

// Resize re-reads the terminal size and reallocates the framebuffer. It
// returns the new pixel dimensions. The contents are cleared.
func (d *Driver) Resize() (w, h int) {
	d.cols, d.rows = d.screen.Size()
	d.pixels = make([]uint32, d.cols*d.rows*2)
	d.dirty = true
	return d.PixelDimensions()
}

// Name implements driver.Driver.
func (d *Driver) Name() string { return Name }

// Format implements driver.Driver.
func (d *Driver) Format() gputypes.TextureFormat { return gputypes.TextureFormatBGRA8Unorm }

// PixelDimensions implements ywin.VideoDriver.
func (d *Driver) PixelDimensions() (int, int) { return d.cols, d.rows * 2 }

// BeginUpdates implements ywin.VideoDriver.
func (d *Driver) BeginUpdates() {}

// EndUpdates implements ywin.VideoDriver and shows the frame.
func (d *Driver) EndUpdates() {
	if !d.dirty {
		return
	}
	d.flush()
	d.screen.Show()
	d.dirty = false
}

// Renderer implements ywin.VideoDriver. Terminals have no accelerated
// path; the hardware mode falls back to software.
func (d *Driver) Renderer(rect ywin.Rectangle) *ywin.Renderer {
	return driver.Renderer(d.opts, d, nil, rect)
}

func (d *Driver) clip(x, y, w, h int) (c ywin.Rectangle, dx, dy int, ok bool) {
	pw, ph := d.PixelDimensions()
	c, ok = ywin.Rect(x, y, w, h).Intersect(ywin.Rect(0, 0, pw, ph))
	return c, c.X - x, c.Y - y, ok
}

func (d *Driver) row(x, y, w int) []uint32 {
	off := y*d.cols + x
	return d.pixels[off : off+w]
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
			break
		}
		copy(d.row(c.X, c.Y+j, c.W), pixels[so:so+c.W])
	}
	d.dirty = true
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
	d.dirty = true
}

// SetPointer implements ywin.PointerDriver. With Options.HardwarePointer
// the terminal cursor marks the cell holding pixel (x, y); otherwise the
// cursor stays hidden.
func (d *Driver) SetPointer(x, y int, visible bool) {
	if visible && d.opts.HardwarePointer {
		d.screen.ShowCursor(x, y/2)
	} else {
		d.screen.HideCursor()
	}
	d.dirty = true
}

// Pixel returns the framebuffer pixel at (x, y), or 0 outside it.
func (d *Driver) Pixel(x, y int) uint32 {
	pw, ph := d.PixelDimensions()
	if x < 0 || y < 0 || x >= pw || y >= ph {
		return 0
	}
	return d.pixels[y*d.cols+x]
}

func toColorful(p uint32) colorful.Color {
	return colorful.Color{
		R: float64(blend.Red(p)) / 255,
		G: float64(blend.Green(p)) / 255,
		B: float64(blend.Blue(p)) / 255,
	}
}

func toTcell(p uint32) tcell.Color {
	return tcell.NewRGBColor(int32(blend.Red(p)), int32(blend.Green(p)), int32(blend.Blue(p)))
}

// flush converts the framebuffer into cells.
func (d *Driver) flush() {
	for cy := 0; cy < d.rows; cy++ {
		top := d.row(0, cy*2, d.cols)
		bottom := d.row(0, cy*2+1, d.cols)
		for cx := 0; cx < d.cols; cx++ {
			t, b := top[cx], bottom[cx]
			if t == b || toColorful(t).DistanceLab(toColorful(b)) < sameColour {
				d.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault.Background(toTcell(b)))
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(t)).Background(toTcell(b))
			d.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
}

// Close implements driver.Driver and restores the terminal.
func (d *Driver) Close() error {
	d.closeOnce.Do(func() {
		close(d.quit)
		d.screen.Fini()
	})
	return nil
}
