// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/driver"
	"github.com/gogpu/ywin/render"
)

const (
	red   = 0xFFFF0000
	green = 0xFF00FF00
	blue  = 0xFF0000FF
)

func newSimDriver(t *testing.T, cols, rows int) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	return newSimDriverOpts(t, cols, rows, driver.DefaultOptions())
}

func newSimDriverOpts(t *testing.T, cols, rows int, opts driver.Options) (*Driver, tcell.SimulationScreen) {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	d, err := NewWithScreen(s, opts)
	if err != nil {
		t.Fatalf("NewWithScreen() = %v", err)
	}
	s.SetSize(cols, rows)
	d.Resize()
	t.Cleanup(func() { d.Close() })
	return d, s
}

func cellAt(t *testing.T, s tcell.SimulationScreen, x, y int) tcell.SimCell {
	t.Helper()
	cells, w, _ := s.GetContents()
	return cells[y*w+x]
}

func TestDriver_Dimensions(t *testing.T) {
	d, _ := newSimDriver(t, 6, 3)
	w, h := d.PixelDimensions()
	if w != 6 || h != 6 {
		t.Errorf("PixelDimensions() = %dx%d, want 6x6", w, h)
	}
	if d.Name() != Name {
		t.Errorf("Name() = %q, want %q", d.Name(), Name)
	}
}

func TestDriver_HalfBlocks(t *testing.T) {
	d, s := newSimDriver(t, 4, 2)

	d.BeginUpdates()
	d.DrawFilledRectangle(red, 0, 0, 3, 0)
	d.DrawFilledRectangle(blue, 0, 1, 3, 1)
	d.DrawFilledRectangle(green, 0, 2, 3, 3)
	d.EndUpdates()

	top := cellAt(t, s, 0, 0)
	if len(top.Runes) == 0 || top.Runes[0] != halfBlock {
		t.Fatalf("top cell runes = %q, want half block", top.Runes)
	}
	fg, bg, _ := top.Style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("top cell colours = %v/%v, want red over blue", fg, bg)
	}

	bottom := cellAt(t, s, 2, 1)
	if len(bottom.Runes) == 0 || bottom.Runes[0] != ' ' {
		t.Fatalf("uniform cell runes = %q, want space", bottom.Runes)
	}
	if _, bg, _ := bottom.Style.Decompose(); bg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("uniform cell background = %v, want green", bg)
	}
}

func TestDriver_Blit(t *testing.T) {
	d, _ := newSimDriver(t, 3, 2)
	data := []uint32{
		1, 2, 3, 4,
		5, 6, 7, 8,
	}
	d.Blit(data, 1, 3, 4, 2, 4)

	tests := []struct {
		x, y int
		want uint32
	}{
		{1, 3, 1},
		{2, 3, 2},
		{0, 3, 0},
		{1, 4, 0},
		{5, 5, 0},
	}
	for _, tt := range tests {
		if got := d.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDriver_ResizeClears(t *testing.T) {
	d, s := newSimDriver(t, 2, 1)
	d.DrawFilledRectangle(red, 0, 0, 1, 1)
	s.SetSize(5, 4)
	w, h := d.Resize()
	if w != 5 || h != 8 {
		t.Fatalf("Resize() = %dx%d, want 5x8", w, h)
	}
	if d.Pixel(0, 0) != 0 {
		t.Error("framebuffer kept old contents after Resize")
	}
}

func TestDriver_RendererFallsBack(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	opts := driver.DefaultOptions()
	opts.Mode = render.ModeHardware
	d, err := NewWithScreen(s, opts)
	if err != nil {
		t.Fatal(err)
	}
	defer d.Close()
	s.SetSize(4, 4)
	d.Resize()

	r := d.Renderer(ywin.Rect(0, 0, 4, 8))
	if _, ok := r.Backend().(*render.Software); !ok {
		t.Errorf("backend = %T, want *render.Software", r.Backend())
	}
	r.DrawFilledRectangle(blue, 0, 0, 2, 2)
	r.Complete()
	r.Destroy()
	if d.Pixel(1, 1) != blue {
		t.Errorf("Pixel(1, 1) = %#08x, want blue", d.Pixel(1, 1))
	}
}

func TestDriver_SetPointer(t *testing.T) {
	tests := []struct {
		name     string
		hardware bool
		visible  bool
		wantVis  bool
	}{
		{"hardware pointer", true, true, true},
		{"hardware pointer hidden", true, false, false},
		{"software pointer", false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := driver.DefaultOptions()
			opts.HardwarePointer = tt.hardware
			d, s := newSimDriverOpts(t, 8, 4, opts)

			if _, ok := d.Renderer(ywin.Rect(0, 0, 8, 8)).Option(ywin.OptionHardwarePointer); ok != tt.hardware {
				t.Errorf("hardware pointer option set = %v, want %v", ok, tt.hardware)
			}
			d.SetPointer(5, 3, tt.visible)
			d.EndUpdates()
			x, y, vis := s.GetCursor()
			if vis != tt.wantVis {
				t.Fatalf("cursor visible = %v, want %v", vis, tt.wantVis)
			}
			if vis && (x != 5 || y != 1) {
				t.Errorf("cursor = (%d, %d), want (5, 1)", x, y)
			}
		})
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want Event
		ok   bool
	}{
		{"resize", tcell.NewEventResize(10, 5), Event{Kind: EventResize, Width: 10, Height: 10}, true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Event{Kind: EventQuit}, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Event{Kind: EventQuit}, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Event{Kind: EventQuit}, true},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), Event{Kind: EventKey, Key: tcell.KeyTab}, true},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Event{Kind: EventKey, Key: tcell.KeyRune, Rune: 'x'}, true},
		{"mouse", tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone), Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.ev)
			if ok != tt.ok || got != tt.want {
				t.Errorf("translate() = %+v, %v; want %+v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDriver_Events(t *testing.T) {
	d, s := newSimDriver(t, 4, 4)
	events := d.Events()
	if d.Events() != events {
		t.Fatal("Events() returned a second channel")
	}

	s.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	want := []EventKind{EventKey, EventQuit}
	for i, kind := range want {
		select {
		case ev := <-events:
			if ev.Kind != kind {
				t.Errorf("event %d kind = %v, want %v", i, ev.Kind, kind)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}

	d.Close()
	select {
	case _, ok := <-events:
		if ok {
			// Drain anything queued before the close.
			for range events {
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after Close")
	}
}
