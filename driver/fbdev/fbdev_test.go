// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fbdev

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/driver"
)

// newStrided returns a BGRA driver over a w×h screen padded to stride.
func newStrided(t *testing.T, w, h, stride int) (*Driver, []uint32) {
	t.Helper()
	return newFormatted(t, gputypes.TextureFormatBGRA8Unorm, w, h, stride)
}

// newFormatted returns a driver in format over a w×h screen padded to stride.
func newFormatted(t *testing.T, format gputypes.TextureFormat, w, h, stride int) (*Driver, []uint32) {
	t.Helper()
	mem := make([]uint32, stride*h)
	released := 0
	d, err := newDriver("test", driver.DefaultOptions(), format, mem, w, h, stride, func() error {
		released++
		return nil
	})
	if err != nil {
		t.Fatalf("newDriver() = %v", err)
	}
	t.Cleanup(func() {
		d.Close()
		if released != 1 {
			t.Errorf("release called %d times, want 1", released)
		}
	})
	return d, mem
}

func TestNewDriver_Geometry(t *testing.T) {
	tests := []struct {
		name         string
		len          int
		w, h, stride int
		ok           bool
	}{
		{"exact", 16, 4, 4, 4, true},
		{"padded", 8*3 + 4, 4, 4, 8, true},
		{"stride too small", 16, 4, 4, 3, false},
		{"short memory", 15, 4, 4, 4, false},
		{"zero width", 16, 0, 4, 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDriver("test", driver.Options{}, gputypes.TextureFormatBGRA8Unorm, make([]uint32, tt.len), tt.w, tt.h, tt.stride, nil)
			if (err == nil) != tt.ok {
				t.Errorf("newDriver() error = %v, want ok %v", err, tt.ok)
			}
		})
	}
}

func TestDriver_Stride(t *testing.T) {
	d, mem := newStrided(t, 4, 3, 6)
	d.DrawFilledRectangle(0xFFFF0000, 0, 0, 10, 10)

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			want := uint32(0xFFFF0000)
			if x >= 4 {
				want = 0
			}
			if got := mem[y*6+x]; got != want {
				t.Errorf("mem[%d, %d] = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestDriver_Blit(t *testing.T) {
	d, _ := newStrided(t, 4, 4, 5)
	data := []uint32{
		1, 2, 3,
		4, 5, 6,
	}
	d.Blit(data, -1, 2, 3, 2, 3)
	d.Blit(data, 10, 10, 3, 2, 3)

	tests := []struct {
		x, y int
		want uint32
	}{
		{0, 2, 2},
		{1, 2, 3},
		{0, 3, 5},
		{1, 3, 6},
		{2, 2, 0},
		{0, 1, 0},
	}
	for _, tt := range tests {
		if got := d.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDriver_Renderer(t *testing.T) {
	d, _ := newStrided(t, 8, 8, 8)
	if d.Name() != Name || d.Device() != "test" {
		t.Errorf("Name(), Device() = %q, %q", d.Name(), d.Device())
	}
	r := d.Renderer(ywin.Rect(0, 0, 8, 8))
	r.DrawFilledRectangle(0xFF00FF00, 2, 2, 3, 3)
	if d.Pixel(3, 3) != 0 {
		t.Error("software renderer wrote before Complete")
	}
	r.Complete()
	r.Destroy()
	if d.Pixel(3, 3) != 0xFF00FF00 || d.Pixel(5, 5) != 0 {
		t.Errorf("Pixel(3,3) = %#08x, Pixel(5,5) = %#08x", d.Pixel(3, 3), d.Pixel(5, 5))
	}
}

func TestNewDriver_Format(t *testing.T) {
	tests := []struct {
		format gputypes.TextureFormat
		ok     bool
	}{
		{gputypes.TextureFormatBGRA8Unorm, true},
		{gputypes.TextureFormatRGBA8Unorm, true},
		{gputypes.TextureFormatUndefined, false},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			d, err := newDriver("test", driver.Options{}, tt.format, make([]uint32, 16), 4, 4, 4, nil)
			if (err == nil) != tt.ok {
				t.Fatalf("newDriver() error = %v, want ok %v", err, tt.ok)
			}
			if err != nil {
				if !errors.Is(err, driver.ErrUnsupportedFormat) {
					t.Errorf("newDriver() error = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if d.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", d.Format(), tt.format)
			}
		})
	}
}

func TestDriver_RGBALayout(t *testing.T) {
	tests := []struct {
		name   string
		format gputypes.TextureFormat
		fill   uint32 // raw word after a red fill
		blit   uint32 // raw word after blitting 0xFF123456
	}{
		{"bgra", gputypes.TextureFormatBGRA8Unorm, 0xFFFF0000, 0xFF123456},
		{"rgba", gputypes.TextureFormatRGBA8Unorm, 0xFF0000FF, 0xFF563412},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, mem := newFormatted(t, tt.format, 4, 2, 4)
			d.DrawFilledRectangle(0xFFFF0000, 0, 0, 4, 1)
			d.Blit([]uint32{0xFF123456}, 2, 1, 1, 1, 1)

			if got := mem[0]; got != tt.fill {
				t.Errorf("fill word = %#08x, want %#08x", got, tt.fill)
			}
			if got := mem[4+2]; got != tt.blit {
				t.Errorf("blit word = %#08x, want %#08x", got, tt.blit)
			}
			if got := d.Pixel(0, 0); got != 0xFFFF0000 {
				t.Errorf("Pixel(0, 0) = %#08x, want 0xffff0000", got)
			}
			if got := d.Pixel(2, 1); got != 0xFF123456 {
				t.Errorf("Pixel(2, 1) = %#08x, want 0xff123456", got)
			}
		})
	}
}

func TestDriver_RGBABlend(t *testing.T) {
	d, mem := newFormatted(t, gputypes.TextureFormatRGBA8Unorm, 2, 1, 2)
	d.DrawFilledRectangle(0xFF0000FF, 0, 0, 2, 1)
	d.DrawFilledRectangle(0x80FF0000, 0, 0, 1, 1)

	got := d.Pixel(0, 0)
	if r, b := got>>16&0xFF, got&0xFF; r < 0x7E || r > 0x81 || b < 0x7E || b > 0x81 {
		t.Errorf("Pixel(0, 0) = %#08x, want red and blue near 0x80", got)
	}
	if mem[1] != 0xFFFF0000 {
		t.Errorf("untouched word = %#08x, want blue stored as 0xffff0000", mem[1])
	}
}
