// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/ywin"
)

// blit records one Sink.Blit call.
type blit struct {
	pixels        []uint32
	x, y, w, h, s int
}

type recordingSink struct {
	blits []blit
}

func (r *recordingSink) Blit(pixels []uint32, x, y, w, h, stride int) {
	cp := append([]uint32(nil), pixels...)
	r.blits = append(r.blits, blit{cp, x, y, w, h, stride})
}

// accelCall records one Accel call.
type accelCall struct {
	op         string
	x, y, w, h int
}

type fakeAccel struct {
	accept bool
	calls  []accelCall
}

func (a *fakeAccel) RenderBuffer(b ywin.Buffer, x, y, xo, yo, w, h int) bool {
	a.calls = append(a.calls, accelCall{"buffer", x + xo, y + yo, w, h})
	return a.accept
}

func (a *fakeAccel) BlitRGBAData(x, y int, data []uint32, w, h, stride int) {
	a.calls = append(a.calls, accelCall{"blit", x, y, w, h})
}

func (a *fakeAccel) DrawFilledRectangle(color uint32, x, y, w, h int) {
	a.calls = append(a.calls, accelCall{"fill", x, y, w, h})
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"", ModeSoftware, false},
		{"software", ModeSoftware, false},
		{"Simple", ModeSimple, false},
		{" hardware ", ModeHardware, false},
		{"opengl", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrUnknownMode) {
				t.Errorf("ParseMode(%q) error = %v, want ErrUnknownMode", tt.in, err)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMode_Text(t *testing.T) {
	for _, m := range []Mode{ModeSoftware, ModeSimple, ModeHardware} {
		text, err := m.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error = %v", m, err)
		}
		var back Mode
		if err := back.UnmarshalText(text); err != nil || back != m {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, back, err, m)
		}
	}
	if _, err := Mode(42).MarshalText(); err == nil {
		t.Error("MarshalText of an invalid mode succeeded")
	}
	if Mode(42).String() != "Mode(42)" {
		t.Errorf("String() = %q", Mode(42).String())
	}
}

func TestMode_Capabilities(t *testing.T) {
	if c := ModeSimple.Capabilities(); c.ExactBlend || !c.Scratch {
		t.Errorf("simple capabilities = %+v", c)
	}
	if c := ModeSoftware.Capabilities(); !c.ExactBlend || !c.Scratch || c.NativeBuffers {
		t.Errorf("software capabilities = %+v", c)
	}
	if c := ModeHardware.Capabilities(); !c.NativeBuffers || c.Scratch {
		t.Errorf("hardware capabilities = %+v", c)
	}
}

func TestNew(t *testing.T) {
	rect := ywin.Rect(0, 0, 4, 4)
	sink := &recordingSink{}
	accel := &fakeAccel{}

	tests := []struct {
		name  string
		mode  Mode
		accel ywin.Accel
		want  string
	}{
		{"software", ModeSoftware, accel, "*render.Software"},
		{"simple", ModeSimple, accel, "*render.Simple"},
		{"hardware", ModeHardware, accel, "*render.Hardware"},
		{"hardware without accel", ModeHardware, nil, "*render.Software"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.mode, sink, tt.accel, rect)
			defer r.Destroy()
			var got string
			switch r.Backend().(type) {
			case *Software:
				got = "*render.Software"
			case *Simple:
				got = "*render.Simple"
			case *Hardware:
				got = "*render.Hardware"
			}
			if got != tt.want {
				t.Errorf("backend = %s, want %s", got, tt.want)
			}
			if reg, ok := r.Region(); !ok || reg.Clip != rect || reg.TranslateX != 0 || reg.TranslateY != 0 {
				t.Errorf("initial region = %+v, %v", reg, ok)
			}
		})
	}
}
