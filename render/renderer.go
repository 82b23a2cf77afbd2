// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/ywin"
)

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("render: unknown mode")

// Mode selects a renderer variant.
type Mode int

const (
	// ModeSoftware blends exactly into a scratch buffer.
	ModeSoftware Mode = iota

	// ModeSimple approximates blending into a scratch buffer.
	ModeSimple

	// ModeHardware delegates to the driver's accelerated path.
	ModeHardware
)

var modeNames = [...]string{
	ModeSoftware: "software",
	ModeSimple:   "simple",
	ModeHardware: "hardware",
}

// String returns the mode name.
func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode returns the mode with the given case-insensitive name. An
// empty name selects ModeSoftware.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ModeSoftware, nil
	}
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(modeNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so modes can be read
// from configuration files.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Capabilities describes what a renderer variant does.
type Capabilities struct {
	// ExactBlend is true when translucent pixels use Porter-Duff
	// source-over rather than an approximation.
	ExactBlend bool

	// NativeBuffers is true when buffers may bypass the pixel blit.
	NativeBuffers bool

	// Scratch is true when output is staged and flushed on Complete.
	Scratch bool
}

// Capabilities returns what the variant selected by m does.
func (m Mode) Capabilities() Capabilities {
	switch m {
	case ModeSimple:
		return Capabilities{Scratch: true}
	case ModeHardware:
		return Capabilities{ExactBlend: true, NativeBuffers: true}
	default:
		return Capabilities{ExactBlend: true, Scratch: true}
	}
}

// Sink receives the flushed scratch of a scratch-based renderer.
// Every ywin.VideoDriver is a Sink.
type Sink interface {
	Blit(pixels []uint32, x, y, w, h, stride int)
}

// New returns a renderer of the given mode for rect. ModeHardware needs
// accel; without it the software variant is used instead.
func New(mode Mode, sink Sink, accel ywin.Accel, rect ywin.Rectangle) *ywin.Renderer {
	switch mode {
	case ModeSimple:
		return NewSimple(sink, rect)
	case ModeHardware:
		if accel != nil {
			return NewHardware(accel, rect)
		}
		ywin.Logger().Debug("render: no accelerator, using software renderer")
	}
	return NewSoftware(sink, rect)
}
