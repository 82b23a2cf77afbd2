// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

// ErrUnsupportedFormat is returned for scan-out layouts no driver can
// write.
var ErrUnsupportedFormat = errors.New("driver: unsupported pixel format")

// FormatFromOffsets returns the 32-bit format whose red, green and blue
// channels start at the given bit offsets of a little-endian word.
func FormatFromOffsets(red, green, blue uint32) (gputypes.TextureFormat, error) {
	if green == 8 {
		switch {
		case red == 16 && blue == 0:
			return gputypes.TextureFormatBGRA8Unorm, nil
		case red == 0 && blue == 16:
			return gputypes.TextureFormatRGBA8Unorm, nil
		}
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("%w: red@%d green@%d blue@%d",
		ErrUnsupportedFormat, red, green, blue)
}

// Swizzled reports whether pixels in f have red and blue exchanged
// relative to ARGB words.
func Swizzled(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatRGBA8Unorm
}

// ToFormat converts an ARGB pixel into the word layout of f.
func ToFormat(f gputypes.TextureFormat, argb uint32) uint32 {
	if !Swizzled(f) {
		return argb
	}
	return swapRB(argb)
}

// FromFormat converts a word in the layout of f back to ARGB.
func FromFormat(f gputypes.TextureFormat, p uint32) uint32 {
	return ToFormat(f, p)
}

func swapRB(p uint32) uint32 {
	return p&0xFF00FF00 | (p>>16)&0xFF | (p&0xFF)<<16
}
