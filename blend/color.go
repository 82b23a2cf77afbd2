package blend

// ARGB packs four channels into a pixel.
func ARGB(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Alpha returns the alpha channel of c.
func Alpha(c uint32) uint8 { return uint8(c >> 24) }

// Red returns the red channel of c.
func Red(c uint32) uint8 { return uint8(c >> 16) }

// Green returns the green channel of c.
func Green(c uint32) uint8 { return uint8(c >> 8) }

// Blue returns the blue channel of c.
func Blue(c uint32) uint8 { return uint8(c) }

// Opaque reports whether c has full alpha.
func Opaque(c uint32) bool { return c&0xFF000000 == 0xFF000000 }

// Transparent reports whether c has zero alpha.
func Transparent(c uint32) bool { return c&0xFF000000 == 0 }

// Approximate is the cheap stand-in for source-over used by the simple
// renderer: mostly opaque sources replace the destination, half
// transparent ones are averaged with it and faint ones are dropped.
func Approximate(to *uint32, from uint32) {
	switch {
	case from >= 0xA0000000:
		*to = from
	case from >= 0x40000000:
		*to = (*to&0xFEFEFEFE)>>1 + (from&0xFEFEFEFE)>>1
	}
}
