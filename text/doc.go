// Package text renders strings into ywin buffers.
//
// A Face pairs a parsed OpenType font with a pixel size. Strings are split
// into bidirectional runs, shaped with HarfBuzz (go-text/typesetting), and
// each glyph is rasterized from its sfnt outline into an 8-bit coverage
// mask. Masks are cached per font, glyph and size, and drawn with
// Painter.DrawAlphamap in the painter's pen colour.
//
//	face := text.DefaultFace(13)
//	p.SetPenColor(0xFFFFFFFF)
//	text.Draw(p, face, "hello", 4, 16)
package text
