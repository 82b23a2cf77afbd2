package text

import (
	"image"
	"image/draw"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/ywin/internal/cache"
)

// GlyphCacheLimit is the soft limit of the process-wide mask cache.
const GlyphCacheLimit = 2048

// Mask is an 8-bit coverage image of one glyph. X and Y place its top left
// corner relative to the pen position on the baseline.
type Mask struct {
	Alpha  []uint8
	Stride int
	W, H   int
	X, Y   int
}

// Empty reports whether the mask has no pixels, as for a space.
func (m *Mask) Empty() bool { return m == nil || m.W == 0 || m.H == 0 }

type glyphKey struct {
	font *fontData
	id   sfnt.GlyphIndex
	ppem fixed.Int26_6
}

var glyphs = cache.New[glyphKey, *Mask](GlyphCacheLimit)

// GlyphCacheStats reports usage of the mask cache.
func GlyphCacheStats() cache.Stats { return glyphs.Stats() }

// Glyph returns the coverage mask of glyph id, rasterizing it on first
// use.
func (f *Face) Glyph(id sfnt.GlyphIndex) *Mask {
	key := glyphKey{font: f.font, id: id, ppem: f.ppem}
	return glyphs.GetOrCreate(key, func() *Mask { return f.rasterize(id) })
}

func (f *Face) rasterize(id sfnt.GlyphIndex) *Mask {
	f.mu.Lock()
	segs, err := f.font.sfnt.LoadGlyph(&f.buf, id, f.ppem, nil)
	var segments sfnt.Segments
	if err == nil {
		segments = append(segments, segs...)
	}
	f.mu.Unlock()
	if len(segments) == 0 {
		return &Mask{}
	}

	b := segments.Bounds()
	x0, y0 := b.Min.X.Floor(), b.Min.Y.Floor()
	w, h := b.Max.X.Ceil()-x0, b.Max.Y.Ceil()-y0
	if w <= 0 || h <= 0 {
		return &Mask{}
	}

	dx, dy := float32(x0), float32(y0)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X)/64 - dx, float32(p.Y)/64 - dy
	}
	r := vector.NewRasterizer(w, h)
	for _, s := range segments {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			r.MoveTo(pt(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			r.LineTo(pt(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := pt(s.Args[0])
			cx, cy := pt(s.Args[1])
			ex, ey := pt(s.Args[2])
			r.CubeTo(bx, by, cx, cy, ex, ey)
		}
	}
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.DrawOp = draw.Src
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return &Mask{Alpha: dst.Pix, Stride: dst.Stride, W: w, H: h, X: x0, Y: y0}
}
