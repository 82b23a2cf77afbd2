package text

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ywin"
)

// Draw renders s with its baseline at y, starting at x, in the painter's
// pen colour. It returns the advance width in pixels, which matches
// Face.Measure.
func Draw(p *ywin.Painter, f *Face, s string, x, baseline int) int {
	return defaultShaper.Draw(p, f, s, x, baseline)
}

// Draw is like the package Draw function but shapes with s.
func (s *Shaper) Draw(p *ywin.Painter, f *Face, str string, x, baseline int) int {
	var pen fixed.Int26_6
	for _, run := range s.Shape(f, str) {
		for _, g := range run.Glyphs {
			m := f.Glyph(g.ID)
			if m.Empty() {
				continue
			}
			gx := x + (pen+g.X+g.XOffset).Round() + m.X
			gy := baseline - g.YOffset.Round() + m.Y
			p.DrawAlphamap(m.Alpha, gx, gy, m.W, m.H, m.Stride)
		}
		pen += run.Advance
	}
	return pen.Round()
}
