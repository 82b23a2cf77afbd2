package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Glyph is a shaped glyph positioned relative to the start of its run.
type Glyph struct {
	ID sfnt.GlyphIndex

	// X is the pen position; XOffset and YOffset adjust the drawing
	// position without moving the pen. YOffset grows upwards.
	X, XOffset, YOffset fixed.Int26_6

	// Cluster is the index of the first rune of the glyph's cluster.
	Cluster int
}

// Run is a shaped directional run, in visual order.
type Run struct {
	Glyphs  []Glyph
	Advance fixed.Int26_6
	RTL     bool
}

// Shaper turns strings into positioned glyphs. It is safe for concurrent
// use.
type Shaper struct {
	pool sync.Pool
}

// NewShaper returns a HarfBuzz shaper.
func NewShaper() *Shaper {
	return &Shaper{pool: sync.Pool{
		New: func() any { return &shaping.HarfbuzzShaper{} },
	}}
}

var defaultShaper = NewShaper()

// Shape splits s into directional runs and shapes each one. Runs are
// returned in visual order, left to right.
func (s *Shaper) Shape(f *Face, str string) []Run {
	if str == "" || f == nil {
		return nil
	}
	face := gotext.NewFace(f.font.gt)
	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	var runs []Run
	for _, seg := range segments(str) {
		dir := di.DirectionLTR
		if seg.rtl {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      seg.runes,
			RunStart:  0,
			RunEnd:    len(seg.runes),
			Direction: dir,
			Face:      face,
			Size:      f.ppem,
			Script:    detectScript(seg.runes),
			Language:  language.NewLanguage("en"),
		})
		runs = append(runs, convert(out, seg))
	}
	return runs
}

func convert(out shaping.Output, seg segment) Run {
	run := Run{Advance: out.Advance, RTL: seg.rtl, Glyphs: make([]Glyph, len(out.Glyphs))}
	var x fixed.Int26_6
	for i, g := range out.Glyphs {
		run.Glyphs[i] = Glyph{
			ID:      sfnt.GlyphIndex(g.GlyphID),
			X:       x,
			XOffset: g.XOffset,
			YOffset: g.YOffset,
			Cluster: seg.start + g.ClusterIndex,
		}
		x += g.Advance
	}
	return run
}

// segment is a directional run of a string.
type segment struct {
	runes []rune
	start int // rune index in the whole string
	rtl   bool
}

// segments splits s into bidi runs in visual order. Strings the bidi
// package cannot order are treated as one left-to-right run.
func segments(s string) []segment {
	runes := []rune(s)
	whole := []segment{{runes: runes}}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}
	segs := make([]segment, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		if start < 0 || end >= len(runes) || start > end {
			return whole
		}
		segs = append(segs, segment{
			runes: runes[start : end+1],
			start: start,
			rtl:   run.Direction() == bidi.RightToLeft,
		})
	}
	return segs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
