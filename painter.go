package ywin

import (
	"errors"

	"github.com/gogpu/ywin/blend"
)

// ErrStateUnderflow is returned by Painter.Restore when only the base
// state remains.
var ErrStateUnderflow = errors.New("ywin: painter state stack underflow")

// PainterState is one frame of a painter's state stack.
type PainterState struct {
	BlendMode blend.BlendMode
	Pen       uint32
	Fill      uint32

	// Affine transform: device = local*Scale + Translate.
	ScaleX, ScaleY         float64
	TranslateX, TranslateY float64

	// Clip is in buffer coordinates and only meaningful when Clipping.
	Clipping bool
	Clip     Rectangle
}

func defaultPainterState() PainterState {
	return PainterState{
		BlendMode: blend.BlendSourceOver,
		Pen:       0xFF000000,
		ScaleX:    1,
		ScaleY:    1,
	}
}

// Painter draws into a Buffer through a stack of PainterStates. All public
// drawing calls transform their geometry through the top state first.
//
// A Painter must not outlive its buffer and is not safe for concurrent use.
type Painter struct {
	buffer Buffer
	canvas canvas
	stack  []PainterState
}

func newPainter(b Buffer, c canvas) *Painter {
	p := &Painter{
		buffer: b,
		canvas: c,
		stack:  make([]PainterState, 1, 4),
	}
	p.stack[0] = defaultPainterState()
	return p
}

func (p *Painter) state() *PainterState {
	return &p.stack[len(p.stack)-1]
}

// Buffer returns the buffer this painter draws into.
func (p *Painter) Buffer() Buffer {
	return p.buffer
}

// State returns a copy of the current state.
func (p *Painter) State() PainterState {
	return *p.state()
}

// Depth returns the number of states on the stack, at least 1.
func (p *Painter) Depth() int {
	return len(p.stack)
}

// Save pushes a copy of the current state.
func (p *Painter) Save() {
	p.stack = append(p.stack, *p.state())
}

// Restore pops the current state. Popping the base state is reported and
// otherwise ignored.
func (p *Painter) Restore() error {
	if len(p.stack) == 1 {
		Logger().Warn("painter state stack underflow", "buffer", BufferID(p.buffer))
		return ErrStateUnderflow
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

// transform maps a local rectangle into buffer space.
func (p *Painter) transform(x, y, w, h int) (int, int, int, int) {
	st := p.state()
	return int(float64(x)*st.ScaleX + st.TranslateX),
		int(float64(y)*st.ScaleY + st.TranslateY),
		int(float64(w) * st.ScaleX),
		int(float64(h) * st.ScaleY)
}

// Translate moves the origin by (x, y) local units.
func (p *Painter) Translate(x, y float64) {
	st := p.state()
	st.TranslateX += x * st.ScaleX
	st.TranslateY += y * st.ScaleY
}

// Scale multiplies the current scale.
func (p *Painter) Scale(x, y float64) {
	st := p.state()
	st.ScaleX *= x
	st.ScaleY *= y
}

// ClipTo narrows the clip to r (local coordinates). The first call sets
// the clip; later calls intersect, collapsing to zero size when the result
// is empty.
func (p *Painter) ClipTo(r Rectangle) {
	x, y, w, h := p.transform(r.X, r.Y, r.W, r.H)
	t := Rect(x, y, w, h)
	st := p.state()
	if !st.Clipping {
		st.Clipping = true
		st.Clip = t
		return
	}
	c, ok := st.Clip.Intersect(t)
	if !ok {
		c = st.Clip
		c.W, c.H = 0, 0
	}
	st.Clip = c
}

// Enter clips to r and moves the origin to its corner, descending into a
// child's coordinate space.
func (p *Painter) Enter(r Rectangle) {
	p.ClipTo(r)
	p.Translate(float64(r.X), float64(r.Y))
}

// ClipRectangle returns the clip mapped back into local coordinates. The
// boolean is false when no clip is active.
func (p *Painter) ClipRectangle() (Rectangle, bool) {
	st := p.state()
	if !st.Clipping {
		return Rectangle{}, false
	}
	c := st.Clip
	x := int(float64(c.X) - st.TranslateX)
	y := int(float64(c.Y) - st.TranslateY)
	return Rectangle{
		X: int(float64(x) / st.ScaleX),
		Y: int(float64(y) / st.ScaleY),
		W: int(float64(c.W) / st.ScaleX),
		H: int(float64(c.H) / st.ScaleY),
	}, true
}

// FullyClipped reports whether nothing drawn would be visible.
func (p *Painter) FullyClipped() bool {
	st := p.state()
	return st.Clipping && (st.Clip.W == 0 || st.Clip.H == 0)
}

// ClipCoordinates intersects r (buffer coordinates) with the active clip.
// The boolean reports whether a clip was applied; an empty intersection
// yields the zero Rectangle.
func (p *Painter) ClipCoordinates(r Rectangle) (Rectangle, bool) {
	st := p.state()
	if !st.Clipping {
		return r, false
	}
	c, _ := r.Intersect(st.Clip)
	return c, true
}

// SetBlendMode sets the operator used by drawing calls.
func (p *Painter) SetBlendMode(m blend.BlendMode) { p.state().BlendMode = m }

// BlendMode returns the current operator.
func (p *Painter) BlendMode() blend.BlendMode { return p.state().BlendMode }

// SetPenColor sets the stroke colour.
func (p *Painter) SetPenColor(c uint32) { p.state().Pen = c }

// PenColor returns the stroke colour.
func (p *Painter) PenColor() uint32 { return p.state().Pen }

// SetFillColor sets the fill colour.
func (p *Painter) SetFillColor(c uint32) { p.state().Fill = c }

// FillColor returns the fill colour.
func (p *Painter) FillColor() uint32 { return p.state().Fill }

// ClearRectangle sets every pixel of the rectangle to the fill colour
// without blending.
func (p *Painter) ClearRectangle(x, y, w, h int) {
	x, y, w, h = p.transform(x, y, w, h)
	c, _ := p.ClipCoordinates(Rect(x, y, w, h))
	p.canvas.clearRectangle(p, c.X, c.Y, c.W, c.H)
}

// DrawRectangle fills the rectangle with the fill colour and strokes its
// one pixel border with the pen. Borders cut away by the clip are not
// stroked. Interior pixels are skipped when the fill is transparent.
func (p *Painter) DrawRectangle(x, y, w, h int) {
	x, y, w, h = p.transform(x, y, w, h)
	p.canvas.drawRectangle(p, x, y, w, h)
}

// DrawHLine draws dx pixels rightwards from (x, y).
func (p *Painter) DrawHLine(x, y, dx int) {
	x, y, dx, _ = p.transform(x, y, dx, 0)
	p.canvas.drawHLine(p, x, y, dx)
}

// DrawVLine draws dy pixels downwards from (x, y).
func (p *Painter) DrawVLine(x, y, dy int) {
	x, y, _, dy = p.transform(x, y, 0, dy)
	p.canvas.drawVLine(p, x, y, dy)
}

// DrawLine draws from (x, y) towards (x+dx, y+dy), excluding the end point.
func (p *Painter) DrawLine(x, y, dx, dy int) {
	x, y, dx, dy = p.transform(x, y, dx, dy)
	p.canvas.drawLine(p, x, y, dx, dy)
}

// DrawBuffer draws the w×h area of src starting at (xo, yo) at (x, y).
func (p *Painter) DrawBuffer(src Buffer, x, y, w, h, xo, yo int) {
	if src == nil {
		return
	}
	src.DrawOnto(p, xo, yo, x, y, w, h)
}

// DrawAlphamap blends the pen colour through an 8-bit coverage mask. Row j
// of the mask starts at alpha[j*stride].
func (p *Painter) DrawAlphamap(alpha []uint8, x, y, w, h, stride int) {
	x, y, w, h = p.transform(x, y, w, h)
	p.canvas.drawAlphamap(p, alpha, x, y, w, h, stride)
}

// DrawRGBAData blends ARGB pixels. Row j starts at data[j*stride].
func (p *Painter) DrawRGBAData(data []uint32, x, y, w, h, stride int) {
	x, y, w, h = p.transform(x, y, w, h)
	p.canvas.drawRGBAData(p, data, x, y, w, h, stride)
}
