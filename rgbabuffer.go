package ywin

// minDataSize is the smallest allocated edge of an RGBABuffer.
const minDataSize = 64

// RGBABuffer is a Buffer backed by a slice of ARGB pixels.
//
// The allocation is padded to power-of-two dimensions of at least 64 so
// that most resizes reuse it. Pixels live at data[y*dataWidth+x].
type RGBABuffer struct {
	bufferCore
	dataWidth  int
	dataHeight int
	data       []uint32
}

var (
	_ Buffer = (*RGBABuffer)(nil)
	_ canvas = (*RGBABuffer)(nil)
)

// NewRGBABuffer creates an empty buffer with a 64×64 zeroed allocation.
func NewRGBABuffer(opts ...BufferOption) *RGBABuffer {
	o := applyBufferOptions(opts)
	b := &RGBABuffer{
		bufferCore: newBufferCore(o.registry),
		dataWidth:  minDataSize,
		dataHeight: minDataSize,
		data:       make([]uint32, minDataSize*minDataSize),
	}
	if o.width > 0 || o.height > 0 {
		b.SetSize(o.width, o.height)
	}
	return b
}

// NewRGBABufferFromData wraps existing pixel storage of dw×dh pixels whose
// visible part is w×h. The slice is used without copying.
func NewRGBABufferFromData(w, h, dw, dh int, data []uint32, opts ...BufferOption) *RGBABuffer {
	o := applyBufferOptions(opts)
	b := &RGBABuffer{
		bufferCore: newBufferCore(o.registry),
		dataWidth:  dw,
		dataHeight: dh,
		data:       data,
	}
	b.width = min(max(w, 0), dw)
	b.height = min(max(h, 0), dh)
	return b
}

// allocSize returns the smallest power of two ≥ n and ≥ minDataSize.
func allocSize(n int) int {
	d := minDataSize
	for d < n {
		d *= 2
	}
	return d
}

// SetSize implements Buffer. Pixel contents are discarded whenever the
// allocation changes. Pixels outside the previous logical extent are
// always zero, so shrinking and growing again loses what was cut off.
func (b *RGBABuffer) SetSize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if b.width == w && b.height == h {
		return
	}
	b.NotifyModified()

	dw, dh := allocSize(w), allocSize(h)
	if dw != b.dataWidth || dh != b.dataHeight {
		b.data = make([]uint32, dw*dh)
		b.dataWidth = dw
		b.dataHeight = dh
	} else {
		b.zeroOutside(b.width, b.height, w, h)
	}
	b.width = w
	b.height = h
}

// zeroOutside clears the part of the w×h area that lies outside the old
// oldW×oldH extent.
func (b *RGBABuffer) zeroOutside(oldW, oldH, w, h int) {
	for y := 0; y < h; y++ {
		from := oldW
		if y >= oldH {
			from = 0
		}
		if from >= w {
			continue
		}
		clear(b.data[y*b.dataWidth+from : y*b.dataWidth+w])
	}
}

// Painter implements Buffer.
func (b *RGBABuffer) Painter() *Painter {
	p := newPainter(b, b)
	p.ClipTo(Rect(0, 0, b.width, b.height))
	return p
}

// Render implements Buffer. If the renderer has no native path for this
// buffer the pixels are blitted.
func (b *RGBABuffer) Render(r *Renderer, x, y int) {
	if r.RenderBuffer(b, x, y) {
		return
	}
	r.BlitRGBAData(x, y, b.data, b.width, b.height, b.dataWidth)
}

// DrawOnto implements Buffer. The extent is clipped to what remains of
// this buffer from (xo, yo).
func (b *RGBABuffer) DrawOnto(p *Painter, xo, yo, x, y, w, h int) {
	if xo < 0 || yo < 0 {
		return
	}
	w = min(w, b.width-xo)
	h = min(h, b.height-yo)
	if w <= 0 || h <= 0 {
		return
	}
	p.DrawRGBAData(b.data[yo*b.dataWidth+xo:], x, y, w, h, b.dataWidth)
}

// Destroy implements Buffer.
func (b *RGBABuffer) Destroy() {
	b.destroyContexts()
	b.data = nil
	b.width, b.height = 0, 0
}

// Internals exposes the allocation for drivers and loaders. Writers must
// call NotifyModified afterwards.
func (b *RGBABuffer) Internals() (dataWidth, dataHeight int, data []uint32) {
	return b.dataWidth, b.dataHeight, b.data
}

// Pixel returns the pixel at (x, y), or 0 outside the logical size.
func (b *RGBABuffer) Pixel(x, y int) uint32 {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return 0
	}
	return b.data[y*b.dataWidth+x]
}

// Row returns the visible pixels of row y, or nil when y is out of range.
func (b *RGBABuffer) Row(y int) []uint32 {
	if y < 0 || y >= b.height {
		return nil
	}
	off := y * b.dataWidth
	return b.data[off : off+b.width]
}
