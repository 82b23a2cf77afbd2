package ywin

// blitCall records one BlitRGBAData call.
type blitCall struct {
	x, y, w, h, stride int
	first              uint32
}

// fillCall records one DrawFilledRectangle call.
type fillCall struct {
	color      uint32
	x, y, w, h int
}

// nativeCall records one RenderBuffer call.
type nativeCall struct {
	id                 uint32
	x, y, xo, yo, w, h int
}

// recordingBackend is a RendererBackend that remembers what it was asked
// to do.
type recordingBackend struct {
	blits     []blitCall
	fills     []fillCall
	completed int
	destroyed bool
}

func (b *recordingBackend) BlitRGBAData(x, y int, data []uint32, w, h, stride int) {
	var first uint32
	if len(data) > 0 {
		first = data[0]
	}
	b.blits = append(b.blits, blitCall{x, y, w, h, stride, first})
}

func (b *recordingBackend) DrawFilledRectangle(color uint32, x, y, w, h int) {
	b.fills = append(b.fills, fillCall{color, x, y, w, h})
}

func (b *recordingBackend) Complete() { b.completed++ }
func (b *recordingBackend) Destroy()  { b.destroyed = true }

// nativeBackend adds a native buffer path that accepts or declines.
type nativeBackend struct {
	recordingBackend
	accept bool
	calls  []nativeCall
}

func (b *nativeBackend) RenderBuffer(buf Buffer, x, y, xo, yo, w, h int) bool {
	b.calls = append(b.calls, nativeCall{buf.ID(), x, y, xo, yo, w, h})
	return b.accept
}

// testContext is a BufferContext that counts callbacks.
type testContext struct {
	id        uint32
	modified  int
	destroyed int
}

func (c *testContext) ContextID() uint32 { return c.id }
func (c *testContext) Modified()         { c.modified++ }
func (c *testContext) Destroy()          { c.destroyed++ }

// newTestBuffer returns a w×h buffer cleared to color.
func newTestBuffer(w, h int, color uint32) *RGBABuffer {
	b := NewRGBABuffer(WithRegistry(NewRegistry()), WithSize(w, h))
	p := b.Painter()
	p.SetFillColor(color)
	p.ClearRectangle(0, 0, w, h)
	return b
}
