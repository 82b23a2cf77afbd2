package ywin

// RenderRegion is one frame of a Renderer's region stack. Clip and the
// translation are absolute device coordinates.
type RenderRegion struct {
	Clip                   Rectangle
	TranslateX, TranslateY int
}

// RendererBackend is the device side of a Renderer: one of the simple,
// software or hardware variants in the render package. Coordinates passed
// to it are already clipped device coordinates.
type RendererBackend interface {
	BlitRGBAData(x, y int, data []uint32, w, h, stride int)
	DrawFilledRectangle(color uint32, x, y, w, h int)

	// Complete flushes pending output to the video driver.
	Complete()

	// Destroy releases backend resources.
	Destroy()
}

// BufferRenderer is implemented by backends with a native path for some
// buffers. (x, y) is the buffer origin in device space and (xo, yo, w, h)
// the visible part relative to it. Returning false declines the buffer.
type BufferRenderer interface {
	RenderBuffer(b Buffer, x, y, xo, yo, w, h int) bool
}

// Renderer composites buffers onto a device through a stack of clip and
// translation regions.
type Renderer struct {
	backend RendererBackend
	regions []RenderRegion
	options map[string]string
}

// NewRenderer wraps backend and enters rect with no translation.
func NewRenderer(backend RendererBackend, rect Rectangle) *Renderer {
	r := &Renderer{
		backend: backend,
		regions: make([]RenderRegion, 0, 8),
		options: make(map[string]string),
	}
	r.Enter(rect, 0, 0)
	return r
}

// Backend returns the device side of the renderer.
func (r *Renderer) Backend() RendererBackend {
	return r.backend
}

func (r *Renderer) top() *RenderRegion {
	if len(r.regions) == 0 {
		return nil
	}
	return &r.regions[len(r.regions)-1]
}

// Enter pushes a region for rect, offset by the parent translation and
// clipped to the parent clip; (dx, dy) is added to the translation. It
// returns false and pushes nothing when the clipped region is empty. The
// first region is pushed as given.
func (r *Renderer) Enter(rect Rectangle, dx, dy int) bool {
	reg := RenderRegion{Clip: rect, TranslateX: dx, TranslateY: dy}
	if prev := r.top(); prev != nil {
		reg.Clip = reg.Clip.Translate(prev.TranslateX, prev.TranslateY)
		reg.TranslateX += prev.TranslateX
		reg.TranslateY += prev.TranslateY
		c, ok := reg.Clip.Intersect(prev.Clip)
		if !ok {
			return false
		}
		reg.Clip = c
	}
	r.regions = append(r.regions, reg)
	return true
}

// Leave pops the top region. It is a no-op on an empty stack.
func (r *Renderer) Leave() {
	if r == nil || len(r.regions) == 0 {
		return
	}
	r.regions = r.regions[:len(r.regions)-1]
}

// Region returns the top region.
func (r *Renderer) Region() (RenderRegion, bool) {
	if top := r.top(); top != nil {
		return *top, true
	}
	return RenderRegion{}, false
}

// Depth returns the number of regions on the stack.
func (r *Renderer) Depth() int {
	return len(r.regions)
}

// footprint translates a local rectangle by the top region and clips it.
// ok is false when nothing is visible.
func (r *Renderer) footprint(local Rectangle) (full, visible Rectangle, ok bool) {
	full, visible = local, local
	if top := r.top(); top != nil {
		full = full.Translate(top.TranslateX, top.TranslateY)
		visible, ok = full.Intersect(top.Clip)
		return full, visible, ok
	}
	return full, full, !full.Empty()
}

// RenderBuffer offers b to the backend's native path. It returns true when
// the buffer was handled or lies entirely outside the region, false when
// the caller must fall back to blitting pixels.
func (r *Renderer) RenderBuffer(b Buffer, x, y int) bool {
	if r == nil || b == nil {
		return false
	}
	w, h := b.Size()
	full, visible, ok := r.footprint(Rect(x, y, w, h))
	if !ok {
		return true
	}
	native, ok := r.backend.(BufferRenderer)
	if !ok {
		return false
	}
	return native.RenderBuffer(b, full.X, full.Y,
		visible.X-full.X, visible.Y-full.Y, visible.W, visible.H)
}

// BlitRGBAData composites w×h pixels at (x, y); row j starts at
// data[j*stride]. Only the part inside the current region is passed on.
func (r *Renderer) BlitRGBAData(x, y int, data []uint32, w, h, stride int) {
	if r == nil {
		return
	}
	full, visible, ok := r.footprint(Rect(x, y, w, h))
	if !ok {
		return
	}
	off := (visible.X - full.X) + stride*(visible.Y-full.Y)
	if off < 0 || off >= len(data) {
		return
	}
	r.backend.BlitRGBAData(visible.X, visible.Y, data[off:], visible.W, visible.H, stride)
}

// DrawFilledRectangle fills the part of the rectangle inside the current
// region.
func (r *Renderer) DrawFilledRectangle(color uint32, x, y, w, h int) {
	if r == nil {
		return
	}
	_, visible, ok := r.footprint(Rect(x, y, w, h))
	if !ok {
		return
	}
	r.backend.DrawFilledRectangle(color, visible.X, visible.Y, visible.W, visible.H)
}

// SetOption stores a driver hint. An empty value deletes the key.
func (r *Renderer) SetOption(key, value string) {
	if r == nil || key == "" {
		return
	}
	if value == "" {
		delete(r.options, key)
		return
	}
	if r.options == nil {
		r.options = make(map[string]string)
	}
	r.options[key] = value
}

// Option returns a driver hint.
func (r *Renderer) Option(key string) (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r.options[key]
	return v, ok
}

// Complete flushes the composited output to the device.
func (r *Renderer) Complete() {
	if r == nil {
		return
	}
	r.backend.Complete()
}

// Destroy releases the renderer and drops its options. Only the option
// accessors stay usable afterwards.
func (r *Renderer) Destroy() {
	if r == nil {
		return
	}
	r.regions = nil
	clear(r.options)
	r.backend.Destroy()
}
