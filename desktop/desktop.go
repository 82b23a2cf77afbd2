package desktop

import (
	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/zorder"
)

// DefaultBackground is the desktop colour when none is configured.
const DefaultBackground uint32 = 0xFF404080

// Option configures a Desktop.
type Option func(*Desktop)

// WithBackground sets the background colour.
func WithBackground(argb uint32) Option {
	return func(d *Desktop) { d.background = argb }
}

// WithVersionText draws b in the bottom right corner, under every window.
func WithVersionText(b ywin.Buffer) Option {
	return func(d *Desktop) { d.version = b }
}

// Desktop is the root of the window tree. Windows are painted bottom-up
// over a solid background.
type Desktop struct {
	width, height int
	background    uint32
	version       ywin.Buffer
	windows       *zorder.Order[uint32, *Window]

	invalidate func(ywin.Rectangle)
}

// New creates an empty desktop of the given size.
func New(width, height int, opts ...Option) *Desktop {
	d := &Desktop{
		width:      max(width, 0),
		height:     max(height, 0),
		background: DefaultBackground,
		windows:    zorder.New[uint32, *Window](),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Size returns the desktop size.
func (d *Desktop) Size() (w, h int) { return d.width, d.height }

// Background returns the background colour.
func (d *Desktop) Background() uint32 { return d.background }

// SetBackground changes the background colour and invalidates the desktop.
func (d *Desktop) SetBackground(argb uint32) {
	if d.background == argb {
		return
	}
	d.background = argb
	d.Invalidate(ywin.Rect(0, 0, d.width, d.height))
}

// OnInvalidate registers fn to receive every invalidated screen
// rectangle. The Screen installs itself here.
func (d *Desktop) OnInvalidate(fn func(ywin.Rectangle)) {
	d.invalidate = fn
}

// Invalidate reports that r, in desktop coordinates, must be redrawn.
func (d *Desktop) Invalidate(r ywin.Rectangle) {
	if d.invalidate != nil && !r.Empty() {
		d.invalidate(r)
	}
}

// Len returns the number of top-level windows.
func (d *Desktop) Len() int { return d.windows.Len() }

// Add puts w on top of every other window.
func (d *Desktop) Add(w *Window) {
	if w == nil {
		return
	}
	if w.desktop != nil && w.desktop != d {
		w.desktop.Remove(w)
	}
	w.desktop = d
	d.windows.Add(w.ID(), w)
	d.Invalidate(w.rect)
}

// Remove takes w off the desktop. It reports whether w was present.
func (d *Desktop) Remove(w *Window) bool {
	if w == nil || !d.windows.Remove(w.ID()) {
		return false
	}
	w.desktop = nil
	d.Invalidate(w.rect)
	return true
}

// Raise moves w to the top. It is a no-op when w is already there.
func (d *Desktop) Raise(w *Window) bool {
	if w == nil || !d.windows.Raise(w.ID()) {
		return false
	}
	d.Invalidate(w.rect)
	return true
}

// Lower moves w to the bottom.
func (d *Desktop) Lower(w *Window) bool {
	if w == nil || !d.windows.Lower(w.ID()) {
		return false
	}
	d.Invalidate(w.rect)
	return true
}

// Cycle rotates the stacking order. A direction of 1 sends the top window
// to the bottom; anything else brings the bottom window to the top. It
// returns the new top window.
func (d *Desktop) Cycle(direction int) *Window {
	var moved *Window
	var ok bool
	if direction == 1 {
		_, moved, ok = d.windows.Top()
	} else {
		_, moved, ok = d.windows.Bottom()
	}
	if !ok {
		return nil
	}
	d.windows.Cycle(direction == 1)
	d.Invalidate(moved.rect)
	return d.Top()
}

// Top returns the topmost window, or nil.
func (d *Desktop) Top() *Window {
	_, w, _ := d.windows.Top()
	return w
}

// Bottom returns the lowest window, or nil.
func (d *Desktop) Bottom() *Window {
	_, w, _ := d.windows.Bottom()
	return w
}

// Window returns the top-level window with the given ID.
func (d *Desktop) Window(id uint32) (*Window, bool) {
	return d.windows.Get(id)
}

// WindowAt returns the topmost window containing (x, y), or nil.
func (d *Desktop) WindowAt(x, y int) *Window {
	for _, w := range d.windows.TopDown() {
		if w.Contains(x, y) {
			return w
		}
	}
	return nil
}

// Windows returns the windows from bottom to top.
func (d *Desktop) Windows() []*Window {
	ws := make([]*Window, 0, d.windows.Len())
	for _, w := range d.windows.BottomUp() {
		ws = append(ws, w)
	}
	return ws
}

// Resize changes the desktop size. Windows hanging off the right or
// bottom edge are pushed back on screen, shrinking those larger than the
// desktop.
func (d *Desktop) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == d.width && height == d.height {
		return
	}
	d.width, d.height = width, height
	for _, w := range d.windows.BottomUp() {
		r := w.rect
		r.W = min(r.W, width)
		r.H = min(r.H, height)
		if r.X+r.W > width {
			r.X = width - r.W
		}
		if r.Y+r.H > height {
			r.Y = height - r.H
		}
		w.Move(r.X, r.Y)
		w.Resize(r.W, r.H)
	}
	d.Invalidate(ywin.Rect(0, 0, width, height))
}

// Render draws the background, the version text and every window that
// intersects the renderer's region.
func (d *Desktop) Render(r *ywin.Renderer) {
	r.DrawFilledRectangle(d.background, 0, 0, d.width, d.height)

	if d.version != nil {
		vw, vh := d.version.Size()
		d.version.Render(r, d.width-vw, d.height-vh)
	}

	for _, w := range d.windows.BottomUp() {
		if r.Enter(w.rect, w.rect.X, w.rect.Y) {
			w.Render(r)
			r.Leave()
		}
	}
}
