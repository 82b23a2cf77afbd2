package desktop

import (
	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/damage"
)

// Default window size used when NewWindow is given an empty rectangle.
const (
	DefaultWindowWidth  = 64
	DefaultWindowHeight = 48
)

// PaintFunc redraws part of a window. The painter is clipped to one
// damaged rectangle in window coordinates.
type PaintFunc func(w *Window, p *ywin.Painter)

// Window is a rectangular area of the desktop with its own pixels.
type Window struct {
	rect   ywin.Rectangle
	buffer *ywin.RGBABuffer
	damage damage.List
	paint  PaintFunc

	child   *Window
	parent  *Window
	desktop *Desktop
}

// DefaultGeometry cascades new windows across the screen by ID.
func DefaultGeometry(id uint32) ywin.Rectangle {
	return ywin.Rect(int(id%15)*24, int(id%10)*24, DefaultWindowWidth, DefaultWindowHeight)
}

// NewWindow creates a window at rect, relative to its container. An empty
// rect selects DefaultGeometry. The whole window starts damaged.
func NewWindow(rect ywin.Rectangle, paint PaintFunc, opts ...ywin.BufferOption) *Window {
	w := &Window{
		buffer: ywin.NewRGBABuffer(opts...),
		paint:  paint,
	}
	if rect.Empty() {
		rect = DefaultGeometry(w.buffer.ID())
	}
	w.rect = rect
	w.buffer.SetSize(rect.W, rect.H)
	w.damage.Add(w.bounds())
	return w
}

// ID returns the window's identifier, which is its buffer's ID.
func (w *Window) ID() uint32 { return w.buffer.ID() }

// Rect returns the window's rectangle in container coordinates.
func (w *Window) Rect() ywin.Rectangle { return w.rect }

// Buffer returns the window's pixels.
func (w *Window) Buffer() *ywin.RGBABuffer { return w.buffer }

// Child returns the embedded child window, or nil.
func (w *Window) Child() *Window { return w.child }

// Parent returns the containing window, or nil for top-level windows.
func (w *Window) Parent() *Window { return w.parent }

// Desktop returns the desktop the window, or its top-level ancestor, is
// on.
func (w *Window) Desktop() *Desktop {
	for w.parent != nil {
		w = w.parent
	}
	return w.desktop
}

// PendingDamage returns the damaged rectangles not yet painted.
func (w *Window) PendingDamage() []ywin.Rectangle {
	return w.damage.Rects()
}

func (w *Window) bounds() ywin.Rectangle {
	return ywin.Rect(0, 0, w.rect.W, w.rect.H)
}

// SetPaint replaces the paint callback and repaints the window.
func (w *Window) SetPaint(paint PaintFunc) {
	w.paint = paint
	w.Repaint(ywin.Rectangle{})
}

// SetChild embeds c, replacing any previous child. The child's rectangle
// is relative to w. A nil c detaches the current child.
func (w *Window) SetChild(c *Window) {
	if old := w.child; old != nil {
		w.child = nil
		old.parent = nil
		w.rerender(old.rect)
	}
	if c == nil {
		return
	}
	c.parent = w
	w.child = c
	c.Repaint(ywin.Rectangle{})
}

// Repaint marks r, in window coordinates, for repainting. An empty r
// marks the whole window.
func (w *Window) Repaint(r ywin.Rectangle) {
	if r.Empty() {
		r = w.bounds()
	}
	r, ok := r.Intersect(w.bounds())
	if !ok {
		return
	}
	w.damage.Add(r)
	w.rerender(r)
}

// rerender tells the screen that r, in window coordinates, changed
// without repainting the buffer.
func (w *Window) rerender(r ywin.Rectangle) {
	r = r.Translate(w.rect.X, w.rect.Y)
	switch {
	case w.parent != nil:
		w.parent.rerender(r)
	case w.desktop != nil:
		w.desktop.Invalidate(r)
	}
}

// Move places the window at (x, y) in container coordinates.
func (w *Window) Move(x, y int) {
	if w.rect.X == x && w.rect.Y == y {
		return
	}
	w.rerender(w.bounds())
	w.rect.X, w.rect.Y = x, y
	w.rerender(w.bounds())
}

// Resize changes the window size and repaints it entirely.
func (w *Window) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if w.rect.W == width && w.rect.H == height {
		return
	}
	w.rerender(w.bounds())
	w.rect.W, w.rect.H = width, height
	w.buffer.SetSize(width, height)
	w.damage.Reset()
	w.Repaint(ywin.Rectangle{})
}

// Contains reports whether the container point (x, y) is inside w.
func (w *Window) Contains(x, y int) bool {
	return w.rect.Contains(x, y)
}

// Paint runs the paint callback over the pending damage.
func (w *Window) Paint() {
	rects := w.damage.Take()
	if w.paint == nil {
		return
	}
	for _, r := range rects {
		p := w.buffer.Painter()
		p.ClipTo(r)
		w.paint(w, p)
	}
}

// Render paints pending damage and composites the window, and then its
// child, into r. The renderer region must already be translated to the
// window origin.
func (w *Window) Render(r *ywin.Renderer) {
	w.Paint()
	w.buffer.Render(r, 0, 0)

	if c := w.child; c != nil {
		if r.Enter(c.rect, c.rect.X, c.rect.Y) {
			c.Render(r)
			r.Leave()
		}
	}
}

// Destroy detaches the window from its container and frees its buffer.
func (w *Window) Destroy() {
	switch {
	case w.parent != nil:
		w.parent.SetChild(nil)
	case w.desktop != nil:
		w.desktop.Remove(w)
	}
	if w.child != nil {
		w.child.Destroy()
	}
	w.buffer.Destroy()
}
