package desktop

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/damage"
)

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithDesktopOptions passes opts to the desktop the screen creates.
func WithDesktopOptions(opts ...Option) ScreenOption {
	return func(s *Screen) { s.desktopOpts = append(s.desktopOpts, opts...) }
}

// WithPointer replaces the default pointer image.
func WithPointer(b ywin.Buffer) ScreenOption {
	return func(s *Screen) { s.pointer = b }
}

// WithoutPointer hides the software pointer.
func WithoutPointer() ScreenOption {
	return func(s *Screen) { s.pointerHidden = true }
}

// Screen drives a video driver from a desktop. Dirty areas are tracked in
// a tile bitmap; Update repaints them.
type Screen struct {
	mu      sync.Mutex
	driver  ywin.VideoDriver
	desktop *Desktop
	tiles   atomic.Pointer[damage.Tiles]

	desktopOpts   []Option
	pointer       ywin.Buffer
	pointerHidden bool
	pointerX      int
	pointerY      int
	frames        int
}

// NewScreen creates a screen filling the driver's pixel dimensions. The
// whole screen starts dirty.
func NewScreen(driver ywin.VideoDriver, opts ...ScreenOption) *Screen {
	s := &Screen{driver: driver}
	for _, opt := range opts {
		opt(s)
	}
	if s.pointer == nil {
		s.pointer = DefaultPointer()
	}
	w, h := driver.PixelDimensions()
	s.desktop = New(w, h, s.desktopOpts...)
	s.desktop.OnInvalidate(s.Invalidate)
	if t := damage.NewScreenTiles(w, h); t != nil {
		t.MarkAll()
		s.tiles.Store(t)
	}
	s.syncPointer()
	return s
}

// Desktop returns the screen's desktop. Use Do to change it while another
// goroutine may be calling Update.
func (s *Screen) Desktop() *Desktop { return s.desktop }

// Do runs fn with exclusive access to the desktop.
func (s *Screen) Do(fn func(d *Desktop)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.desktop)
}

// Invalidate marks r for the next update. It is safe to call from any
// goroutine.
func (s *Screen) Invalidate(r ywin.Rectangle) {
	if t := s.tiles.Load(); t != nil {
		t.MarkRect(r)
	}
}

// Dirty reports whether an update is pending.
func (s *Screen) Dirty() bool {
	t := s.tiles.Load()
	return t != nil && !t.Empty()
}

// Frames returns the number of updates that drew something.
func (s *Screen) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Update repaints every dirty area. It returns false when nothing was
// dirty.
func (s *Screen) Update() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tiles.Load()
	if t == nil {
		return false
	}
	rects := t.Take()
	if len(rects) == 0 {
		return false
	}

	s.driver.BeginUpdates()
	for _, rect := range rects {
		r := s.driver.Renderer(rect)
		s.desktop.Render(r)
		if v, _ := r.Option(ywin.OptionHardwarePointer); v != "yes" {
			s.renderPointer(r)
		}
		r.Complete()
		r.Destroy()
	}
	s.driver.EndUpdates()
	s.frames++

	ywin.Logger().Debug("desktop: screen updated", "rects", len(rects), "frame", s.frames)
	return true
}

func (s *Screen) pointerRect() ywin.Rectangle {
	w, h := s.pointer.Size()
	return ywin.Rect(s.pointerX, s.pointerY, w, h)
}

func (s *Screen) renderPointer(r *ywin.Renderer) {
	if s.pointerHidden {
		return
	}
	if r.Enter(s.pointerRect(), 0, 0) {
		s.pointer.Render(r, s.pointerX, s.pointerY)
		r.Leave()
	}
}

// syncPointer tells a driver that shows its own pointer where it is.
func (s *Screen) syncPointer() {
	if pd, ok := s.driver.(ywin.PointerDriver); ok {
		pd.SetPointer(s.pointerX, s.pointerY, !s.pointerHidden)
	}
}

// Pointer returns the pointer position.
func (s *Screen) Pointer() (x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointerX, s.pointerY
}

// MovePointer moves the pointer to (x, y), constrained to the screen, and
// invalidates the old and new pointer areas.
func (s *Screen) MovePointer(x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.desktop.Size()
	x = min(max(x, 0), max(w-1, 0))
	y = min(max(y, 0), max(h-1, 0))
	if x == s.pointerX && y == s.pointerY {
		return
	}
	s.Invalidate(s.pointerRect())
	s.pointerX, s.pointerY = x, y
	s.Invalidate(s.pointerRect())
	s.syncPointer()
}

// Resize adapts the screen and desktop to a new driver size. The whole
// screen becomes dirty.
func (s *Screen) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tiles.Load()
	if t == nil {
		t = damage.NewScreenTiles(width, height)
		if t != nil {
			t.MarkAll()
		}
	} else {
		t = t.Resize(width, height)
	}
	s.tiles.Store(t)
	s.desktop.Resize(width, height)
	s.pointerX = min(s.pointerX, max(width-1, 0))
	s.pointerY = min(s.pointerY, max(height-1, 0))
	s.syncPointer()
}
