package ywin

import "image"

// Rectangle is an axis-aligned integer rectangle. W and H are never
// negative for rectangles produced by this package; a zero area rectangle
// is the empty sentinel.
type Rectangle struct {
	X, Y, W, H int
}

// Rect is shorthand for Rectangle{x, y, w, h}.
func Rect(x, y, w, h int) Rectangle {
	return Rectangle{X: x, Y: y, W: w, H: h}
}

// Empty reports whether r covers no pixels.
func (r Rectangle) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Area returns W*H, or 0 for empty rectangles.
func (r Rectangle) Area() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Intersect returns the overlap of r and s. When they are disjoint (or
// either is empty) it returns the zero Rectangle and false.
func (r Rectangle) Intersect(s Rectangle) (Rectangle, bool) {
	if r.Empty() || s.Empty() {
		return Rectangle{}, false
	}
	x1 := max(r.X, s.X)
	y1 := max(r.Y, s.Y)
	x2 := min(r.X+r.W, s.X+s.W)
	y2 := min(r.Y+r.H, s.Y+s.H)
	if x2 <= x1 || y2 <= y1 {
		return Rectangle{}, false
	}
	return Rectangle{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, true
}

// Union returns the smallest rectangle containing both r and s. Empty
// operands are ignored.
func (r Rectangle) Union(s Rectangle) Rectangle {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x1 := min(r.X, s.X)
	y1 := min(r.Y, s.Y)
	x2 := max(r.X+r.W, s.X+s.W)
	y2 := max(r.Y+r.H, s.Y+s.H)
	return Rectangle{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Contains reports whether the pixel (x, y) lies inside r.
func (r Rectangle) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Translate returns r moved by (dx, dy).
func (r Rectangle) Translate(dx, dy int) Rectangle {
	r.X += dx
	r.Y += dy
	return r
}

// Image converts r to an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) Rectangle {
	r = r.Canon()
	return Rectangle{X: r.Min.X, Y: r.Min.Y, W: r.Dx(), H: r.Dy()}
}
