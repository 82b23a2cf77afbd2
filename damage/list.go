package damage

import "github.com/gogpu/ywin"

// List is an unordered set of damage rectangles.
//
// The zero value is an empty list ready to use. A List is not safe for
// concurrent use.
type List struct {
	rects []ywin.Rectangle
}

// Add records r. Empty rectangles are ignored.
func (l *List) Add(r ywin.Rectangle) {
	if r.Empty() {
		return
	}
	l.rects = append(l.rects, r)
}

// Len returns the number of rectangles currently held.
func (l *List) Len() int {
	return len(l.rects)
}

// Empty reports whether nothing is damaged.
func (l *List) Empty() bool {
	return len(l.rects) == 0
}

// Rects returns the held rectangles. The slice is owned by the list.
func (l *List) Rects() []ywin.Rectangle {
	return l.rects
}

// Bounds returns the union of every rectangle.
func (l *List) Bounds() ywin.Rectangle {
	var u ywin.Rectangle
	for _, r := range l.rects {
		u = u.Union(r)
	}
	return u
}

// Reset empties the list, keeping its storage.
func (l *List) Reset() {
	l.rects = l.rects[:0]
}

// Coalesce merges overlapping or touching rectangles in place.
func (l *List) Coalesce() {
	l.rects = Coalesce(l.rects)
}

// Take coalesces the list, returns its rectangles and empties it. The
// returned slice is owned by the caller.
func (l *List) Take() []ywin.Rectangle {
	rects := Coalesce(l.rects)
	l.rects = nil
	return rects
}

// Coalesce merges every pair of overlapping or edge-adjacent rectangles,
// and every pair whose union is no larger than their combined area,
// until no such pair remains. It reuses the storage of rects and drops
// empty entries.
func Coalesce(rects []ywin.Rectangle) []ywin.Rectangle {
	out := rects[:0]
	for _, r := range rects {
		if !r.Empty() {
			out = append(out, r)
		}
	}

	for merged := true; merged; {
		merged = false
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				if !Mergeable(out[i], out[j]) {
					continue
				}
				out[i] = out[i].Union(out[j])
				out[j] = out[len(out)-1]
				out = out[:len(out)-1]
				j = i
				merged = true
			}
		}
	}
	return out
}

// Mergeable reports whether a and b belong in one repaint rectangle: they
// overlap, share part of an edge, or their union wastes no area.
func Mergeable(a, b ywin.Rectangle) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	if _, ok := a.Intersect(b); ok {
		return true
	}
	if a.Union(b).Area() <= a.Area()+b.Area() {
		return true
	}
	return touches(a, b)
}

// touches reports whether a and b meet along a vertical or horizontal
// edge of positive length. Corner contact does not count.
func touches(a, b ywin.Rectangle) bool {
	spanX := a.X < b.X+b.W && b.X < a.X+a.W
	spanY := a.Y < b.Y+b.H && b.Y < a.Y+a.H
	edgeX := a.X+a.W == b.X || b.X+b.W == a.X
	edgeY := a.Y+a.H == b.Y || b.Y+b.H == a.Y
	return (edgeX && spanY) || (edgeY && spanX)
}
