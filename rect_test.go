package ywin

import (
	"image"
	"testing"
)

func TestRectangle_Intersect(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Rectangle
		want   Rectangle
		wantOK bool
	}{
		{"overlap", Rect(0, 0, 10, 10), Rect(5, 5, 10, 10), Rect(5, 5, 5, 5), true},
		{"contained", Rect(0, 0, 100, 100), Rect(10, 20, 5, 6), Rect(10, 20, 5, 6), true},
		{"disjoint", Rect(0, 0, 10, 10), Rect(20, 20, 5, 5), Rectangle{}, false},
		{"touching edges", Rect(0, 0, 10, 10), Rect(10, 0, 10, 10), Rectangle{}, false},
		{"empty operand", Rect(0, 0, 0, 10), Rect(0, 0, 10, 10), Rectangle{}, false},
		{"negative origin", Rect(-5, -5, 10, 10), Rect(0, 0, 10, 10), Rect(0, 0, 5, 5), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Intersect(tt.b)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("%v.Intersect(%v) = %v, %v; want %v, %v", tt.a, tt.b, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRectangle_IntersectLaws(t *testing.T) {
	rects := []Rectangle{
		Rect(0, 0, 10, 10), Rect(5, 5, 10, 10), Rect(-3, 2, 7, 20),
		Rect(8, -4, 3, 30), Rect(100, 100, 1, 1), Rect(0, 0, 0, 0),
	}
	for _, a := range rects {
		if got, ok := a.Intersect(a); !a.Empty() && (got != a || !ok) {
			t.Errorf("%v.Intersect(self) = %v, %v", a, got, ok)
		}
		for _, b := range rects {
			ab, okAB := a.Intersect(b)
			ba, okBA := b.Intersect(a)
			if ab != ba || okAB != okBA {
				t.Errorf("Intersect not commutative for %v, %v: %v vs %v", a, b, ab, ba)
			}
			for _, c := range rects {
				left, _ := ab.Intersect(c)
				bc, _ := b.Intersect(c)
				right, _ := a.Intersect(bc)
				if left != right {
					t.Errorf("Intersect not associative for %v, %v, %v: %v vs %v", a, b, c, left, right)
				}
			}
		}
	}
}

func TestRectangle_Union(t *testing.T) {
	tests := []struct {
		a, b, want Rectangle
	}{
		{Rect(0, 0, 10, 10), Rect(5, 5, 10, 10), Rect(0, 0, 15, 15)},
		{Rect(0, 0, 10, 10), Rectangle{}, Rect(0, 0, 10, 10)},
		{Rectangle{}, Rect(3, 4, 5, 6), Rect(3, 4, 5, 6)},
		{Rect(-2, 0, 1, 1), Rect(2, 3, 1, 1), Rect(-2, 0, 5, 4)},
	}
	for _, tt := range tests {
		if got := tt.a.Union(tt.b); got != tt.want {
			t.Errorf("%v.Union(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRectangle_Helpers(t *testing.T) {
	r := Rect(2, 3, 4, 5)
	if r.Area() != 20 {
		t.Errorf("Area() = %d, want 20", r.Area())
	}
	if Rect(0, 0, -1, 5).Area() != 0 {
		t.Error("Area() of negative width should be 0")
	}
	if !r.Contains(2, 3) || !r.Contains(5, 7) || r.Contains(6, 3) || r.Contains(2, 8) {
		t.Error("Contains() boundary check failed")
	}
	if got := r.Translate(-2, 1); got != Rect(0, 4, 4, 5) {
		t.Errorf("Translate() = %v", got)
	}
	if got := r.Image(); got != image.Rect(2, 3, 6, 8) {
		t.Errorf("Image() = %v", got)
	}
	if got := FromImage(image.Rect(6, 8, 2, 3)); got != r {
		t.Errorf("FromImage() = %v, want %v", got, r)
	}
}
