package ywin

import (
	"errors"
	"testing"

	"github.com/gogpu/ywin/blend"
)

func TestPainter_Defaults(t *testing.T) {
	b := NewRGBABuffer(WithRegistry(NewRegistry()), WithSize(10, 10))
	p := b.Painter()

	if p.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", p.Depth())
	}
	if p.BlendMode() != blend.BlendSourceOver {
		t.Errorf("BlendMode() = %v, want source-over", p.BlendMode())
	}
	if p.PenColor() != 0xFF000000 {
		t.Errorf("PenColor() = %#08x, want opaque black", p.PenColor())
	}
	if p.FillColor() != 0 {
		t.Errorf("FillColor() = %#08x, want 0", p.FillColor())
	}
	st := p.State()
	if st.ScaleX != 1 || st.ScaleY != 1 || st.TranslateX != 0 || st.TranslateY != 0 {
		t.Errorf("transform = %+v, want identity", st)
	}
	if p.Buffer() != Buffer(b) {
		t.Error("Buffer() does not return the owning buffer")
	}
}

func TestPainter_SaveRestore(t *testing.T) {
	p := NewRGBABuffer(WithRegistry(NewRegistry()), WithSize(10, 10)).Painter()
	before := p.State()

	p.Save()
	p.SetPenColor(0xFFFF0000)
	p.SetFillColor(0xFF00FF00)
	p.SetBlendMode(blend.BlendXor)
	p.Translate(3, 4)
	p.Scale(2, 2)
	p.ClipTo(Rect(1, 1, 2, 2))
	if p.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", p.Depth())
	}

	if err := p.Restore(); err != nil {
		t.Fatalf("Restore() = %v", err)
	}
	if got := p.State(); got != before {
		t.Errorf("state after Save/Restore = %+v, want %+v", got, before)
	}
}

func TestPainter_RestoreUnderflow(t *testing.T) {
	p := NewRGBABuffer(WithRegistry(NewRegistry())).Painter()
	p.SetPenColor(0xFF123456)

	err := p.Restore()
	if !errors.Is(err, ErrStateUnderflow) {
		t.Fatalf("Restore() on base state = %v, want ErrStateUnderflow", err)
	}
	if p.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", p.Depth())
	}
	if p.PenColor() != 0xFF123456 {
		t.Error("underflow altered the base state")
	}
}

// TestPainter_TransformedHLine draws a local ten pixel line under scale 2
// and a translation of (5, 5); it lands at device (5, 5) and is 20 wide.
func TestPainter_TransformedHLine(t *testing.T) {
	b := newTestBuffer(64, 64, 0)
	p := b.Painter()
	p.Translate(5, 5)
	p.Scale(2, 2)
	p.SetPenColor(0xFFFFFFFF)
	p.DrawHLine(0, 0, 10)

	for x := 0; x < 40; x++ {
		want := uint32(0)
		if x >= 5 && x < 25 {
			want = 0xFFFFFFFF
		}
		if got := b.Pixel(x, 5); got != want {
			t.Errorf("Pixel(%d, 5) = %#08x, want %#08x", x, got, want)
		}
	}
	if b.Pixel(5, 4) != 0 || b.Pixel(5, 6) != 0 {
		t.Error("line is more than one pixel tall")
	}
}

func TestPainter_TranslateUsesScale(t *testing.T) {
	p := NewRGBABuffer(WithRegistry(NewRegistry())).Painter()
	p.Scale(2, 3)
	p.Translate(5, 5)
	st := p.State()
	if st.TranslateX != 10 || st.TranslateY != 15 {
		t.Errorf("translation = (%v, %v), want (10, 15)", st.TranslateX, st.TranslateY)
	}
}

func TestPainter_ClipTo(t *testing.T) {
	tests := []struct {
		name  string
		clips []Rectangle
		want  Rectangle
	}{
		{"buffer bounds only", nil, Rect(0, 0, 50, 50)},
		{"narrowed", []Rectangle{Rect(10, 10, 20, 20)}, Rect(10, 10, 20, 20)},
		{"partly outside", []Rectangle{Rect(40, -5, 20, 20)}, Rect(40, 0, 10, 15)},
		{"twice", []Rectangle{Rect(0, 0, 30, 30), Rect(20, 20, 30, 30)}, Rect(20, 20, 10, 10)},
		{"disjoint keeps corner", []Rectangle{Rect(10, 10, 5, 5), Rect(30, 30, 5, 5)}, Rect(10, 10, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewRGBABuffer(WithRegistry(NewRegistry()), WithSize(50, 50)).Painter()
			for _, c := range tt.clips {
				p.ClipTo(c)
			}
			if got := p.State().Clip; got != tt.want {
				t.Errorf("clip = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPainter_ClipToTransformed(t *testing.T) {
	p := NewRGBABuffer(WithRegistry(NewRegistry()), WithSize(100, 100)).Painter()
	p.Translate(10, 20)
	p.Scale(2, 2)
	p.ClipTo(Rect(5, 5, 10, 10))
	if got := p.State().Clip; got != Rect(20, 30, 20, 20) {
		t.Errorf("clip = %v, want (20,30,20,20)", got)
	}
	local, ok := p.ClipRectangle()
	if !ok || local != Rect(5, 5, 10, 10) {
		t.Errorf("ClipRectangle() = %v, %v; want (5,5,10,10), true", local, ok)
	}
}

func TestPainter_Enter(t *testing.T) {
	b := newTestBuffer(40, 40, 0)
	p := b.Painter()
	p.Enter(Rect(10, 10, 5, 5))

	local, ok := p.ClipRectangle()
	if !ok || local != Rect(0, 0, 5, 5) {
		t.Errorf("ClipRectangle() after Enter = %v, %v; want (0,0,5,5), true", local, ok)
	}

	p.SetFillColor(0xFFFF0000)
	p.ClearRectangle(0, 0, 100, 100)
	if b.Pixel(10, 10) != 0xFFFF0000 || b.Pixel(14, 14) != 0xFFFF0000 {
		t.Error("child area not filled")
	}
	if b.Pixel(9, 10) != 0 || b.Pixel(15, 14) != 0 {
		t.Error("fill escaped the entered region")
	}
}

func TestPainter_FullyClipped(t *testing.T) {
	p := NewRGBABuffer(WithRegistry(NewRegistry()), WithSize(10, 10)).Painter()
	if p.FullyClipped() {
		t.Error("fresh painter reported fully clipped")
	}
	p.Save()
	p.ClipTo(Rect(20, 20, 5, 5))
	if !p.FullyClipped() {
		t.Error("disjoint clip not reported as fully clipped")
	}
	if err := p.Restore(); err != nil {
		t.Fatal(err)
	}
	if p.FullyClipped() {
		t.Error("Restore did not bring the clip back")
	}
}

func TestPainter_ClipCoordinates(t *testing.T) {
	p := NewRGBABuffer(WithRegistry(NewRegistry()), WithSize(10, 10)).Painter()

	got, ok := p.ClipCoordinates(Rect(5, 5, 10, 10))
	if !ok || got != Rect(5, 5, 5, 5) {
		t.Errorf("ClipCoordinates = %v, %v; want (5,5,5,5), true", got, ok)
	}
	got, ok = p.ClipCoordinates(Rect(50, 50, 1, 1))
	if !ok || !got.Empty() {
		t.Errorf("disjoint ClipCoordinates = %v, %v; want empty, true", got, ok)
	}

	unclipped := newPainter(nil, nil)
	if _, ok := unclipped.ClipRectangle(); ok {
		t.Error("painter without a clip reported one")
	}
	if got, ok := unclipped.ClipCoordinates(Rect(1, 2, 3, 4)); ok || got != Rect(1, 2, 3, 4) {
		t.Errorf("unclipped ClipCoordinates = %v, %v; want input, false", got, ok)
	}
}

func TestPainter_BlendModeApplies(t *testing.T) {
	b := newTestBuffer(4, 4, 0xFF0000FF)
	p := b.Painter()
	p.SetBlendMode(blend.BlendDestination)
	p.SetPenColor(0xFFFF0000)
	p.DrawHLine(0, 0, 4)
	if b.Pixel(0, 0) != 0xFF0000FF {
		t.Errorf("destination mode changed the pixel to %#08x", b.Pixel(0, 0))
	}

	p.SetBlendMode(blend.BlendClear)
	p.DrawHLine(0, 1, 4)
	if blend.Alpha(b.Pixel(0, 1)) != 0 {
		t.Errorf("clear mode left alpha %#02x", blend.Alpha(b.Pixel(0, 1)))
	}
}
