package main

import (
	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/bufferio"
	"github.com/gogpu/ywin/desktop"
	"github.com/gogpu/ywin/text"
)

const (
	frameColor = 0xFFC0C0C0
	titleColor = 0xFF202060
	paperColor = 0xFFF0F0E8
)

// framed paints a window background with a one pixel border.
func framed(fill uint32) desktop.PaintFunc {
	return func(w *desktop.Window, p *ywin.Painter) {
		r := w.Rect()
		p.SetFillColor(fill)
		p.SetPenColor(frameColor)
		p.DrawRectangle(0, 0, r.W, r.H)
	}
}

func linesPaint(w *desktop.Window, p *ywin.Painter) {
	framed(0xFF102010)(w, p)
	r := w.Rect()
	for i := 0; i < 8; i++ {
		p.SetPenColor(0xFF00FF00 | uint32(i*32)<<16)
		p.DrawLine(2, 2+i*4, r.W-4, r.H-4-i*8)
	}
	p.SetPenColor(0x80FFFFFF)
	p.DrawHLine(2, r.H/2, r.W-4)
	p.DrawVLine(r.W/2, 2, r.H-4)
}

func textPaint(face *text.Face, lines ...string) desktop.PaintFunc {
	return func(w *desktop.Window, p *ywin.Painter) {
		framed(paperColor)(w, p)
		ascent, _, height := face.Metrics()
		p.SetPenColor(titleColor)
		for i, line := range lines {
			text.Draw(p, face, line, 4, 4+ascent+i*height)
		}
	}
}

func imagePaint(img *ywin.RGBABuffer) desktop.PaintFunc {
	return func(w *desktop.Window, p *ywin.Painter) {
		iw, ih := img.Size()
		p.DrawBuffer(img, 0, 0, iw, ih, 0, 0)
	}
}

// addDemoWindows fills the desktop with a few windows exercising the
// drawing primitives. A missing image is logged and skipped.
func addDemoWindows(d *desktop.Desktop, face *text.Face, imagePath string) {
	w, h := d.Size()

	box := desktop.NewWindow(ywin.Rect(w/16, h/12, w/3, h/3), framed(0xFF304070))
	inner := desktop.NewWindow(ywin.Rect(8, 8, w/6, h/8), framed(0xFF803030))
	box.SetChild(inner)
	d.Add(box)

	d.Add(desktop.NewWindow(ywin.Rect(w/2, h/10, w/3, h/3), linesPaint))

	_, _, lh := face.Metrics()
	lines := []string{"Hello from ywin", "Déjà vu, naïve café", "Tab cycles windows"}
	tw := 8
	for _, l := range lines {
		tw = max(tw, face.Measure(l)+8)
	}
	d.Add(desktop.NewWindow(ywin.Rect(w/5, h/2, tw, len(lines)*lh+8), textPaint(face, lines...)))

	if imagePath == "" {
		return
	}
	img, err := bufferio.Load(imagePath, 0, 0)
	if err != nil {
		ywin.Logger().Warn("yserver: demo image", "path", imagePath, "err", err)
		return
	}
	iw, ih := img.Size()
	d.Add(desktop.NewWindow(ywin.Rect(w-iw-8, h-ih-8, iw, ih), imagePaint(img)))
}
