package desktop

import (
	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/text"
)

// NewVersionText renders label with a soft shadow into a new buffer sized
// to fit it plus a four pixel margin on each side.
func NewVersionText(face *text.Face, label string, opts ...ywin.BufferOption) *ywin.RGBABuffer {
	ascent, descent, _ := face.Metrics()
	b := ywin.NewRGBABuffer(opts...)
	b.SetSize(face.Measure(label)+8, ascent+descent+8)

	p := b.Painter()
	p.SetPenColor(0x60000000)
	text.Draw(p, face, label, 5, ascent+5)
	p.SetPenColor(0x30000000)
	for _, off := range [][2]int{{6, 5}, {4, 5}, {5, 6}, {5, 4}} {
		text.Draw(p, face, label, off[0], ascent+off[1])
	}
	p.SetPenColor(0xFFFFFFFF)
	text.Draw(p, face, label, 4, ascent+4)
	return b
}
