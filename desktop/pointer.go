package desktop

import "github.com/gogpu/ywin"

// arrow is the built-in pointer image: X is outline, '.' is fill.
var arrow = []string{
	"X",
	"XX",
	"X.X",
	"X..X",
	"X...X",
	"X....X",
	"X.....X",
	"X......X",
	"X.......X",
	"X........X",
	"X.....XXXXX",
	"X..X..X",
	"X.X X..X",
	"XX  X..X",
	"X    X..X",
	"     X..X",
	"      XX",
}

// DefaultPointer returns a new buffer holding an arrow pointer whose hot
// spot is the top left pixel.
func DefaultPointer(opts ...ywin.BufferOption) *ywin.RGBABuffer {
	w := 0
	for _, row := range arrow {
		w = max(w, len(row))
	}
	h := len(arrow)
	data := make([]uint32, w*h)
	for y, row := range arrow {
		for x, c := range row {
			switch c {
			case 'X':
				data[y*w+x] = 0xFF000000
			case '.':
				data[y*w+x] = 0xFFFFFFFF
			}
		}
	}

	b := ywin.NewRGBABuffer(opts...)
	b.SetSize(w, h)
	b.Painter().DrawRGBAData(data, 0, 0, w, h, w)
	return b
}
