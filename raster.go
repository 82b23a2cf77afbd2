package ywin

import "github.com/gogpu/ywin/blend"

// canvas is the raster back end a Painter dispatches to. Coordinates are
// already transformed into buffer space; each primitive clips against the
// painter's current clip itself.
type canvas interface {
	clearRectangle(p *Painter, x, y, w, h int)
	drawRectangle(p *Painter, x, y, w, h int)
	drawHLine(p *Painter, x, y, dx int)
	drawVLine(p *Painter, x, y, dy int)
	drawLine(p *Painter, x, y, dx, dy int)
	drawAlphamap(p *Painter, alpha []uint8, x, y, w, h, stride int)
	drawRGBAData(p *Painter, data []uint32, x, y, w, h, stride int)
}

// clip applies the painter clip and then the buffer extent to r.
func (b *RGBABuffer) clip(p *Painter, r Rectangle) (Rectangle, bool) {
	r, _ = p.ClipCoordinates(r)
	return r.Intersect(Rect(0, 0, b.width, b.height))
}

// span returns w pixels of row y starting at x.
func (b *RGBABuffer) span(x, y, w int) []uint32 {
	off := y*b.dataWidth + x
	return b.data[off : off+w]
}

func (b *RGBABuffer) clearRectangle(p *Painter, x, y, w, h int) {
	c, ok := b.clip(p, Rect(x, y, w, h))
	if !ok {
		return
	}
	fill := p.state().Fill
	for j := 0; j < c.H; j++ {
		row := b.span(c.X, c.Y+j, c.W)
		for i := range row {
			row[i] = fill
		}
	}
	b.NotifyModified()
}

// strokeEdges reports which borders of r survive in its clipped form c.
func strokeEdges(r, c Rectangle) (left, top, right, bottom bool) {
	return c.X == r.X, c.Y == r.Y, c.X+c.W == r.X+r.W, c.Y+c.H == r.Y+r.H
}

func (b *RGBABuffer) drawRectangle(p *Painter, x, y, w, h int) {
	r := Rect(x, y, w, h)
	c, ok := b.clip(p, r)
	if !ok {
		return
	}
	st := p.state()
	strokeLeft, strokeTop, strokeRight, strokeBottom := strokeEdges(r, c)

	for j := 0; j < c.H; j++ {
		left, centre, right := st.Fill, st.Fill, st.Fill
		if strokeLeft {
			left = st.Pen
		}
		if strokeRight {
			right = st.Pen
		}
		if (j == 0 && strokeTop) || (j == c.H-1 && strokeBottom) {
			left, centre, right = st.Pen, st.Pen, st.Pen
		}

		row := b.span(c.X, c.Y+j, c.W)
		if c.W == 1 {
			// One visible column: it is a border if either side is.
			col := left
			if strokeRight {
				col = right
			}
			blend.Blend(&row[0], row[0], col, 0xFF, st.BlendMode)
			continue
		}

		blend.Blend(&row[0], row[0], left, 0xFF, st.BlendMode)
		if !blend.Transparent(centre) {
			for i := 1; i < c.W-1; i++ {
				blend.Blend(&row[i], row[i], centre, 0xFF, st.BlendMode)
			}
		}
		last := c.W - 1
		blend.Blend(&row[last], row[last], right, 0xFF, st.BlendMode)
	}
	b.NotifyModified()
}

func (b *RGBABuffer) drawHLine(p *Painter, x, y, dx int) {
	c, ok := b.clip(p, Rect(x, y, dx, 1))
	if !ok {
		return
	}
	st := p.state()
	row := b.span(c.X, c.Y, c.W)
	for i := range row {
		blend.Blend(&row[i], row[i], st.Pen, 0xFF, st.BlendMode)
	}
	b.NotifyModified()
}

func (b *RGBABuffer) drawVLine(p *Painter, x, y, dy int) {
	c, ok := b.clip(p, Rect(x, y, 1, dy))
	if !ok {
		return
	}
	st := p.state()
	for j := 0; j < c.H; j++ {
		i := (c.Y+j)*b.dataWidth + c.X
		blend.Blend(&b.data[i], b.data[i], st.Pen, 0xFF, st.BlendMode)
	}
	b.NotifyModified()
}

// drawLine is Bresenham's algorithm made insensitive to the sign of dx and
// dy. A line may leave and re-enter the clip, so every pixel is tested.
func (b *RGBABuffer) drawLine(p *Painter, x, y, dx, dy int) {
	dirX, dirY := 1, 1
	bx, by := x, y
	if dx < 0 {
		dirX, bx = -1, x+dx
	}
	if dy < 0 {
		dirY, by = -1, y+dy
	}
	dx *= dirX
	dy *= dirY

	c, ok := b.clip(p, Rect(bx, by, dx+1, dy+1))
	if !ok {
		return
	}

	st := p.state()
	drawn := false
	xp, yp := x, y
	plot := func() {
		if c.Contains(xp, yp) {
			i := yp*b.dataWidth + xp
			blend.Blend(&b.data[i], b.data[i], st.Pen, 0xFF, st.BlendMode)
			drawn = true
		}
	}

	if dx >= dy {
		er := -dx / 2
		for i := 0; i < dx; i++ {
			plot()
			er += dy
			if er >= 0 {
				yp += dirY
				er -= dx
			}
			xp += dirX
		}
	} else {
		er := -dy / 2
		for i := 0; i < dy; i++ {
			plot()
			er += dx
			if er >= 0 {
				xp += dirX
				er -= dy
			}
			yp += dirY
		}
	}

	if drawn {
		b.NotifyModified()
	}
}

func (b *RGBABuffer) drawAlphamap(p *Painter, alpha []uint8, x, y, w, h, stride int) {
	c, ok := b.clip(p, Rect(x, y, w, h))
	if !ok {
		return
	}
	st := p.state()
	for j := 0; j < c.H; j++ {
		so := (c.Y-y+j)*stride + (c.X - x)
		if so < 0 || so+c.W > len(alpha) {
			break
		}
		src := alpha[so : so+c.W]
		dst := b.span(c.X, c.Y+j, c.W)
		for i, a := range src {
			blend.Blend(&dst[i], dst[i], st.Pen, a, st.BlendMode)
		}
	}
	b.NotifyModified()
}

func (b *RGBABuffer) drawRGBAData(p *Painter, data []uint32, x, y, w, h, stride int) {
	c, ok := b.clip(p, Rect(x, y, w, h))
	if !ok {
		return
	}
	st := p.state()
	for j := 0; j < c.H; j++ {
		so := (c.Y-y+j)*stride + (c.X - x)
		if so < 0 || so+c.W > len(data) {
			break
		}
		src := data[so : so+c.W]
		dst := b.span(c.X, c.Y+j, c.W)
		for i, s := range src {
			blend.Blend(&dst[i], dst[i], s, 0xFF, st.BlendMode)
		}
	}
	b.NotifyModified()
}
