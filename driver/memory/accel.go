// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package memory

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/blend"
)

// DefaultContextLimit bounds how many buffers keep a cached surface.
const DefaultContextLimit = 64

// Stats counts accelerated buffer renders.
type Stats struct {
	// Contexts is the number of buffers with a cached surface.
	Contexts int

	// Hits and Refreshes count renders that reused or rebuilt a surface.
	Hits, Refreshes int
}

// accel renders RGBA buffers from a cached copy of their pixels kept in a
// buffer context. The copy knows whether it is fully opaque so that most
// window contents are copied instead of blended.
type accel struct {
	d     *Driver
	id    uint32
	index *lru.Cache
	stats Stats
}

var _ ywin.Accel = (*accel)(nil)

func newAccel(d *Driver, limit int) (*accel, error) {
	a := &accel{d: d, id: ywin.NewContextID()}
	index, err := lru.NewWithEvict(limit, a.evicted)
	if err != nil {
		return nil, err
	}
	a.index = index
	return a, nil
}

// evicted runs under the index lock, for capacity evictions and for
// removals alike; it must not call back into the index.
func (a *accel) evicted(_, value interface{}) {
	c := value.(*surface)
	if c.released {
		return
	}
	c.released = true
	c.pixels = nil
	c.buffer.RemoveContext(c.ContextID())
}

func (a *accel) purge() {
	a.index.Purge()
}

// surface is the cached copy of one buffer.
type surface struct {
	a        *accel
	buffer   *ywin.RGBABuffer
	w, h     int
	pixels   []uint32
	opaque   bool
	stale    bool
	released bool
}

func (c *surface) ContextID() uint32 { return c.a.id }

// Modified implements ywin.BufferContext.
func (c *surface) Modified() { c.stale = true }

// Destroy implements ywin.BufferContext.
func (c *surface) Destroy() {
	if c.released {
		return
	}
	c.released = true
	c.pixels = nil
	c.a.index.Remove(c.buffer)
}

func (c *surface) refresh() {
	w, h := c.buffer.Size()
	dw, _, data := c.buffer.Internals()
	if cap(c.pixels) < w*h {
		c.pixels = make([]uint32, w*h)
	}
	c.pixels = c.pixels[:w*h]
	c.opaque = true
	for y := 0; y < h; y++ {
		row := c.pixels[y*w : (y+1)*w]
		copy(row, data[y*dw:y*dw+w])
		for _, p := range row {
			if !blend.Opaque(p) {
				c.opaque = false
			}
		}
	}
	c.w, c.h = w, h
	c.stale = false
	c.a.stats.Refreshes++
}

func (a *accel) surfaceFor(b *ywin.RGBABuffer) *surface {
	if v, ok := a.index.Get(b); ok {
		return v.(*surface)
	}
	c := &surface{a: a, buffer: b, stale: true}
	b.AddContext(c)
	a.index.Add(b, c)
	return c
}

// RenderBuffer implements ywin.Accel. Only RGBA buffers are handled.
func (a *accel) RenderBuffer(b ywin.Buffer, x, y, xo, yo, w, h int) bool {
	rb, ok := b.(*ywin.RGBABuffer)
	if !ok {
		return false
	}
	c := a.surfaceFor(rb)
	if c.stale {
		c.refresh()
	} else {
		a.stats.Hits++
	}

	dc, dx, dy, ok := a.d.clip(x+xo, y+yo, w, h)
	if !ok {
		return true
	}
	xo += dx
	yo += dy
	for j := 0; j < dc.H; j++ {
		so := (yo+j)*c.w + xo
		if yo+j >= c.h || xo+dc.W > c.w {
			break
		}
		src := c.pixels[so : so+dc.W]
		dst := a.d.row(dc.X, dc.Y+j, dc.W)
		if c.opaque {
			copy(dst, src)
		} else {
			blend.SourceOverSpan(dst, src)
		}
	}
	return true
}

// BlitRGBAData implements ywin.Accel.
func (a *accel) BlitRGBAData(x, y int, data []uint32, w, h, stride int) {
	c, dx, dy, ok := a.d.clip(x, y, w, h)
	if !ok {
		return
	}
	for j := 0; j < c.H; j++ {
		so := (dy+j)*stride + dx
		if so+c.W > len(data) {
			return
		}
		blend.SourceOverSpan(a.d.row(c.X, c.Y+j, c.W), data[so:so+c.W])
	}
}

// DrawFilledRectangle implements ywin.Accel.
func (a *accel) DrawFilledRectangle(color uint32, x, y, w, h int) {
	c, _, _, ok := a.d.clip(x, y, w, h)
	if !ok {
		return
	}
	for j := 0; j < c.H; j++ {
		blend.FillSpan(a.d.row(c.X, c.Y+j, c.W), color)
	}
}

// Stats returns the accelerated path counters.
func (d *Driver) Stats() Stats {
	s := d.accel.stats
	s.Contexts = d.accel.index.Len()
	return s
}
