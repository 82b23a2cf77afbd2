// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/ywin"

// scratch is a private pixel area covering one device rectangle.
type scratch struct {
	sink Sink
	rect ywin.Rectangle
	data []uint32
}

func newScratch(sink Sink, rect ywin.Rectangle) scratch {
	rect.W, rect.H = max(rect.W, 0), max(rect.H, 0)
	return scratch{
		sink: sink,
		rect: rect,
		data: make([]uint32, rect.W*rect.H),
	}
}

// row returns w pixels of the scratch starting at device (x, y).
func (s *scratch) row(x, y, w int) []uint32 {
	off := s.rect.W*(y-s.rect.Y) + (x - s.rect.X)
	return s.data[off : off+w]
}

// Pixels returns the staged pixels, rect.W per row.
func (s *scratch) Pixels() []uint32 {
	return s.data
}

// Rect returns the device rectangle the scratch covers.
func (s *scratch) Rect() ywin.Rectangle {
	return s.rect
}

func (s *scratch) Complete() {
	if s.sink == nil || len(s.data) == 0 {
		return
	}
	s.sink.Blit(s.data, s.rect.X, s.rect.Y, s.rect.W, s.rect.H, s.rect.W)
}

func (s *scratch) Destroy() {
	s.data = nil
}
