// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/blend"
)

// Simple composites with blend.Approximate: mostly opaque pixels are
// copied, half transparent ones averaged and the rest skipped.
type Simple struct {
	scratch
}

var _ ywin.RendererBackend = (*Simple)(nil)

// NewSimple returns a renderer for rect that flushes to sink.
func NewSimple(sink Sink, rect ywin.Rectangle) *ywin.Renderer {
	return ywin.NewRenderer(&Simple{scratch: newScratch(sink, rect)}, rect)
}

// BlitRGBAData implements ywin.RendererBackend.
func (s *Simple) BlitRGBAData(x, y int, data []uint32, w, h, stride int) {
	for j := 0; j < h; j++ {
		blend.ApproximateSpan(s.row(x, y+j, w), data[j*stride:j*stride+w])
	}
}

// DrawFilledRectangle implements ywin.RendererBackend.
func (s *Simple) DrawFilledRectangle(color uint32, x, y, w, h int) {
	for j := 0; j < h; j++ {
		row := s.row(x, y+j, w)
		for i := range row {
			blend.Approximate(&row[i], color)
		}
	}
}
