// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/ywin"
	"github.com/gogpu/ywin/blend"
)

// Software composites with exact source-over blending.
//
// Opaque filled rectangles are written directly; everything else goes
// through the blend engine.
type Software struct {
	scratch
}

var _ ywin.RendererBackend = (*Software)(nil)

// NewSoftware returns a renderer for rect that flushes to sink.
func NewSoftware(sink Sink, rect ywin.Rectangle) *ywin.Renderer {
	return ywin.NewRenderer(&Software{scratch: newScratch(sink, rect)}, rect)
}

// BlitRGBAData implements ywin.RendererBackend.
func (s *Software) BlitRGBAData(x, y int, data []uint32, w, h, stride int) {
	for j := 0; j < h; j++ {
		blend.SourceOverSpan(s.row(x, y+j, w), data[j*stride:j*stride+w])
	}
}

// DrawFilledRectangle implements ywin.RendererBackend.
func (s *Software) DrawFilledRectangle(color uint32, x, y, w, h int) {
	for j := 0; j < h; j++ {
		blend.FillSpan(s.row(x, y+j, w), color)
	}
}
