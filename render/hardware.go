// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/ywin"

// Hardware forwards compositing to a driver accelerator.
type Hardware struct {
	accel ywin.Accel
}

var (
	_ ywin.RendererBackend = (*Hardware)(nil)
	_ ywin.BufferRenderer  = (*Hardware)(nil)
)

// NewHardware returns a renderer for rect backed by accel.
func NewHardware(accel ywin.Accel, rect ywin.Rectangle) *ywin.Renderer {
	return ywin.NewRenderer(&Hardware{accel: accel}, rect)
}

// RenderBuffer implements ywin.BufferRenderer. The accelerator may
// decline, in which case the caller blits the pixels instead.
func (r *Hardware) RenderBuffer(b ywin.Buffer, x, y, xo, yo, w, h int) bool {
	return r.accel.RenderBuffer(b, x, y, xo, yo, w, h)
}

// BlitRGBAData implements ywin.RendererBackend.
func (r *Hardware) BlitRGBAData(x, y int, data []uint32, w, h, stride int) {
	r.accel.BlitRGBAData(x, y, data, w, h, stride)
}

// DrawFilledRectangle implements ywin.RendererBackend.
func (r *Hardware) DrawFilledRectangle(color uint32, x, y, w, h int) {
	r.accel.DrawFilledRectangle(color, x, y, w, h)
}

// Complete implements ywin.RendererBackend. Accelerated output is
// already on the device.
func (r *Hardware) Complete() {}

// Destroy implements ywin.RendererBackend.
func (r *Hardware) Destroy() {}
