// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the renderer variants a video driver hands to
// the compositor.
//
// Each variant is a ywin.RendererBackend wrapped in a ywin.Renderer whose
// first region is the device rectangle being repainted:
//
//   - Simple: a private scratch composited with a cheap approximate blend
//     (copy, average or skip), flushed to the driver on Complete.
//   - Software: a private scratch composited with exact source-over
//     blending, flushed to the driver on Complete.
//   - Hardware: forwards every call to the driver's ywin.Accel, including
//     the native buffer path. Complete is a no-op.
//
// Drivers usually pick a variant with New:
//
//	func (d *Driver) Renderer(rect ywin.Rectangle) *ywin.Renderer {
//	    return render.New(d.mode, d, d.accel, rect)
//	}
//
// Renderers are not safe for concurrent use. A renderer lives for a single
// repaint of one rectangle and must be destroyed afterwards.
package render
