// Package ywin is the rendering and compositing core of a small windowing
// server.
//
// # Overview
//
// Clients own windows; every window draws into a Buffer through a Painter
// and the server composites the buffers onto a display through a Renderer
// obtained from a VideoDriver.
//
//	buf := ywin.NewRGBABuffer(ywin.WithSize(100, 80))
//	p := buf.Painter()
//	p.SetFillColor(0xFF0000FF)
//	p.SetPenColor(0xFF00FF00)
//	p.DrawRectangle(10, 10, 20, 20)
//
//	r := driver.Renderer(ywin.Rect(0, 0, 640, 480))
//	buf.Render(r, 40, 40)
//	r.Complete()
//
// # Pixels
//
// Pixels are uint32 ARGB values, alpha in the top byte. Compositing
// arithmetic lives in the blend package.
//
// # Coordinate spaces
//
// A Painter carries a stack of states, each with a scale, a translation
// and an optional clip rectangle in buffer coordinates. A Renderer carries
// a stack of regions whose clip rectangles and translations are absolute
// device coordinates. Both stacks are strictly LIFO.
//
// # Concurrency
//
// Buffers, painters and renderers are not safe for concurrent use. A host
// that mutates buffers from several goroutines must treat a whole paint
// pass as one critical section; the desktop package does this for its
// Screen.
package ywin

// Version is the library version reported by the server.
const Version = "0.3.0"
