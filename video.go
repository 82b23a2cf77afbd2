package ywin

// OptionHardwarePointer is the renderer option a driver sets to "yes" when
// it draws the pointer itself.
const OptionHardwarePointer = "hardware pointer"

// VideoDriver is the display device the server composites onto.
type VideoDriver interface {
	// PixelDimensions returns the display size in pixels.
	PixelDimensions() (w, h int)

	// BeginUpdates and EndUpdates bracket one compositing pass.
	BeginUpdates()
	EndUpdates()

	// Blit copies w×h pixels to (x, y); row j starts at pixels[j*stride].
	Blit(pixels []uint32, x, y, w, h, stride int)

	// DrawFilledRectangle blends colour over the inclusive rectangle
	// (x1, y1)-(x2, y2).
	DrawFilledRectangle(color uint32, x1, y1, x2, y2 int)

	// Renderer returns a renderer for the device rectangle rect.
	Renderer(rect Rectangle) *Renderer
}

// PointerDriver is a VideoDriver that can show the pointer itself. It is
// told every pointer position; visible is false while the pointer is
// hidden. Only renderers of a PointerDriver may set OptionHardwarePointer.
type PointerDriver interface {
	VideoDriver
	SetPointer(x, y int, visible bool)
}

// Accel is the accelerated extension a driver offers to the hardware
// renderer. Coordinates are clipped device coordinates. RenderBuffer may
// decline a buffer by returning false.
type Accel interface {
	RenderBuffer(b Buffer, x, y, xo, yo, w, h int) bool
	BlitRGBAData(x, y int, data []uint32, w, h, stride int)
	DrawFilledRectangle(color uint32, x, y, w, h int)
}
