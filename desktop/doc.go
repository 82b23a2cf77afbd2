// Package desktop composes windows into a screen.
//
// A Window owns an RGBA buffer and a list of damaged rectangles; its paint
// callback redraws those rectangles lazily, the next time the window is
// rendered. A Desktop stacks windows over a background. A Screen ties a
// desktop to a video driver and repaints the tiles marked dirty since the
// previous update.
//
// Windows and desktops are not safe for concurrent use. Mutate them from
// the goroutine that calls Screen.Update, or inside Screen.Do.
// Screen.Invalidate may be called from anywhere.
package desktop
