// Package bufferio loads image files into ywin RGBA buffers and writes
// buffers back out as PNG.
//
// Decoders are kept in a small registry keyed by file extension. Load
// tries the decoder registered for the path's extension first and then
// falls back to every other decoder, so misnamed files still load:
//
//	buf, err := bufferio.Load("wallpaper.webp", 0, 0)
//	if err != nil {
//		return err
//	}
//	defer buf.Destroy()
//
// A positive width and height scale the decoded image to that size.
package bufferio
