package bufferio

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// Handler decodes one image file format.
type Handler struct {
	// Name identifies the handler in logs and errors.
	Name string

	// Extensions lists the file extensions handled, without the dot.
	Extensions []string

	// Decode reads a complete image from r.
	Decode func(r io.Reader) (image.Image, error)
}

var (
	handlersMu sync.RWMutex
	handlers   = map[string]Handler{}
	byExt      = map[string]string{}
)

func init() {
	Register(Handler{Name: "png", Extensions: []string{"png"}, Decode: png.Decode})
	Register(Handler{Name: "jpeg", Extensions: []string{"jpg", "jpeg"}, Decode: jpeg.Decode})
	Register(Handler{Name: "bmp", Extensions: []string{"bmp"}, Decode: bmp.Decode})
	Register(Handler{Name: "tiff", Extensions: []string{"tif", "tiff"}, Decode: tiff.Decode})
	Register(Handler{Name: "webp", Extensions: []string{"webp"}, Decode: webp.Decode})
}

// Register adds or replaces a handler. Extensions are matched without
// regard to case.
func Register(h Handler) {
	if h.Name == "" || h.Decode == nil {
		return
	}
	handlersMu.Lock()
	defer handlersMu.Unlock()

	handlers[h.Name] = h
	for _, ext := range h.Extensions {
		byExt[normalizeExt(ext)] = h.Name
	}
}

// Handlers returns the registered handlers sorted by name.
func Handlers() []Handler {
	handlersMu.RLock()
	defer handlersMu.RUnlock()

	out := make([]Handler, 0, len(handlers))
	for _, h := range handlers {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HandlerFor returns the handler registered for ext, with or without a
// leading dot.
func HandlerFor(ext string) (Handler, bool) {
	handlersMu.RLock()
	defer handlersMu.RUnlock()

	name, ok := byExt[normalizeExt(ext)]
	if !ok {
		return Handler{}, false
	}
	h, ok := handlers[name]
	return h, ok
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// candidates orders the handlers for a file: the one matching ext first,
// then the rest by name.
func candidates(ext string) []Handler {
	all := Handlers()
	first, ok := HandlerFor(ext)
	if !ok {
		return all
	}
	out := make([]Handler, 0, len(all))
	out = append(out, first)
	for _, h := range all {
		if h.Name != first.Name {
			out = append(out, h)
		}
	}
	return out
}
