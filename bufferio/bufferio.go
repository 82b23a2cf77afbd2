package bufferio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/gogpu/ywin"
)

var (
	// ErrUnsupported is returned when no handler can decode the data.
	ErrUnsupported = errors.New("bufferio: unsupported image format")

	// ErrEmptyData is returned for zero-length input.
	ErrEmptyData = errors.New("bufferio: empty data")
)

// Load reads the image at path into a new buffer. When w and h are both
// positive and differ from the image size the image is scaled to w×h.
func Load(path string, w, h int, opts ...ywin.BufferOption) (*ywin.RGBABuffer, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("bufferio: read file: %w", err)
	}
	img, name, err := decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("bufferio: %s: %w", path, err)
	}
	ywin.Logger().Debug("bufferio: loaded image",
		"path", path, "handler", name,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return FromImage(img, w, h, opts...), nil
}

// Decode reads an image of any registered format from r.
func Decode(r io.Reader, w, h int, opts ...ywin.BufferOption) (*ywin.RGBABuffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("bufferio: read: %w", err)
	}
	img, _, err := decode(data, "")
	if err != nil {
		return nil, err
	}
	return FromImage(img, w, h, opts...), nil
}

func decode(data []byte, ext string) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	_, matched := HandlerFor(ext)
	var errs []error
	for i, hd := range candidates(ext) {
		img, err := hd.Decode(bytes.NewReader(data))
		if err == nil {
			return img, hd.Name, nil
		}
		if i == 0 && matched {
			ywin.Logger().Warn("bufferio: handler failed for matching extension",
				"handler", hd.Name, "ext", ext, "err", err)
		}
		errs = append(errs, fmt.Errorf("%s: %w", hd.Name, err))
	}
	return nil, "", errors.Join(append([]error{ErrUnsupported}, errs...)...)
}

// FromImage converts img to a new ARGB buffer, scaling it to w×h when both
// are positive.
func FromImage(img image.Image, w, h int, opts ...ywin.BufferOption) *ywin.RGBABuffer {
	src := img.Bounds()
	if w <= 0 || h <= 0 {
		w, h = src.Dx(), src.Dy()
	}

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == src.Dx() && h == src.Dy() {
		draw.Draw(dst, dst.Bounds(), img, src.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, src, draw.Src, nil)
	}

	b := ywin.NewRGBABuffer(append(opts, ywin.WithSize(w, h))...)
	for y := 0; y < h; y++ {
		row := b.Row(y)
		pix := dst.Pix[y*dst.Stride:]
		for x := range row {
			p := pix[x*4 : x*4+4]
			row[x] = uint32(p[3])<<24 | uint32(p[0])<<16 | uint32(p[1])<<8 | uint32(p[2])
		}
	}
	b.NotifyModified()
	return b
}

// ToImage copies the visible pixels of b into an NRGBA image.
func ToImage(b *ywin.RGBABuffer) *image.NRGBA {
	w, h := b.Size()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		pix := img.Pix[y*img.Stride:]
		for x, c := range b.Row(y) {
			pix[x*4] = uint8(c >> 16)
			pix[x*4+1] = uint8(c >> 8)
			pix[x*4+2] = uint8(c)
			pix[x*4+3] = uint8(c >> 24)
		}
	}
	return img
}

// EncodePNG writes the visible part of b to w as PNG.
func EncodePNG(w io.Writer, b *ywin.RGBABuffer) error {
	if err := png.Encode(w, ToImage(b)); err != nil {
		return fmt.Errorf("bufferio: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes b to path as PNG.
func SavePNG(b *ywin.RGBABuffer, path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("bufferio: create file: %w", err)
	}
	if err := EncodePNG(f, b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
