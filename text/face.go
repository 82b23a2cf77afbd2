package text

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ywin"
)

// ErrInvalidSize is returned for non-positive face sizes.
var ErrInvalidSize = errors.New("text: invalid face size")

// fontData is a font parsed once for outlines and once for shaping. Both
// parsed forms are read-only and shared by every Face of the font.
type fontData struct {
	sfnt *opentype.Font
	gt   *gotext.Font
	name string
}

func parseFont(data []byte) (*fontData, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	gf, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}
	name, _ := f.Name(nil, sfnt.NameIDFull)
	return &fontData{sfnt: f, gt: gf.Font, name: name}, nil
}

var goRegular = sync.OnceValues(func() (*fontData, error) {
	return parseFont(goregular.TTF)
})

// Face is a font at a fixed pixel size. It is safe for concurrent use.
type Face struct {
	font *fontData
	size float64
	ppem fixed.Int26_6

	mu  sync.Mutex
	buf sfnt.Buffer
}

// ParseFace parses TrueType or OpenType data.
func ParseFace(data []byte, size float64) (*Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	fd, err := parseFont(data)
	if err != nil {
		return nil, err
	}
	return newFace(fd, size), nil
}

// LoadFace reads and parses the font file at path.
func LoadFace(path string, size float64) (*Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	f, err := ParseFace(data, size)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	ywin.Logger().Info("text: font loaded", "path", path, "name", f.Name(), "size", size)
	return f, nil
}

// DefaultFace returns the Go Regular font at size. Non-positive sizes
// select 12.
func DefaultFace(size float64) *Face {
	fd, err := goRegular()
	if err != nil {
		panic(err)
	}
	if size <= 0 {
		size = 12
	}
	return newFace(fd, size)
}

func newFace(fd *fontData, size float64) *Face {
	return &Face{font: fd, size: size, ppem: fixed.Int26_6(size * 64)}
}

// Size returns the pixel size.
func (f *Face) Size() float64 { return f.size }

// Name returns the font's full name, if it has one.
func (f *Face) Name() string { return f.font.name }

// Metrics returns the ascent and descent below the baseline, both
// positive, and the recommended line height, rounded up to whole pixels.
func (f *Face) Metrics() (ascent, descent, height int) {
	f.mu.Lock()
	m, err := f.font.sfnt.Metrics(&f.buf, f.ppem, font.HintingNone)
	f.mu.Unlock()
	if err != nil {
		return 0, 0, 0
	}
	return m.Ascent.Ceil(), m.Descent.Ceil(), m.Height.Ceil()
}

// Measure returns the advance width of s in pixels.
func (f *Face) Measure(s string) int {
	var w fixed.Int26_6
	for _, run := range defaultShaper.Shape(f, s) {
		w += run.Advance
	}
	return w.Round()
}
