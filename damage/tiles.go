package damage

import (
	"math/bits"
	"sync/atomic"

	"github.com/gogpu/ywin"
)

// DefaultTileSize is the tile edge used by NewScreenTiles.
const DefaultTileSize = 32

// Tiles tracks which tiles of a screen need repainting using an atomic
// bitmap, one bit per tile packed into uint64 words.
//
// Mark, MarkRect, MarkAll and Take are safe for concurrent use without
// external synchronization.
type Tiles struct {
	// words holds the dirty bits. Bit index = ty*tilesX + tx.
	words []atomic.Uint64

	tilesX, tilesY int
	tileSize       int

	// width and height are the pixel extent the grid covers.
	width, height int
}

// NewTiles creates a tracker covering a width×height pixel area split into
// tileSize×tileSize tiles. All tiles start clean. It returns nil for a
// non-positive size or tile size.
func NewTiles(width, height, tileSize int) *Tiles {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil
	}
	tilesX := (width + tileSize - 1) / tileSize
	tilesY := (height + tileSize - 1) / tileSize
	total := tilesX * tilesY
	return &Tiles{
		words:    make([]atomic.Uint64, (total+63)/64),
		tilesX:   tilesX,
		tilesY:   tilesY,
		tileSize: tileSize,
		width:    width,
		height:   height,
	}
}

// NewScreenTiles is NewTiles with DefaultTileSize.
func NewScreenTiles(width, height int) *Tiles {
	return NewTiles(width, height, DefaultTileSize)
}

// Mark marks tile (tx, ty) dirty. Out-of-range tiles are ignored.
func (t *Tiles) Mark(tx, ty int) {
	if tx < 0 || tx >= t.tilesX || ty < 0 || ty >= t.tilesY {
		return
	}
	idx := ty*t.tilesX + tx
	t.words[idx/64].Or(1 << (idx & 63))
}

// MarkRect marks every tile touching the pixel rectangle r.
func (t *Tiles) MarkRect(r ywin.Rectangle) {
	r, ok := r.Intersect(ywin.Rect(0, 0, t.width, t.height))
	if !ok {
		return
	}
	tx1 := r.X / t.tileSize
	ty1 := r.Y / t.tileSize
	tx2 := (r.X + r.W - 1) / t.tileSize
	ty2 := (r.Y + r.H - 1) / t.tileSize
	for ty := ty1; ty <= ty2; ty++ {
		for tx := tx1; tx <= tx2; tx++ {
			t.Mark(tx, ty)
		}
	}
}

// MarkAll marks the whole grid dirty.
func (t *Tiles) MarkAll() {
	total := t.tilesX * t.tilesY
	full := total / 64
	for i := 0; i < full; i++ {
		t.words[i].Store(^uint64(0))
	}
	if rem := total % 64; rem > 0 {
		t.words[full].Store(uint64(1)<<rem - 1)
	}
}

// IsDirty reports whether tile (tx, ty) is marked.
func (t *Tiles) IsDirty(tx, ty int) bool {
	if tx < 0 || tx >= t.tilesX || ty < 0 || ty >= t.tilesY {
		return false
	}
	idx := ty*t.tilesX + tx
	return t.words[idx/64].Load()&(1<<(idx&63)) != 0
}

// Empty reports whether no tile is marked.
func (t *Tiles) Empty() bool {
	for i := range t.words {
		if t.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of marked tiles.
func (t *Tiles) Count() int {
	n := 0
	for i := range t.words {
		n += bits.OnesCount64(t.words[i].Load())
	}
	return n
}

// Take atomically clears the grid and returns the dirty area as
// coalesced pixel rectangles clipped to the covered extent. Runs of dirty
// tiles in a row become one rectangle before coalescing.
func (t *Tiles) Take() []ywin.Rectangle {
	total := t.tilesX * t.tilesY
	dirty := make([]bool, total)
	found := false
	for w := range t.words {
		word := t.words[w].Swap(0)
		for word != 0 {
			b := bits.TrailingZeros64(word)
			if idx := w*64 + b; idx < total {
				dirty[idx] = true
				found = true
			}
			word &^= 1 << b
		}
	}
	if !found {
		return nil
	}

	bounds := ywin.Rect(0, 0, t.width, t.height)
	var rects []ywin.Rectangle
	for ty := 0; ty < t.tilesY; ty++ {
		row := dirty[ty*t.tilesX : (ty+1)*t.tilesX]
		for tx := 0; tx < t.tilesX; {
			if !row[tx] {
				tx++
				continue
			}
			start := tx
			for tx < t.tilesX && row[tx] {
				tx++
			}
			r := ywin.Rect(start*t.tileSize, ty*t.tileSize, (tx-start)*t.tileSize, t.tileSize)
			if r, ok := r.Intersect(bounds); ok {
				rects = append(rects, r)
			}
		}
	}
	return Coalesce(rects)
}

// Resize returns a tracker for the new pixel size with every tile marked,
// or nil if the size is invalid. The receiver is unchanged.
func (t *Tiles) Resize(width, height int) *Tiles {
	n := NewTiles(width, height, t.tileSize)
	if n != nil {
		n.MarkAll()
	}
	return n
}

// Size returns the covered pixel extent.
func (t *Tiles) Size() (width, height int) {
	return t.width, t.height
}

// Grid returns the number of tiles horizontally and vertically.
func (t *Tiles) Grid() (tilesX, tilesY int) {
	return t.tilesX, t.tilesY
}

// TileSize returns the tile edge in pixels.
func (t *Tiles) TileSize() int {
	return t.tileSize
}
