package geoart

import "math/rand"

// PatternKind selects the flood fill source.
type PatternKind int

const (
	// PatternSolid fills with the flat configured color.
	PatternSolid PatternKind = iota
	// PatternDots fills with a polka-dot tile.
	PatternDots
	// PatternLines fills with a diagonal line tile.
	PatternLines
	// PatternCrosshatch fills with a crossed diagonal tile.
	PatternCrosshatch
	// PatternStipple fills with a speckled tile.
	PatternStipple
)

// String returns the pattern name used by the UI and logs.
func (k PatternKind) String() string {
	switch k {
	case PatternSolid:
		return "solid"
	case PatternDots:
		return "dots"
	case PatternLines:
		return "lines"
	case PatternCrosshatch:
		return "crosshatch"
	case PatternStipple:
		return "stipple"
	}
	return "unknown"
}

// PatternKinds lists all fill patterns in UI order.
var PatternKinds = []PatternKind{
	PatternSolid, PatternDots, PatternLines, PatternCrosshatch, PatternStipple,
}

// PatternTileSize is the edge length of the repeating pattern tile.
const PatternTileSize = 20

// NewPatternTile renders the repeating tile for a pattern kind: a
// low-opacity wash of the style color over the canvas background, plus
// the pattern motif at the configured opacity. The tile is fully opaque
// so pattern fills preserve the canvas opacity invariant. The stipple
// motif uses a fixed seed so every tile of a fill is identical.
func NewPatternTile(kind PatternKind, style Style) *Pixmap {
	tile := NewPixmap(PatternTileSize, PatternTileSize)
	tile.Clear(Background)

	cv := NewCanvas(tile)
	wash := style.Fade(0.15)
	for y := 0; y < PatternTileSize; y++ {
		for x := 0; x < PatternTileSize; x++ {
			tile.BlendPixel(x, y, wash)
		}
	}

	col := style.Tint()
	switch kind {
	case PatternDots:
		cv.FillCircle(Pt(5, 5), 2, col)
		cv.FillCircle(Pt(15, 15), 2, col)
	case PatternLines:
		for off := -20.0; off <= 20; off += 5 {
			cv.StrokeLine(Pt(off, 0), Pt(off+20, 20), 1, col)
		}
	case PatternCrosshatch:
		for off := -20.0; off <= 20; off += 6 {
			cv.StrokeLine(Pt(off, 0), Pt(off+20, 20), 1, col)
			cv.StrokeLine(Pt(off+20, 0), Pt(off, 20), 1, col)
		}
	case PatternStipple:
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 30; i++ {
			p := Pt(rng.Float64()*PatternTileSize, rng.Float64()*PatternTileSize)
			cv.FillCircle(p, 0.5+rng.Float64()*0.7, col)
		}
	}
	return tile
}

// TileSource samples flood fill colors from a repeating pattern tile,
// indexed by (x mod tileW, y mod tileH).
type TileSource struct {
	Tile *Pixmap
}

// At implements FillSource.
func (t TileSource) At(x, y int) (r, g, b, a uint8) {
	w, h := t.Tile.Width(), t.Tile.Height()
	tx := ((x % w) + w) % w
	ty := ((y % h) + h) % h
	i := (ty*w + tx) * 4
	d := t.Tile.Data()
	return d[i], d[i+1], d[i+2], d[i+3]
}
