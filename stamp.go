package geoart

import "math"

// ShapeMode selects the stamp pattern placed at a single point.
type ShapeMode int

const (
	// ShapeConcentric draws evenly spaced rings with decaying opacity.
	ShapeConcentric ShapeMode = iota
	// ShapeRadial draws a 24-spoke burst.
	ShapeRadial
	// ShapeMesh draws an outer ring, a spoke lattice and inner rings.
	ShapeMesh
	// ShapeDotted draws dots evenly spaced on a ring.
	ShapeDotted
	// ShapeCircle draws a single stroked circle.
	ShapeCircle
	// ShapeMandala draws three ringed petal layers around a core.
	ShapeMandala
)

// String returns the shape name used by the UI and logs.
func (m ShapeMode) String() string {
	switch m {
	case ShapeConcentric:
		return "concentric"
	case ShapeRadial:
		return "radial"
	case ShapeMesh:
		return "mesh"
	case ShapeDotted:
		return "dotted"
	case ShapeCircle:
		return "circle"
	case ShapeMandala:
		return "mandala"
	}
	return "unknown"
}

// ShapeModes lists all shape modes in UI order.
var ShapeModes = []ShapeMode{
	ShapeConcentric, ShapeRadial, ShapeMesh, ShapeDotted, ShapeCircle, ShapeMandala,
}

// concentricRingCount returns the ring count of the concentric stamp,
// floor(brushSize/8) with a floor of one ring.
func concentricRingCount(brushSize float64) int {
	n := int(brushSize / 8)
	if n < 1 {
		n = 1
	}
	return n
}

// dottedRingCount returns the dot count of the dotted stamp,
// floor(brushSize/3) with a floor of one dot.
func dottedRingCount(brushSize float64) int {
	n := int(brushSize / 3)
	if n < 1 {
		n = 1
	}
	return n
}

// DrawStamp renders the one-shot stamp for the given shape centered on a
// point. Stamps have no motion dependency; BrushSize is the stamp radius.
func DrawStamp(dst Surface, shape ShapeMode, center Point, style Style) {
	switch shape {
	case ShapeConcentric:
		stampConcentric(dst, center, style)
	case ShapeRadial:
		stampRadial(dst, center, style)
	case ShapeMesh:
		stampMesh(dst, center, style)
	case ShapeDotted:
		stampDotted(dst, center, style)
	case ShapeCircle:
		dst.StrokeCircle(center, style.BrushSize, style.LineWeight, style.Tint())
	case ShapeMandala:
		stampMandala(dst, center, style)
	}
}

func stampConcentric(dst Surface, center Point, style Style) {
	n := concentricRingCount(style.BrushSize)
	for i := 0; i < n; i++ {
		r := style.BrushSize * float64(i+1) / float64(n)
		col := style.Fade(1 - float64(i)/float64(n))
		dst.StrokeCircle(center, r, style.LineWeight, col)
	}
}

func stampRadial(dst Surface, center Point, style Style) {
	col := style.Tint()
	for i := 0; i < 24; i++ {
		a := float64(i) * math.Pi / 12
		dst.StrokeLine(center, center.Polar(a, style.BrushSize), style.LineWeight, col)
	}
}

func stampMesh(dst Surface, center Point, style Style) {
	col := style.Tint()
	dst.StrokeCircle(center, style.BrushSize, style.LineWeight, col)

	spokeCol := style.Fade(0.6)
	for i := 0; i < 16; i++ {
		a := float64(i) * math.Pi / 8
		dst.StrokeLine(center, center.Polar(a, style.BrushSize), style.LineWeight/2, spokeCol)
	}

	dst.StrokeCircle(center, style.BrushSize*0.5, style.LineWeight, col)
	dst.StrokeCircle(center, style.BrushSize*0.25, style.LineWeight, col)
}

func stampDotted(dst Surface, center Point, style Style) {
	col := style.Tint()
	n := dottedRingCount(style.BrushSize)
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / float64(n)
		dst.FillCircle(center.Polar(a, style.BrushSize), style.LineWeight, col)
	}
}

func stampMandala(dst Surface, center Point, style Style) {
	col := style.Tint()
	for layer := 1; layer <= 3; layer++ {
		layerRadius := style.BrushSize / 3 * float64(layer)
		petalRadius := layerRadius / 3
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			dst.StrokeCircle(center.Polar(a, layerRadius), petalRadius, style.LineWeight, col)
		}
	}
	dst.StrokeCircle(center, style.BrushSize/6, style.LineWeight, col)
}
