package geoart

import (
	"math"
	"math/rand"
)

// BrushMode selects the stroke algorithm applied along a pointer path.
type BrushMode int

const (
	// BrushSegments walks alternating 5px draw/gap intervals.
	BrushSegments BrushMode = iota
	// BrushDots places a filled dot every 3px of travel.
	BrushDots
	// BrushRadials emits an 8-spoke burst every 20px of travel.
	BrushRadials
	// BrushCrosshatch emits tick pairs every 15px of travel.
	BrushCrosshatch
	// BrushStipple scatters jittered dots proportional to travel.
	BrushStipple
	// BrushFine draws a single continuous round-capped line.
	BrushFine
)

// String returns the brush mode name used by the UI and logs.
func (m BrushMode) String() string {
	switch m {
	case BrushSegments:
		return "segments"
	case BrushDots:
		return "dots"
	case BrushRadials:
		return "radials"
	case BrushCrosshatch:
		return "crosshatch"
	case BrushStipple:
		return "stipple"
	case BrushFine:
		return "fine"
	}
	return "unknown"
}

// BrushModes lists all brush modes in UI order.
var BrushModes = []BrushMode{
	BrushSegments, BrushDots, BrushRadials, BrushCrosshatch, BrushStipple, BrushFine,
}

// Fixed spacing constants of the distance-parameterized modes. Density
// depends only on pointer travel, never on event rate.
const (
	segmentDrawLen  = 5.0
	segmentGapLen   = 5.0
	dotSpacing      = 3.0
	radialSpacing   = 20.0
	hatchSpacing    = 15.0
	stipplePerPixel = 0.5
)

// DrawStroke renders one brush stroke increment from the previous pointer
// position to the current one. A zero-length segment still emits one
// primitive at the point itself.
func DrawStroke(dst Surface, mode BrushMode, from, to Point, style Style, rng *rand.Rand) {
	switch mode {
	case BrushSegments:
		drawSegments(dst, from, to, style)
	case BrushDots:
		drawDots(dst, from, to, style)
	case BrushRadials:
		drawRadials(dst, from, to, style)
	case BrushCrosshatch:
		drawCrosshatch(dst, from, to, style)
	case BrushStipple:
		drawStipple(dst, from, to, style, rng)
	case BrushFine:
		dst.StrokeLine(from, to, style.LineWeight, style.Tint())
	}
}

// dashIntervals returns the [t0, t1] fractions of the draw intervals of an
// alternating on/off pattern walked over a segment of the given length.
// A degenerate length yields a single zero-width interval.
func dashIntervals(dist, on, off float64) [][2]float64 {
	if dist <= 0 {
		return [][2]float64{{0, 0}}
	}
	var spans [][2]float64
	for d := 0.0; d < dist; d += on + off {
		end := math.Min(d+on, dist)
		spans = append(spans, [2]float64{d / dist, end / dist})
	}
	return spans
}

// samplePositions returns points at the given spacing along the segment,
// endpoints inclusive. A degenerate segment yields the start point.
func samplePositions(from, to Point, spacing float64) []Point {
	dist := from.Distance(to)
	if dist <= 0 {
		return []Point{from}
	}
	var pts []Point
	for d := 0.0; d <= dist; d += spacing {
		pts = append(pts, from.Lerp(to, d/dist))
	}
	return pts
}

// stippleCount returns the stipple sample count for a travel distance.
func stippleCount(dist float64) int {
	n := int(dist * stipplePerPixel)
	if n < 1 {
		n = 1
	}
	return n
}

func drawSegments(dst Surface, from, to Point, style Style) {
	col := style.Tint()
	for _, span := range dashIntervals(from.Distance(to), segmentDrawLen, segmentGapLen) {
		dst.StrokeLine(from.Lerp(to, span[0]), from.Lerp(to, span[1]), style.LineWeight, col)
	}
}

func drawDots(dst Surface, from, to Point, style Style) {
	col := style.Tint()
	for _, p := range samplePositions(from, to, dotSpacing) {
		dst.FillCircle(p, style.LineWeight, col)
	}
}

func drawRadials(dst Surface, from, to Point, style Style) {
	col := style.Tint()
	spokeLen := style.BrushSize * 0.3
	for _, p := range samplePositions(from, to, radialSpacing) {
		for i := 0; i < 8; i++ {
			a := float64(i) * math.Pi / 4
			dst.StrokeLine(p, p.Polar(a, spokeLen), style.LineWeight, col)
		}
	}
}

func drawCrosshatch(dst Surface, from, to Point, style Style) {
	col := style.Tint()
	theta := to.Sub(from).Angle()
	tickLen := style.BrushSize * 0.4
	for _, p := range samplePositions(from, to, hatchSpacing) {
		drawTick(dst, p, theta+math.Pi/2, tickLen, style.LineWeight, col)
		drawTick(dst, p, theta+math.Pi/4, tickLen, style.LineWeight, col)
	}
}

// drawTick strokes a segment of the given length centered on p.
func drawTick(dst Surface, p Point, angle, length, width float64, col RGBA) {
	dst.StrokeLine(p.Polar(angle, -length/2), p.Polar(angle, length/2), width, col)
}

func drawStipple(dst Surface, from, to Point, style Style, rng *rand.Rand) {
	col := style.Tint()
	jitter := style.BrushSize / 2
	for i := 0; i < stippleCount(from.Distance(to)); i++ {
		p := from.Lerp(to, rng.Float64())
		p.X += (rng.Float64()*2 - 1) * jitter
		p.Y += (rng.Float64()*2 - 1) * jitter
		r := (0.25 + rng.Float64()*0.25) * style.LineWeight
		dst.FillCircle(p, r, col)
	}
}
