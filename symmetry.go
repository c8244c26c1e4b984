package geoart

import "math"

// SymmetryMode selects whether input points are mirrored about an axis.
type SymmetryMode int

const (
	// SymmetryNone draws each input point once.
	SymmetryNone SymmetryMode = iota
	// SymmetryMirror additionally draws the reflection of each input
	// point about the configured axis through the canvas center.
	SymmetryMirror
)

// Symmetry is the mirror configuration read by the transform.
type Symmetry struct {
	Mode SymmetryMode
	// AxisDegrees is the axis angle in degrees, 0..180. 0 is the
	// horizontal axis, 90 the vertical one.
	AxisDegrees float64
}

// Reflect returns p reflected about the line through center at the
// configured axis angle, using the standard reflection-across-a-line
// formula in center-relative coordinates.
func (s Symmetry) Reflect(p, center Point) Point {
	theta := s.AxisDegrees * math.Pi / 180
	cos2 := math.Cos(2 * theta)
	sin2 := math.Sin(2 * theta)

	dx := p.X - center.X
	dy := p.Y - center.Y
	return Point{
		X: center.X + dx*cos2 + dy*sin2,
		Y: center.Y + dx*sin2 - dy*cos2,
	}
}

// Branches expands one logical input point into its symmetry branches:
// just the point itself for SymmetryNone, the point plus its reflection
// for SymmetryMirror. When the point lies on the axis both branches
// coincide; they are intentionally not deduplicated.
func (s Symmetry) Branches(p, center Point) []Point {
	if s.Mode != SymmetryMirror {
		return []Point{p}
	}
	return []Point{p, s.Reflect(p, center)}
}

// BranchCount returns the number of branches the transform produces.
func (s Symmetry) BranchCount() int {
	if s.Mode == SymmetryMirror {
		return 2
	}
	return 1
}
