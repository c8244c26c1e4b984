package geoart

import "math"

// Style carries the ambient paint parameters read by every drawing
// engine for one operation. Engines never mutate it.
type Style struct {
	// Color is the draw color; its alpha is ignored in favor of Opacity.
	Color RGBA
	// Opacity in [0.1, 1.0].
	Opacity float64
	// LineWeight is the stroke width in pixels, [0.5, 5.0].
	LineWeight float64
	// BrushSize is the characteristic radius of brushes and stamps,
	// [10, 120] pixels.
	BrushSize float64
}

// Tint returns the draw color with the style opacity applied as alpha.
func (s Style) Tint() RGBA {
	return s.Color.WithAlpha(s.Opacity)
}

// Fade returns the draw color with a scaled opacity, clamped to [0, 1].
func (s Style) Fade(factor float64) RGBA {
	a := s.Opacity * factor
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return s.Color.WithAlpha(a)
}

// Mode classifies the active pointer interaction.
type Mode int

const (
	// ModeBrush strokes the active brush along the pointer path.
	ModeBrush Mode = iota
	// ModeShape stamps the active shape at the pointer-down position.
	ModeShape
	// ModeBlend smudges existing pixels along the pointer path.
	ModeBlend
	// ModeFill flood-fills from the pointer-down position.
	ModeFill
)

// Parameter ranges enforced by Config.Normalize.
const (
	MinBrushSize  = 10.0
	MaxBrushSize  = 120.0
	MinLineWeight = 0.5
	MaxLineWeight = 5.0
	MinOpacity    = 0.1
	MaxOpacity    = 1.0
)

// Config is the full interaction configuration. The UI shell owns and
// mutates it; the session reads it at the start of each operation.
// Bleed is an orthogonal modifier: it combines with ModeBrush or
// ModeShape and is ignored by the other modes.
type Config struct {
	Mode     Mode
	Bleed    bool
	Brush    BrushMode
	Shape    ShapeMode
	Fill     PatternKind
	Symmetry Symmetry

	Color      RGBA
	BrushSize  float64
	LineWeight float64
	Opacity    float64
}

// DefaultConfig returns the startup configuration.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeBrush,
		Brush:      BrushSegments,
		Shape:      ShapeConcentric,
		Fill:       PatternSolid,
		Color:      Palette[1].Color,
		BrushSize:  40,
		LineWeight: 1.5,
		Opacity:    0.8,
	}
}

// Style derives the paint style for one operation.
func (c Config) Style() Style {
	return Style{
		Color:      c.Color,
		Opacity:    c.Opacity,
		LineWeight: c.LineWeight,
		BrushSize:  c.BrushSize,
	}
}

// Normalize clamps the numeric parameters into their permitted ranges and
// snaps line weight and opacity to their UI step sizes.
func (c Config) Normalize() Config {
	c.BrushSize = clampRange(c.BrushSize, MinBrushSize, MaxBrushSize)
	c.LineWeight = clampRange(snap(c.LineWeight, 0.5), MinLineWeight, MaxLineWeight)
	c.Opacity = clampRange(snap(c.Opacity, 0.1), MinOpacity, MaxOpacity)
	c.Symmetry.AxisDegrees = clampRange(c.Symmetry.AxisDegrees, 0, 180)
	return c
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func snap(v, step float64) float64 {
	return math.Round(v/step) * step
}
