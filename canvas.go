package geoart

import "math"

// Surface is the primitive sink the drawing engines paint onto.
// Canvas is the raster implementation; tests substitute recording
// implementations to observe emitted primitives.
type Surface interface {
	// StrokeLine strokes a round-capped line segment.
	StrokeLine(a, b Point, width float64, col RGBA)
	// FillCircle fills a disc.
	FillCircle(center Point, r float64, col RGBA)
	// StrokeCircle strokes a circle outline.
	StrokeCircle(center Point, r, width float64, col RGBA)
	// StrokeArc strokes a circular arc from angle a0 to a1 (radians).
	StrokeArc(center Point, r, a0, a1, width float64, col RGBA)
}

// Canvas renders primitives onto a Pixmap by direct coverage compositing:
// each primitive is a signed-distance test over its bounding box with a
// one-pixel coverage falloff at the edge, composited source-over.
type Canvas struct {
	pix *Pixmap
}

// NewCanvas creates a canvas drawing onto the given pixmap.
func NewCanvas(pix *Pixmap) *Canvas {
	return &Canvas{pix: pix}
}

// Pixmap returns the underlying pixel buffer.
func (c *Canvas) Pixmap() *Pixmap {
	return c.pix
}

var _ Surface = (*Canvas)(nil)

// StrokeLine strokes a round-capped segment from a to b. A zero-length
// segment degenerates to a filled dot of the stroke radius.
func (c *Canvas) StrokeLine(a, b Point, width float64, col RGBA) {
	if col.A <= 0 || width <= 0 {
		return
	}
	half := width / 2

	x0 := int(math.Floor(math.Min(a.X, b.X) - half - 1))
	x1 := int(math.Ceil(math.Max(a.X, b.X) + half + 1))
	y0 := int(math.Floor(math.Min(a.Y, b.Y) - half - 1))
	y1 := int(math.Ceil(math.Max(a.Y, b.Y) + half + 1))

	d := b.Sub(a)
	lenSq := d.Dot(d)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := Pt(float64(x)+0.5, float64(y)+0.5)
			// Closest point on the segment.
			t := 0.0
			if lenSq > 0 {
				t = p.Sub(a).Dot(d) / lenSq
				t = math.Max(0, math.Min(1, t))
			}
			dist := p.Distance(a.Add(d.Mul(t)))
			c.coverPixel(x, y, dist-half, col)
		}
	}
}

// FillCircle fills a disc of radius r around center.
func (c *Canvas) FillCircle(center Point, r float64, col RGBA) {
	if col.A <= 0 || r <= 0 {
		return
	}
	x0 := int(math.Floor(center.X - r - 1))
	x1 := int(math.Ceil(center.X + r + 1))
	y0 := int(math.Floor(center.Y - r - 1))
	y1 := int(math.Ceil(center.Y + r + 1))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := Pt(float64(x)+0.5, float64(y)+0.5)
			c.coverPixel(x, y, p.Distance(center)-r, col)
		}
	}
}

// StrokeCircle strokes the outline of a circle of radius r around center.
func (c *Canvas) StrokeCircle(center Point, r, width float64, col RGBA) {
	if col.A <= 0 || width <= 0 || r <= 0 {
		return
	}
	half := width / 2
	outer := r + half
	x0 := int(math.Floor(center.X - outer - 1))
	x1 := int(math.Ceil(center.X + outer + 1))
	y0 := int(math.Floor(center.Y - outer - 1))
	y1 := int(math.Ceil(center.Y + outer + 1))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := Pt(float64(x)+0.5, float64(y)+0.5)
			dist := math.Abs(p.Distance(center)-r) - half
			c.coverPixel(x, y, dist, col)
		}
	}
}

// StrokeArc strokes the arc of a circle between angles a0 and a1 as a
// polyline of round-capped segments. Angles are in radians; the arc runs
// from a0 toward a1 in the positive direction.
func (c *Canvas) StrokeArc(center Point, r, a0, a1, width float64, col RGBA) {
	if col.A <= 0 || width <= 0 || r <= 0 {
		return
	}
	span := a1 - a0
	if span == 0 {
		return
	}
	// Segment length around 2px keeps the polyline visually smooth.
	steps := int(math.Ceil(math.Abs(span) * r / 2))
	if steps < 2 {
		steps = 2
	}
	prev := center.Polar(a0, r)
	for i := 1; i <= steps; i++ {
		a := a0 + span*float64(i)/float64(steps)
		next := center.Polar(a, r)
		c.StrokeLine(prev, next, width, col)
		prev = next
	}
}

// coverPixel composites col onto (x, y) with coverage derived from the
// signed distance to the primitive edge: fully inside at dist <= -0.5,
// fully outside at dist >= 0.5, linear in between.
func (c *Canvas) coverPixel(x, y int, dist float64, col RGBA) {
	if dist >= 0.5 {
		return
	}
	cov := 1.0
	if dist > -0.5 {
		cov = 0.5 - dist
	}
	c.pix.BlendPixel(x, y, col.WithAlpha(col.A*cov))
}
