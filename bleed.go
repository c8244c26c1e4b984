package geoart

import (
	"math"
	"math/rand"
)

// Bleed tuning constants. The radius grows by a fixed step per frame and
// is capped at a multiple of the brush size; moving the pointer recenters
// the origin and dampens the radius for a trailing effect.
const (
	bleedStep          = 1.5
	bleedMaxFactor     = 4.0
	bleedMoveThreshold = 5.0
	bleedDamping       = 0.7
)

// Bleed is the per-gesture state of the radial bleed animation. It is
// created at pointer-down when bleed is enabled and discarded at release.
// The owner drives Step once per frame; cancellation is cooperative (the
// owner simply stops calling).
type Bleed struct {
	origin    Point
	radius    float64
	maxRadius float64
	// quantum is the stamp-placement spacing (half the brush size);
	// stamps fire when the radius crosses a quantum multiple.
	quantum float64
}

// NewBleed creates bleed state anchored at the pointer-down position.
func NewBleed(origin Point, brushSize float64) *Bleed {
	return &Bleed{
		origin:    origin,
		maxRadius: brushSize * bleedMaxFactor,
		quantum:   brushSize / 2,
	}
}

// Origin returns the current bleed center.
func (b *Bleed) Origin() Point {
	return b.origin
}

// Radius returns the current bleed radius.
func (b *Bleed) Radius() float64 {
	return b.radius
}

// MaxRadius returns the radius cap.
func (b *Bleed) MaxRadius() float64 {
	return b.maxRadius
}

// Step advances the radius by one frame increment, clamped to the cap.
// It returns the quantized radii crossed during this step, which is where
// shape stamps are placed; growth between quantum multiples returns none.
func (b *Bleed) Step() []float64 {
	prev := b.radius
	b.radius = math.Min(b.radius+bleedStep, b.maxRadius)
	if b.quantum <= 0 || b.radius == prev {
		return nil
	}
	var crossed []float64
	for q := math.Floor(prev/b.quantum) + 1; q*b.quantum <= b.radius; q++ {
		crossed = append(crossed, q*b.quantum)
	}
	return crossed
}

// Reposition recenters the bleed on the new pointer position when it has
// moved beyond the threshold, damping the radius to 70% of its previous
// value. Sub-threshold movement is ignored.
func (b *Bleed) Reposition(p Point) {
	if p.Distance(b.origin) <= bleedMoveThreshold {
		return
	}
	b.origin = p
	b.radius *= bleedDamping
}

// DrawBleedRing renders the ring form of a brush mode at the current
// bleed radius. Called every frame while a brush-mode bleed is held.
func (b *Bleed) DrawBleedRing(dst Surface, mode BrushMode, style Style, rng *rand.Rand) {
	if b.radius <= 0 {
		return
	}
	switch mode {
	case BrushSegments:
		b.ringSegments(dst, style)
	case BrushDots:
		b.ringDots(dst, style)
	case BrushRadials:
		b.ringRadials(dst, style)
	case BrushCrosshatch:
		b.ringCrosshatch(dst, style)
	case BrushStipple:
		b.ringStipple(dst, style, rng)
	case BrushFine:
		dst.StrokeCircle(b.origin, b.radius, style.LineWeight, style.Tint())
	}
}

// ringSegments draws 24 short arcs evenly spaced around the ring, each
// covering 60% of its slot.
func (b *Bleed) ringSegments(dst Surface, style Style) {
	col := style.Tint()
	slot := 2 * math.Pi / 24
	for i := 0; i < 24; i++ {
		a := float64(i) * slot
		dst.StrokeArc(b.origin, b.radius, a, a+slot*0.6, style.LineWeight, col)
	}
}

// ringDots draws concentric dot rings every 15px out to the current
// radius, dot count growing with the ring index.
func (b *Bleed) ringDots(dst Surface, style Style) {
	col := style.Tint()
	ring := 0
	for r := 15.0; r <= b.radius; r += 15 {
		ring++
		count := 8 * ring
		for i := 0; i < count; i++ {
			a := float64(i) * 2 * math.Pi / float64(count)
			dst.FillCircle(b.origin.Polar(a, r), style.LineWeight, col)
		}
	}
}

// ringRadials draws 16 short spokes whose tips ride the current radius.
func (b *Bleed) ringRadials(dst Surface, style Style) {
	col := style.Tint()
	inner := math.Max(0, b.radius-10)
	for i := 0; i < 16; i++ {
		a := float64(i) * math.Pi / 8
		dst.StrokeLine(b.origin.Polar(a, inner), b.origin.Polar(a, b.radius), style.LineWeight, col)
	}
}

// ringCrosshatch draws radius/8 radial ticks around the ring.
func (b *Bleed) ringCrosshatch(dst Surface, style Style) {
	col := style.Tint()
	n := int(b.radius / 8)
	if n == 0 {
		return
	}
	tickLen := style.BrushSize * 0.3
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / float64(n)
		drawTick(dst, b.origin.Polar(a, b.radius), a, tickLen, style.LineWeight, col)
	}
}

// ringStipple draws jittered three-dot clusters on concentric rings
// spaced 20px apart.
func (b *Bleed) ringStipple(dst Surface, style Style, rng *rand.Rand) {
	col := style.Tint()
	for r := 20.0; r <= b.radius; r += 20 {
		clusters := int(2 * math.Pi * r / 40)
		if clusters < 3 {
			clusters = 3
		}
		phase := rng.Float64() * 2 * math.Pi
		for i := 0; i < clusters; i++ {
			a := phase + float64(i)*2*math.Pi/float64(clusters)
			center := b.origin.Polar(a, r)
			for j := 0; j < 3; j++ {
				p := center
				p.X += (rng.Float64()*2 - 1) * 5
				p.Y += (rng.Float64()*2 - 1) * 5
				dotR := (0.25 + rng.Float64()*0.25) * style.LineWeight
				dst.FillCircle(p, dotR, col)
			}
		}
	}
}
