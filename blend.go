package geoart

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Smudge drags existing pixels along the motion vector and softens the
// seam with a radial gradient of the sampled destination color.
//
// The block of pixels around the previous position (radius BrushSize*0.5,
// clipped to the canvas) is re-composited offset by half the motion
// vector at reduced opacity. Sub-pixel motion and fully clipped sample
// regions are silent no-ops.
func Smudge(pix *Pixmap, from, to Point, style Style) {
	motion := to.Sub(from)
	if motion.Length() < 1 {
		return
	}

	r := style.BrushSize * 0.5
	rect := image.Rect(
		int(math.Floor(from.X-r)), int(math.Floor(from.Y-r)),
		int(math.Ceil(from.X+r)), int(math.Ceil(from.Y+r)),
	).Intersect(pix.Bounds())
	if rect.Empty() {
		return
	}

	// Snapshot the sample block first so the smear reads pre-operation
	// pixels even where source and destination overlap.
	block := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	xdraw.Copy(block, image.Point{}, pix, rect, xdraw.Src, nil)

	offX := int(math.Round(motion.X * 0.5))
	offY := int(math.Round(motion.Y * 0.5))
	alphaScale := style.Opacity * 0.8

	for y := 0; y < rect.Dy(); y++ {
		for x := 0; x < rect.Dx(); x++ {
			c := FromColor(block.RGBAAt(x, y))
			pix.BlendPixel(rect.Min.X+x+offX, rect.Min.Y+y+offY, c.WithAlpha(c.A*alphaScale))
		}
	}

	softenSeam(pix, to, r)
}

// softenSeam paints a radial gradient of the color sampled at the
// destination point: full sampled alpha at the center fading to
// transparent at the blend radius.
func softenSeam(pix *Pixmap, at Point, radius float64) {
	if radius <= 0 {
		return
	}
	c := pix.GetPixel(int(math.Round(at.X)), int(math.Round(at.Y)))
	if c.A <= 0 {
		// Destination outside the canvas; nothing sampled, nothing drawn.
		return
	}

	x0 := int(math.Floor(at.X - radius))
	x1 := int(math.Ceil(at.X + radius))
	y0 := int(math.Floor(at.Y - radius))
	y1 := int(math.Ceil(at.Y + radius))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t := Pt(float64(x)+0.5, float64(y)+0.5).Distance(at) / radius
			if t >= 1 {
				continue
			}
			pix.BlendPixel(x, y, c.WithAlpha(c.A*(1-t)))
		}
	}
}
