package geoart

import "math"

// FillSource supplies the color written to each filled pixel.
type FillSource interface {
	At(x, y int) (r, g, b, a uint8)
}

// SolidSource fills with one flat color.
type SolidSource struct {
	C RGBA
}

// At implements FillSource.
func (s SolidSource) At(x, y int) (r, g, b, a uint8) {
	return uint8(clamp255(s.C.R * 255)),
		uint8(clamp255(s.C.G * 255)),
		uint8(clamp255(s.C.B * 255)),
		uint8(clamp255(s.C.A * 255))
}

// FloodFill fills the maximal 4-connected region of pixels exactly
// matching the seed pixel's RGBA quadruple, writing colors from src.
// It reports whether any pixel changed.
//
// The region match is byte-exact with no tolerance. Visited pixels are
// tracked explicitly so already-filled pixels that happen to match the
// seed are never reprocessed, bounding the scan at O(width*height). The
// pixel buffer is mutated in memory in a single pass.
func FloodFill(pix *Pixmap, seed Point, src FillSource) bool {
	w, h := pix.Width(), pix.Height()
	sx := int(math.Round(seed.X))
	sy := int(math.Round(seed.Y))
	if sx < 0 || sx >= w || sy < 0 || sy >= h {
		return false
	}

	data := pix.Data()
	si := (sy*w + sx) * 4
	tr, tg, tb, ta := data[si], data[si+1], data[si+2], data[si+3]

	// Filling a solid region with its own color is a full-canvas scan
	// for nothing; skip it outright.
	if s, ok := src.(SolidSource); ok {
		fr, fg, fb, fa := s.At(sx, sy)
		if fr == tr && fg == tg && fb == tb && fa == ta {
			return false
		}
	}

	visited := make([]uint64, (w*h+63)/64)
	stack := make([]int, 0, 1024)
	stack = append(stack, sy*w+sx)
	changed := false

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[idx/64]&(1<<(idx%64)) != 0 {
			continue
		}
		visited[idx/64] |= 1 << (idx % 64)

		i := idx * 4
		if data[i] != tr || data[i+1] != tg || data[i+2] != tb || data[i+3] != ta {
			continue
		}

		x, y := idx%w, idx/w
		fr, fg, fb, fa := src.At(x, y)
		if data[i] != fr || data[i+1] != fg || data[i+2] != fb || data[i+3] != fa {
			changed = true
		}
		data[i], data[i+1], data[i+2], data[i+3] = fr, fg, fb, fa

		if x > 0 {
			stack = append(stack, idx-1)
		}
		if x < w-1 {
			stack = append(stack, idx+1)
		}
		if y > 0 {
			stack = append(stack, idx-w)
		}
		if y < h-1 {
			stack = append(stack, idx+w)
		}
	}
	return changed
}
