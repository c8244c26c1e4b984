package geoart

import (
	"math"
	"testing"
)

func absDiff(a, b float64) float64 {
	return math.Abs(a - b)
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"six digit", "#6bb5c7", RGBA{R: 0x6b / 255.0, G: 0xb5 / 255.0, B: 0xc7 / 255.0, A: 1}},
		{"no hash", "0a0a0a", RGBA{R: 10 / 255.0, G: 10 / 255.0, B: 10 / 255.0, A: 1}},
		{"short rgb", "#f00", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"short rgba", "#f008", RGBA{R: 1, G: 0, B: 0, A: 0x88 / 255.0}},
		{"eight digit", "#00ff0080", RGBA{R: 0, G: 1, B: 0, A: 0x80 / 255.0}},
		{"uppercase", "#FFFFFF", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"malformed falls back to black", "zzz-not-hex", RGBA{R: 0, G: 0, B: 0, A: 1}},
		{"empty", "", RGBA{R: 0, G: 0, B: 0, A: 1}},
	}

	const tolerance = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.in)
			if absDiff(got.R, tt.want.R) > tolerance ||
				absDiff(got.G, tt.want.G) > tolerance ||
				absDiff(got.B, tt.want.B) > tolerance ||
				absDiff(got.A, tt.want.A) > tolerance {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexRoundtrip(t *testing.T) {
	for _, in := range []string{"#6bb5c7", "#0a0a0a", "#ffffff", "#000000", "#c75b39"} {
		if got := Hex(in).Hex(); got != in {
			t.Errorf("Hex(%q).Hex() = %q", in, got)
		}
	}
}

func TestOver(t *testing.T) {
	tests := []struct {
		name string
		src  RGBA
		dst  RGBA
		want RGBA
	}{
		{
			name: "opaque source replaces",
			src:  RGB(1, 0, 0),
			dst:  RGB(0, 0, 1),
			want: RGB(1, 0, 0),
		},
		{
			name: "transparent source keeps destination",
			src:  RGBA{R: 1, A: 0},
			dst:  RGB(0, 1, 0),
			want: RGB(0, 1, 0),
		},
		{
			name: "half alpha over opaque stays opaque",
			src:  RGBA{R: 1, A: 0.5},
			dst:  RGB(0, 0, 0),
			want: RGBA{R: 0.5, A: 1},
		},
	}

	const tolerance = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.src.Over(tt.dst)
			if absDiff(got.R, tt.want.R) > tolerance ||
				absDiff(got.G, tt.want.G) > tolerance ||
				absDiff(got.B, tt.want.B) > tolerance ||
				absDiff(got.A, tt.want.A) > tolerance {
				t.Errorf("Over() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	if len(Palette) != 12 {
		t.Fatalf("palette has %d colors, want 12", len(Palette))
	}
	seen := map[string]bool{}
	for _, p := range Palette {
		if p.Name == "" {
			t.Error("palette entry with empty name")
		}
		if seen[p.Name] {
			t.Errorf("duplicate palette name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Color.A != 1 {
			t.Errorf("palette color %q is not opaque", p.Name)
		}
	}

	if c, ok := PaletteColorByName("teal"); !ok || c.Hex() != "#6bb5c7" {
		t.Errorf("PaletteColorByName(teal) = %v, %v", c, ok)
	}
	if _, ok := PaletteColorByName("nope"); ok {
		t.Error("PaletteColorByName(nope) reported ok")
	}
}

func TestBackground(t *testing.T) {
	if got := Background.Hex(); got != "#0a0a0a" {
		t.Errorf("Background = %s, want #0a0a0a", got)
	}
}
