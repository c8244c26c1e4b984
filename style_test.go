package geoart

import "testing"

func TestStyleTint(t *testing.T) {
	s := Style{Color: Hex("#6bb5c7"), Opacity: 0.6}
	got := s.Tint()
	if got.A != 0.6 {
		t.Errorf("Tint alpha = %v, want 0.6", got.A)
	}
	if got.R != s.Color.R || got.G != s.Color.G || got.B != s.Color.B {
		t.Error("Tint changed the color channels")
	}
}

func TestStyleFade(t *testing.T) {
	s := Style{Color: Hex("#6bb5c7"), Opacity: 0.8}
	got := s.Fade(0.5)
	if absDiff(got.A, 0.4) > 1e-9 {
		t.Errorf("Fade(0.5) alpha = %v, want 0.4", got.A)
	}
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "clamps brush size",
			in:   Config{BrushSize: 500, LineWeight: 1.5, Opacity: 0.5},
			want: Config{BrushSize: MaxBrushSize, LineWeight: 1.5, Opacity: 0.5},
		},
		{
			name: "snaps line weight to half steps",
			in:   Config{BrushSize: 40, LineWeight: 2.3, Opacity: 0.5},
			want: Config{BrushSize: 40, LineWeight: 2.5, Opacity: 0.5},
		},
		{
			name: "snaps opacity to tenth steps",
			in:   Config{BrushSize: 40, LineWeight: 1.5, Opacity: 0.74},
			want: Config{BrushSize: 40, LineWeight: 1.5, Opacity: 0.7},
		},
		{
			name: "raises parameters to their minimums",
			in:   Config{BrushSize: 1, LineWeight: 0.1, Opacity: 0},
			want: Config{BrushSize: MinBrushSize, LineWeight: MinLineWeight, Opacity: MinOpacity},
		},
		{
			name: "clamps symmetry axis",
			in:   Config{BrushSize: 40, LineWeight: 1.5, Opacity: 0.5, Symmetry: Symmetry{AxisDegrees: 270}},
			want: Config{BrushSize: 40, LineWeight: 1.5, Opacity: 0.5, Symmetry: Symmetry{AxisDegrees: 180}},
		},
	}

	const tolerance = 1e-9
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if absDiff(got.BrushSize, tt.want.BrushSize) > tolerance {
				t.Errorf("BrushSize = %v, want %v", got.BrushSize, tt.want.BrushSize)
			}
			if absDiff(got.LineWeight, tt.want.LineWeight) > tolerance {
				t.Errorf("LineWeight = %v, want %v", got.LineWeight, tt.want.LineWeight)
			}
			if absDiff(got.Opacity, tt.want.Opacity) > tolerance {
				t.Errorf("Opacity = %v, want %v", got.Opacity, tt.want.Opacity)
			}
			if absDiff(got.Symmetry.AxisDegrees, tt.want.Symmetry.AxisDegrees) > tolerance {
				t.Errorf("AxisDegrees = %v, want %v", got.Symmetry.AxisDegrees, tt.want.Symmetry.AxisDegrees)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg != cfg.Normalize() {
		t.Error("default configuration is not already normalized")
	}
	if cfg.Mode != ModeBrush || cfg.Brush != BrushSegments {
		t.Errorf("default mode = %v/%v, want brush/segments", cfg.Mode, cfg.Brush)
	}
	if cfg.Color.Hex() != "#6bb5c7" {
		t.Errorf("default color = %s, want #6bb5c7", cfg.Color.Hex())
	}
}
