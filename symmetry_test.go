package geoart

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const coordTolerance = 1e-9

func pointsEqual(a, b Point) bool {
	return scalar.EqualWithinAbs(a.X, b.X, coordTolerance) &&
		scalar.EqualWithinAbs(a.Y, b.Y, coordTolerance)
}

func TestReflect(t *testing.T) {
	center := Pt(400, 300)
	tests := []struct {
		name string
		axis float64
		in   Point
		want Point
	}{
		{"vertical axis flips x", 90, Pt(100, 300), Pt(700, 300)},
		{"vertical axis on 800 wide canvas", 90, Pt(200, 300), Pt(600, 300)},
		{"vertical axis keeps y offset", 90, Pt(100, 100), Pt(700, 100)},
		{"horizontal axis flips y", 0, Pt(400, 100), Pt(400, 500)},
		{"diagonal axis swaps offsets", 45, Pt(500, 300), Pt(400, 400)},
		{"point on axis is fixed", 90, Pt(400, 50), Pt(400, 50)},
		{"center is fixed for any axis", 137, Pt(400, 300), Pt(400, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Symmetry{Mode: SymmetryMirror, AxisDegrees: tt.axis}
			got := s.Reflect(tt.in, center)
			if !pointsEqual(got, tt.want) {
				t.Errorf("Reflect(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestReflectIsInvolution(t *testing.T) {
	center := Pt(512, 320)
	for _, axis := range []float64{0, 30, 45, 90, 120, 180} {
		s := Symmetry{Mode: SymmetryMirror, AxisDegrees: axis}
		for _, p := range []Point{Pt(10, 20), Pt(800, 600), Pt(512, 1), Pt(0, 0)} {
			twice := s.Reflect(s.Reflect(p, center), center)
			if !pointsEqual(twice, p) {
				t.Errorf("axis %v: Reflect(Reflect(%v)) = %v", axis, p, twice)
			}
		}
	}
}

func TestBranches(t *testing.T) {
	center := Pt(400, 300)

	t.Run("none yields single branch", func(t *testing.T) {
		s := Symmetry{Mode: SymmetryNone, AxisDegrees: 90}
		got := s.Branches(Pt(100, 100), center)
		if len(got) != 1 || got[0] != Pt(100, 100) {
			t.Errorf("Branches = %v", got)
		}
		if s.BranchCount() != 1 {
			t.Errorf("BranchCount = %d", s.BranchCount())
		}
	})

	t.Run("mirror yields point then reflection", func(t *testing.T) {
		s := Symmetry{Mode: SymmetryMirror, AxisDegrees: 90}
		got := s.Branches(Pt(100, 100), center)
		if len(got) != 2 {
			t.Fatalf("Branches returned %d points", len(got))
		}
		if got[0] != Pt(100, 100) {
			t.Errorf("first branch = %v, want the input point", got[0])
		}
		if !pointsEqual(got[1], Pt(700, 100)) {
			t.Errorf("second branch = %v, want (700, 100)", got[1])
		}
		if s.BranchCount() != 2 {
			t.Errorf("BranchCount = %d", s.BranchCount())
		}
	})

	t.Run("axis point still yields two branches", func(t *testing.T) {
		s := Symmetry{Mode: SymmetryMirror, AxisDegrees: 90}
		got := s.Branches(Pt(400, 50), center)
		if len(got) != 2 {
			t.Fatalf("Branches returned %d points", len(got))
		}
		if !pointsEqual(got[0], got[1]) {
			t.Errorf("axis point branches diverge: %v vs %v", got[0], got[1])
		}
	})
}
