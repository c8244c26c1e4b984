package geoart

// recorder is a Surface that records every primitive it receives, so
// engine tests can assert on geometry without rasterizing.
type recorder struct {
	lines   []recordedLine
	discs   []recordedDisc
	circles []recordedCircle
	arcs    []recordedArc
}

type recordedLine struct {
	a, b  Point
	width float64
	col   RGBA
}

type recordedDisc struct {
	center Point
	r      float64
	col    RGBA
}

type recordedCircle struct {
	center Point
	r      float64
	width  float64
	col    RGBA
}

type recordedArc struct {
	center Point
	r      float64
	a0, a1 float64
	width  float64
	col    RGBA
}

var _ Surface = (*recorder)(nil)

func (r *recorder) StrokeLine(a, b Point, width float64, col RGBA) {
	r.lines = append(r.lines, recordedLine{a, b, width, col})
}

func (r *recorder) FillCircle(center Point, radius float64, col RGBA) {
	r.discs = append(r.discs, recordedDisc{center, radius, col})
}

func (r *recorder) StrokeCircle(center Point, radius, width float64, col RGBA) {
	r.circles = append(r.circles, recordedCircle{center, radius, width, col})
}

func (r *recorder) StrokeArc(center Point, radius, a0, a1, width float64, col RGBA) {
	r.arcs = append(r.arcs, recordedArc{center, radius, a0, a1, width, col})
}

func (r *recorder) total() int {
	return len(r.lines) + len(r.discs) + len(r.circles) + len(r.arcs)
}
