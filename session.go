package geoart

import (
	"image"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Session is the interaction core of the drawing surface. It owns the
// raster, classifies pointer gestures by the active mode, expands points
// through the symmetry transform, routes them into the drawing engines,
// and snapshots the raster into history at every commit.
//
// A session is single-threaded: the host shell delivers pointer events
// and animation ticks from one goroutine.
type Session struct {
	pix     *Pixmap
	cv      *Canvas
	cfg     Config
	history *History
	rng     *rand.Rand
	center  Point

	// Gesture state, captured at pointer-down so mid-gesture config
	// changes only apply to the next gesture.
	holding   bool
	gestureID string
	dirty     bool
	mode      Mode
	brush     BrushMode
	shape     ShapeMode
	style     Style
	sym       Symmetry
	bleedOn   bool

	// Path state is tracked per symmetry branch: the mirrored branch
	// threads its own reflected predecessor point, so the mirrored
	// stroke is the true reflection of the real one.
	branches int
	last     [2]Point
	bleeds   [2]*Bleed
}

// NewSession creates a session with a raster of the given fixed size,
// cleared to the background color, and captures the baseline snapshot.
func NewSession(width, height int) *Session {
	pix := NewPixmap(width, height)
	pix.Clear(Background)

	s := &Session{
		pix:     pix,
		cv:      NewCanvas(pix),
		cfg:     DefaultConfig(),
		history: NewHistory(width, height),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		center:  Pt(float64(width)/2, float64(height)/2),
	}
	s.history.Push(pix)
	return s
}

// Config returns the current configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// SetConfig replaces the configuration after normalizing it. A gesture
// already in progress keeps the parameters it started with.
func (s *Session) SetConfig(cfg Config) {
	s.cfg = cfg.Normalize()
}

// Pixmap returns the live raster.
func (s *Session) Pixmap() *Pixmap {
	return s.pix
}

// Image exposes the live raster as an image.Image for display.
func (s *Session) Image() image.Image {
	return s.pix
}

// Width returns the raster width.
func (s *Session) Width() int { return s.pix.Width() }

// Height returns the raster height.
func (s *Session) Height() int { return s.pix.Height() }

// Holding reports whether a gesture is in progress.
func (s *Session) Holding() bool {
	return s.holding
}

// CanUndo reports whether an undo is currently possible.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// History returns the snapshot history.
func (s *Session) History() *History {
	return s.history
}

// PointerDown starts a gesture at viewport coordinates (x, y).
// Fill and plain shape stamps complete (and commit) immediately; brush,
// blend and bleed gestures accumulate until PointerUp.
func (s *Session) PointerDown(x, y float64) {
	if s.holding {
		return
	}
	cfg := s.cfg.Normalize()

	s.holding = true
	s.gestureID = uuid.NewString()
	s.mode = cfg.Mode
	s.brush = cfg.Brush
	s.shape = cfg.Shape
	s.style = cfg.Style()
	s.sym = cfg.Symmetry
	s.bleedOn = cfg.Bleed && (cfg.Mode == ModeBrush || cfg.Mode == ModeShape)

	pts := s.sym.Branches(Pt(x, y), s.center)
	s.branches = len(pts)
	for i, bp := range pts {
		s.last[i] = bp
	}

	Logger().Debug("gesture start",
		slog.String("gesture", s.gestureID),
		slog.Int("mode", int(s.mode)),
		slog.Bool("bleed", s.bleedOn),
		slog.Int("branches", s.branches))

	switch {
	case s.mode == ModeFill:
		src := s.fillSource(cfg)
		for _, bp := range pts {
			if FloodFill(s.pix, bp, src) {
				s.dirty = true
			}
		}
		s.commit()
	case s.bleedOn:
		for i, bp := range pts {
			s.bleeds[i] = NewBleed(bp, s.style.BrushSize)
		}
	case s.mode == ModeShape:
		for _, bp := range pts {
			DrawStamp(s.cv, s.shape, bp, s.style)
		}
		s.dirty = true
		s.commit()
	}
}

// PointerMove continues the gesture at (x, y). Without a held gesture it
// is a no-op.
func (s *Session) PointerMove(x, y float64) {
	if !s.holding {
		return
	}
	pts := s.sym.Branches(Pt(x, y), s.center)

	if s.bleedOn {
		for i := range pts {
			s.bleeds[i].Reposition(pts[i])
			s.last[i] = pts[i]
		}
		return
	}

	switch s.mode {
	case ModeBrush:
		for i := range pts {
			DrawStroke(s.cv, s.brush, s.last[i], pts[i], s.style, s.rng)
			s.last[i] = pts[i]
		}
		s.dirty = true
	case ModeBlend:
		for i := range pts {
			Smudge(s.pix, s.last[i], pts[i], s.style)
			s.last[i] = pts[i]
		}
		s.dirty = true
	}
}

// PointerUp ends the gesture and commits any accumulated raster changes.
func (s *Session) PointerUp() {
	if !s.holding {
		return
	}
	s.holding = false
	s.bleeds = [2]*Bleed{}
	s.commit()

	Logger().Debug("gesture end", slog.String("gesture", s.gestureID))
}

// Tick advances the bleed animation by one frame and reports whether any
// pixels changed. Outside a held bleed gesture it is a no-op, so the
// driver may keep calling it unconditionally; cancellation is simply the
// hold ending.
func (s *Session) Tick() bool {
	if !s.holding || !s.bleedOn {
		return false
	}
	changed := false
	for i := 0; i < s.branches; i++ {
		b := s.bleeds[i]
		crossed := b.Step()
		if s.mode == ModeShape {
			for _, r := range crossed {
				for k := 0; k < 8; k++ {
					a := float64(k) * math.Pi / 4
					DrawStamp(s.cv, s.shape, b.Origin().Polar(a, r), s.style)
				}
				changed = true
			}
		} else {
			b.DrawBleedRing(s.cv, s.brush, s.style, s.rng)
			changed = true
		}
	}
	if changed {
		s.dirty = true
	}
	return changed
}

// Undo restores the raster to the previous snapshot. With only the
// baseline remaining it is a no-op. The restore is a synchronous pixel
// copy, so consecutive undos never overlap.
func (s *Session) Undo() bool {
	return s.history.Undo(s.pix)
}

// ClearCanvas wipes the raster to the background color and resets the
// history to a fresh baseline of the cleared canvas.
func (s *Session) ClearCanvas() {
	s.pix.Clear(Background)
	s.dirty = false
	s.history.Reset()
	s.history.Push(s.pix)

	Logger().Debug("canvas cleared")
}

// fillSource builds the flood fill source for the configured pattern.
func (s *Session) fillSource(cfg Config) FillSource {
	if cfg.Fill == PatternSolid {
		return SolidSource{C: s.style.Tint()}
	}
	return TileSource{Tile: NewPatternTile(cfg.Fill, s.style)}
}

// commit snapshots the raster if the gesture changed it.
func (s *Session) commit() {
	if !s.dirty {
		return
	}
	s.history.Push(s.pix)
	s.dirty = false
}
