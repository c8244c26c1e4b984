// Package geoart is the rendering core of an interactive drawing surface
// for procedurally generated geometric marks.
//
// # Overview
//
// A Session owns a fixed-size RGBA raster and turns pointer gestures into
// painted pixels: brush strokes parameterized by travel distance, one-shot
// shape stamps, time-based radial "bleed" growth while the pointer is
// held, pixel smudging, and 4-connected flood fills with solid or tiled
// pattern sources. Every input point may be mirrored about a configurable
// axis before it reaches the engines, and every committed interaction is
// snapshotted into a bounded undo history.
//
// # Quick Start
//
//	s := geoart.NewSession(800, 600)
//
//	cfg := s.Config()
//	cfg.Mode = geoart.ModeBrush
//	cfg.Brush = geoart.BrushDots
//	s.SetConfig(cfg)
//
//	s.PointerDown(100, 100)
//	s.PointerMove(220, 160)
//	s.PointerUp()
//
//	s.SavePNG("geometric-art.png")
//
// # Concurrency
//
// A session is single-threaded: the host shell delivers pointer events
// and per-frame Tick calls from one goroutine. The bleed animation is
// cooperative; Tick is a no-op once the hold ends.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Angles
// are in radians except for the symmetry axis, which the UI configures
// in degrees.
package geoart
