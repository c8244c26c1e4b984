package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/geoart/geoart"
)

// colorSwatch is a clickable palette color.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func()
}

func newColorSwatch(c color.Color, tapped func()) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped()
	}
}

// Toolbar is the control panel: mode and submode selection, palette,
// parameter sliders, symmetry, undo/clear and export. It owns the
// configuration and writes it into the session on every change.
type Toolbar struct {
	session *geoart.Session
	paint   *PaintWidget
	win     fyne.Window

	root fyne.CanvasObject
}

// NewToolbar builds the control panel for a session.
func NewToolbar(session *geoart.Session, paint *PaintWidget, win fyne.Window) *Toolbar {
	t := &Toolbar{session: session, paint: paint, win: win}
	t.root = t.build()
	return t
}

// Root returns the toolbar's canvas object.
func (t *Toolbar) Root() fyne.CanvasObject {
	return t.root
}

// ToggleVisible hides or shows the panel.
func (t *Toolbar) ToggleVisible() {
	if t.root.Visible() {
		t.root.Hide()
	} else {
		t.root.Show()
	}
}

// apply mutates the configuration through fn and stores it back.
func (t *Toolbar) apply(fn func(*geoart.Config)) {
	cfg := t.session.Config()
	fn(&cfg)
	t.session.SetConfig(cfg)
}

func (t *Toolbar) build() fyne.CanvasObject {
	cfg := t.session.Config()

	modes := widget.NewRadioGroup([]string{"brush", "shape", "blend", "fill"}, func(sel string) {
		t.apply(func(c *geoart.Config) {
			switch sel {
			case "brush":
				c.Mode = geoart.ModeBrush
			case "shape":
				c.Mode = geoart.ModeShape
			case "blend":
				c.Mode = geoart.ModeBlend
			case "fill":
				c.Mode = geoart.ModeFill
			}
		})
	})
	modes.Horizontal = true
	modes.SetSelected("brush")

	bleed := widget.NewCheck("bleed", func(on bool) {
		t.apply(func(c *geoart.Config) { c.Bleed = on })
	})

	brushSel := widget.NewSelect(modeNames(), func(sel string) {
		t.apply(func(c *geoart.Config) {
			for _, m := range geoart.BrushModes {
				if m.String() == sel {
					c.Brush = m
				}
			}
		})
	})
	brushSel.SetSelected(cfg.Brush.String())

	shapeSel := widget.NewSelect(shapeNames(), func(sel string) {
		t.apply(func(c *geoart.Config) {
			for _, m := range geoart.ShapeModes {
				if m.String() == sel {
					c.Shape = m
				}
			}
		})
	})
	shapeSel.SetSelected(cfg.Shape.String())

	patternSel := widget.NewSelect(patternNames(), func(sel string) {
		t.apply(func(c *geoart.Config) {
			for _, k := range geoart.PatternKinds {
				if k.String() == sel {
					c.Fill = k
				}
			}
		})
	})
	patternSel.SetSelected(cfg.Fill.String())

	swatches := make([]fyne.CanvasObject, 0, len(geoart.Palette))
	for _, p := range geoart.Palette {
		col := p.Color
		swatches = append(swatches, newColorSwatch(col.Color(), func() {
			t.apply(func(c *geoart.Config) { c.Color = col })
		}))
	}

	size := widget.NewSlider(geoart.MinBrushSize, geoart.MaxBrushSize)
	size.SetValue(cfg.BrushSize)
	size.OnChanged = func(v float64) {
		t.apply(func(c *geoart.Config) { c.BrushSize = v })
	}

	weight := widget.NewSlider(geoart.MinLineWeight, geoart.MaxLineWeight)
	weight.Step = 0.5
	weight.SetValue(cfg.LineWeight)
	weight.OnChanged = func(v float64) {
		t.apply(func(c *geoart.Config) { c.LineWeight = v })
	}

	opacity := widget.NewSlider(geoart.MinOpacity, geoart.MaxOpacity)
	opacity.Step = 0.1
	opacity.SetValue(cfg.Opacity)
	opacity.OnChanged = func(v float64) {
		t.apply(func(c *geoart.Config) { c.Opacity = v })
	}

	mirror := widget.NewCheck("mirror", func(on bool) {
		t.apply(func(c *geoart.Config) {
			if on {
				c.Symmetry.Mode = geoart.SymmetryMirror
			} else {
				c.Symmetry.Mode = geoart.SymmetryNone
			}
		})
	})
	axis := widget.NewSlider(0, 180)
	axis.SetValue(90)
	axis.OnChanged = func(v float64) {
		t.apply(func(c *geoart.Config) { c.Symmetry.AxisDegrees = v })
	}
	t.apply(func(c *geoart.Config) { c.Symmetry.AxisDegrees = 90 })

	undo := widget.NewButton("Undo", func() {
		if t.session.Undo() {
			t.paint.Refresh()
		}
	})
	clear := widget.NewButton("Clear", func() {
		t.session.ClearCanvas()
		t.paint.Refresh()
	})

	export := widget.NewButton("Export", func() { t.showExport() })

	slider := func(s *widget.Slider) fyne.CanvasObject {
		return container.New(layout.NewGridWrapLayout(fyne.NewSize(110, 35)), s)
	}

	top := container.NewHBox(
		modes, bleed,
		widget.NewSeparator(),
		brushSel, shapeSel, patternSel,
		widget.NewSeparator(),
		widget.NewLabel("size"), slider(size),
		widget.NewLabel("weight"), slider(weight),
		widget.NewLabel("opacity"), slider(opacity),
	)
	bottom := container.NewHBox(
		container.NewHBox(swatches...),
		widget.NewSeparator(),
		mirror, widget.NewLabel("axis"), slider(axis),
		layout.NewSpacer(),
		undo, clear, export,
	)
	return container.NewVBox(top, bottom)
}

// showExport asks for a destination and writes the matching format by
// file extension (.png, .jpg or .pdf).
func (t *Toolbar) showExport() {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil || w == nil {
			return
		}
		defer func() {
			if cerr := w.Close(); cerr != nil {
				geoart.Logger().Warn("export close", "err", cerr)
			}
		}()

		switch w.URI().Extension() {
		case ".jpg", ".jpeg":
			err = t.session.EncodeJPG(w, geoart.JPEGQuality)
		case ".pdf":
			err = t.session.EncodePDF(w)
		default:
			err = t.session.EncodePNG(w)
		}
		if err != nil {
			dialog.ShowError(err, t.win)
		}
	}, t.win)
	d.SetFileName(geoart.ExportBaseName + ".png")
	d.Show()
}

func modeNames() []string {
	names := make([]string, len(geoart.BrushModes))
	for i, m := range geoart.BrushModes {
		names[i] = m.String()
	}
	return names
}

func shapeNames() []string {
	names := make([]string, len(geoart.ShapeModes))
	for i, m := range geoart.ShapeModes {
		names[i] = m.String()
	}
	return names
}

func patternNames() []string {
	names := make([]string, len(geoart.PatternKinds))
	for i, k := range geoart.PatternKinds {
		names[i] = k.String()
	}
	return names
}
