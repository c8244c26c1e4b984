package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/geoart/geoart"
)

// PaintWidget displays the session raster and feeds pointer events into
// it. The widget is sized to the raster, which is fixed for the session
// lifetime.
type PaintWidget struct {
	widget.BaseWidget
	session *geoart.Session
	raster  *canvas.Raster
}

var (
	_ fyne.Widget       = (*PaintWidget)(nil)
	_ fyne.Draggable    = (*PaintWidget)(nil)
	_ desktop.Mouseable = (*PaintWidget)(nil)
	_ desktop.Hoverable = (*PaintWidget)(nil)
)

// NewPaintWidget creates the paint surface for a session.
func NewPaintWidget(s *geoart.Session) *PaintWidget {
	w := &PaintWidget{session: s}
	w.raster = canvas.NewRaster(func(_, _ int) image.Image {
		return s.Image()
	})
	w.raster.ScaleMode = canvas.ImageScalePixels
	w.ExtendBaseWidget(w)
	return w
}

// CreateRenderer implements fyne.Widget.
func (w *PaintWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(w.raster)
}

// MinSize pins the widget to the raster dimensions.
func (w *PaintWidget) MinSize() fyne.Size {
	return fyne.NewSize(float32(w.session.Width()), float32(w.session.Height()))
}

// MouseDown starts a gesture.
func (w *PaintWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.session.PointerDown(float64(e.Position.X), float64(e.Position.Y))
	w.Refresh()
}

// MouseUp ends the gesture.
func (w *PaintWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.session.PointerUp()
	w.Refresh()
}

// Dragged continues the gesture while the button is held.
func (w *PaintWidget) Dragged(e *fyne.DragEvent) {
	w.session.PointerMove(float64(e.Position.X), float64(e.Position.Y))
	w.Refresh()
}

// DragEnd commits the gesture when the drag is released.
func (w *PaintWidget) DragEnd() {
	w.session.PointerUp()
	w.Refresh()
}

// MouseIn implements desktop.Hoverable.
func (w *PaintWidget) MouseIn(*desktop.MouseEvent) {}

// MouseMoved implements desktop.Hoverable. Motion with the button held
// arrives through Dragged instead.
func (w *PaintWidget) MouseMoved(*desktop.MouseEvent) {}

// MouseOut ends any gesture that leaves the surface.
func (w *PaintWidget) MouseOut() {
	if w.session.Holding() {
		w.session.PointerUp()
		w.Refresh()
	}
}
