package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/geoart/geoart"
)

// Canvas dimensions are fixed at startup for the session lifetime.
const (
	canvasWidth  = 1024
	canvasHeight = 640
)

// frameInterval drives the bleed animation at roughly 60fps.
const frameInterval = 16 * time.Millisecond

// RunApp builds the window and runs the application until it is closed.
func RunApp() {
	a := app.New()
	win := a.NewWindow("Geometric Art")

	session := geoart.NewSession(canvasWidth, canvasHeight)
	paint := NewPaintWidget(session)
	toolbar := NewToolbar(session, paint, win)

	win.SetContent(container.NewBorder(toolbar.Root(), nil, nil, nil, paint))

	win.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyZ,
		Modifier: fyne.KeyModifierControl,
	}, func(fyne.Shortcut) {
		if session.Undo() {
			paint.Refresh()
		}
	})
	win.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		if e.Name == fyne.KeyTab {
			toolbar.ToggleVisible()
		}
	})

	done := make(chan struct{})
	win.SetOnClosed(func() { close(done) })
	go driveBleed(session, paint, done)

	win.Resize(fyne.NewSize(canvasWidth, canvasHeight+120))
	win.ShowAndRun()
}

// driveBleed is the frame scheduler for the bleed animator. Ticks are
// delivered on the UI thread; the session ignores them unless a bleed
// gesture is held, so the loop needs no state of its own.
func driveBleed(session *geoart.Session, paint *PaintWidget, done <-chan struct{}) {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			fyne.Do(func() {
				if session.Tick() {
					paint.Refresh()
				}
			})
		}
	}
}
