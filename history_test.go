package geoart

import "testing"

func solidPixmap(w, h int, c RGBA) *Pixmap {
	p := NewPixmap(w, h)
	p.Clear(c)
	return p
}

func TestHistoryUndoRestores(t *testing.T) {
	h := NewHistory(4, 4)
	pix := solidPixmap(4, 4, Background)
	h.Push(pix)

	pix.Clear(RGB(1, 0, 0))
	h.Push(pix)

	if !h.CanUndo() {
		t.Fatal("CanUndo = false with two snapshots")
	}
	if !h.Undo(pix) {
		t.Fatal("Undo returned false")
	}
	if got := pix.GetPixel(2, 2).Hex(); got != "#0a0a0a" {
		t.Errorf("restored pixel = %s, want #0a0a0a", got)
	}
	if h.Len() != 1 {
		t.Errorf("Len = %d after undo, want 1", h.Len())
	}
}

func TestHistoryFloor(t *testing.T) {
	h := NewHistory(2, 2)
	pix := solidPixmap(2, 2, Background)
	h.Push(pix)

	if h.CanUndo() {
		t.Error("CanUndo = true with a single snapshot")
	}
	pix.Clear(RGB(1, 1, 1))
	if h.Undo(pix) {
		t.Error("Undo succeeded past the floor")
	}
	if got := pix.GetPixel(0, 0).Hex(); got != "#ffffff" {
		t.Errorf("failed undo modified the raster: %s", got)
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(1, 1)
	pix := NewPixmap(1, 1)

	// Snapshot i has red = i.
	for i := 0; i < 25; i++ {
		pix.Data()[0] = uint8(i)
		pix.Data()[3] = 255
		h.Push(pix)
	}

	if h.Len() != HistoryDepth {
		t.Fatalf("Len = %d after 25 pushes, want %d", h.Len(), HistoryDepth)
	}

	// 20 retained snapshots allow exactly 19 undos.
	undos := 0
	for h.Undo(pix) {
		undos++
	}
	if undos != HistoryDepth-1 {
		t.Errorf("performed %d undos, want %d", undos, HistoryDepth-1)
	}

	// The floor is snapshot 5, the oldest survivor of the eviction.
	want := uint8(5)
	if got := pix.Data()[0]; got != want {
		t.Errorf("floor snapshot red = %d, want %d", got, want)
	}
}

func TestHistoryUndoOrder(t *testing.T) {
	h := NewHistory(1, 1)
	pix := NewPixmap(1, 1)
	for i := 1; i <= 3; i++ {
		pix.Data()[0] = uint8(i)
		pix.Data()[3] = 255
		h.Push(pix)
	}

	// Undos walk back newest first: 3 -> 2 -> 1.
	for _, want := range []uint8{2, 1} {
		if !h.Undo(pix) {
			t.Fatal("Undo returned false mid-walk")
		}
		if got := pix.Data()[0]; got != want {
			t.Errorf("restored red = %d, want %d", got, want)
		}
	}
}

func TestHistoryDimensionMismatch(t *testing.T) {
	h := NewHistory(4, 4)
	h.Push(NewPixmap(8, 8))
	if h.Len() != 0 {
		t.Errorf("mismatched snapshot was retained, Len = %d", h.Len())
	}
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(2, 2)
	pix := solidPixmap(2, 2, Background)
	h.Push(pix)
	h.Push(pix)

	h.Reset()
	if h.Len() != 0 || h.CanUndo() {
		t.Errorf("after Reset: Len = %d, CanUndo = %v", h.Len(), h.CanUndo())
	}

	// Reusable after reset.
	h.Push(pix)
	if h.Len() != 1 {
		t.Errorf("Len = %d after post-reset push", h.Len())
	}
}
