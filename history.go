package geoart

import (
	"log/slog"

	"github.com/google/uuid"
)

// HistoryDepth is the maximum number of retained snapshots.
const HistoryDepth = 20

// History is a bounded FIFO of full-raster snapshots. The tail entry is
// always the canvas state immediately after the last commit, so undo
// needs at least two entries: one to discard and one to restore.
//
// Snapshots live in a fixed ring of preallocated frames reused in place,
// keeping memory bounded at HistoryDepth frames with no per-commit
// allocation after warmup.
type History struct {
	frames   [HistoryDepth][]uint8
	ids      [HistoryDepth]string
	frameLen int
	start    int
	count    int
}

// NewHistory creates a history for rasters of the given pixel dimensions.
func NewHistory(width, height int) *History {
	return &History{frameLen: width * height * 4}
}

// Len returns the number of retained snapshots.
func (h *History) Len() int {
	return h.count
}

// CanUndo reports whether an undo is possible. The oldest remaining
// snapshot is the floor and can never be undone past.
func (h *History) CanUndo() bool {
	return h.count > 1
}

// Push captures a snapshot of the raster, evicting the oldest snapshot
// once the ring is full.
func (h *History) Push(pix *Pixmap) {
	if len(pix.Data()) != h.frameLen {
		return
	}

	var slot int
	if h.count < HistoryDepth {
		slot = (h.start + h.count) % HistoryDepth
		h.count++
	} else {
		slot = h.start
		h.start = (h.start + 1) % HistoryDepth
	}

	if h.frames[slot] == nil {
		h.frames[slot] = make([]uint8, h.frameLen)
	}
	copy(h.frames[slot], pix.Data())
	h.ids[slot] = uuid.NewString()

	Logger().Debug("history snapshot",
		slog.String("id", h.ids[slot]),
		slog.Int("depth", h.count))
}

// Undo discards the newest snapshot and restores the raster to the one
// before it. It reports whether anything was restored; with fewer than
// two snapshots it is a no-op.
func (h *History) Undo(pix *Pixmap) bool {
	if !h.CanUndo() {
		return false
	}
	h.count--
	slot := (h.start + h.count - 1) % HistoryDepth
	copy(pix.Data(), h.frames[slot])

	Logger().Debug("history undo",
		slog.String("restored", h.ids[slot]),
		slog.Int("depth", h.count))
	return true
}

// Reset drops all snapshots. The frames stay allocated for reuse.
func (h *History) Reset() {
	h.start = 0
	h.count = 0
}
