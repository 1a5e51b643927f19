package state

import (
	"errors"
	"image/color"
)

// Errors reported by undo and redo. Both leave the canvas untouched.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultHistoryLimit is the number of snapshots kept when no limit is given.
const DefaultHistoryLimit = 50

// History keeps full-raster snapshots for linear undo and redo.
//
// The last history entry always equals the raster after a completed action,
// and the first entry is a floor that undo never removes. Committing a new
// snapshot clears the redo stack.
type History struct {
	raster  *Raster
	display Display

	entries []*Snapshot
	redo    []*Snapshot
	limit   int
}

// NewHistory creates an empty history over r. Call Commit once to record the
// starting state.
func NewHistory(r *Raster, d Display, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	h := &History{raster: r, limit: limit}
	h.SetDisplay(d)
	return h
}

// SetDisplay replaces the display refreshed after undo, redo and clear.
func (h *History) SetDisplay(d Display) {
	if d == nil {
		d = nopDisplay{}
	}
	h.display = d
}

// Commit appends a copy of the raster, evicting the oldest entry past the
// limit, and clears the redo stack.
func (h *History) Commit(action Action) *Snapshot {
	s := takeSnapshot(h.raster, action)
	h.push(s)
	clear(h.redo)
	h.redo = h.redo[:0]

	Logger().Debug("history commit",
		"action", action, "seq", s.Seq, "depth", len(h.entries))
	return s
}

// Undo steps back one entry. With only the floor entry left it returns
// ErrNothingToUndo.
func (h *History) Undo() error {
	if len(h.entries) <= 1 {
		return ErrNothingToUndo
	}
	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]
	h.redo = append(h.redo, last)

	h.show(h.entries[len(h.entries)-1])
	Logger().Debug("history undo",
		"undone", last.Seq, "depth", len(h.entries), "redo", len(h.redo))
	return nil
}

// Redo re-applies the most recently undone entry. With nothing undone it
// returns ErrNothingToRedo.
func (h *History) Redo() error {
	if len(h.redo) == 0 {
		return ErrNothingToRedo
	}
	s := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = nil
	h.redo = h.redo[:len(h.redo)-1]
	h.push(s)

	h.show(s)
	Logger().Debug("history redo",
		"redone", s.Seq, "depth", len(h.entries), "redo", len(h.redo))
	return nil
}

// ClearCanvas resets the raster to its background and commits the result.
func (h *History) ClearCanvas() *Snapshot {
	return h.FillCanvas(h.raster.Background(), ActionClear)
}

// FillCanvas paints the whole raster c and commits the result as action.
func (h *History) FillCanvas(c color.Color, action Action) *Snapshot {
	h.raster.Fill(c)
	h.display.Redisplay(h.raster.Image())
	return h.Commit(action)
}

func (h *History) push(s *Snapshot) {
	h.entries = append(h.entries, s)
	if len(h.entries) > h.limit {
		excess := len(h.entries) - h.limit
		clear(h.entries[:excess])
		h.entries = h.entries[excess:]
	}
}

func (h *History) show(s *Snapshot) {
	s.restore(h.raster)
	h.display.Redisplay(h.raster.Image())
}

// Len returns the number of history entries, including the floor.
func (h *History) Len() int { return len(h.entries) }

// RedoLen returns the number of undone entries available to redo.
func (h *History) RedoLen() int { return len(h.redo) }

// Limit returns the maximum number of history entries.
func (h *History) Limit() int { return h.limit }

// CanUndo returns true if undo would change the canvas.
func (h *History) CanUndo() bool { return len(h.entries) > 1 }

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Current returns the entry matching the raster, or nil before the first
// commit.
func (h *History) Current() *Snapshot {
	if len(h.entries) == 0 {
		return nil
	}
	return h.entries[len(h.entries)-1]
}

// PeekUndo returns the entry undo would discard.
func (h *History) PeekUndo() (EntryInfo, bool) {
	if !h.CanUndo() {
		return EntryInfo{}, false
	}
	return h.entries[len(h.entries)-1].Info(), true
}

// PeekRedo returns the entry redo would restore.
func (h *History) PeekRedo() (EntryInfo, bool) {
	if !h.CanRedo() {
		return EntryInfo{}, false
	}
	return h.redo[len(h.redo)-1].Info(), true
}

// Entries describes the history from oldest to newest.
func (h *History) Entries() []EntryInfo {
	out := make([]EntryInfo, len(h.entries))
	for i, s := range h.entries {
		out[i] = s.Info()
	}
	return out
}

// Stats summarizes history depth and memory use.
type Stats struct {
	Depth     int
	RedoDepth int
	Limit     int
	Bytes     int
}

// Stats returns the current history statistics.
func (h *History) Stats() Stats {
	st := Stats{Depth: len(h.entries), RedoDepth: len(h.redo), Limit: h.limit}
	for _, s := range h.entries {
		st.Bytes += s.Bytes()
	}
	for _, s := range h.redo {
		st.Bytes += s.Bytes()
	}
	return st
}
