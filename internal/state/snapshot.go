package state

import (
	"time"

	"github.com/google/uuid"
)

// Snapshot is an immutable copy of a Raster. Pixels are stored packed as RGB
// since the raster carries no alpha.
type Snapshot struct {
	ID     uuid.UUID
	Seq    uint64
	Action Action
	Taken  time.Time

	width, height int
	rgb           []byte
}

func takeSnapshot(r *Raster, action Action) *Snapshot {
	pix := r.img.Pix
	rgb := make([]byte, 0, len(pix)/4*3)
	for i := 0; i+3 < len(pix); i += 4 {
		rgb = append(rgb, pix[i], pix[i+1], pix[i+2])
	}
	return &Snapshot{
		ID:     uuid.New(),
		Seq:    nextSeq(),
		Action: action,
		Taken:  time.Now(),
		width:  r.Width(),
		height: r.Height(),
		rgb:    rgb,
	}
}

// restore overwrites r with the snapshot's pixels.
func (s *Snapshot) restore(r *Raster) {
	pix := r.img.Pix
	j := 0
	for i := 0; i+3 < len(pix) && j+2 < len(s.rgb); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = s.rgb[j], s.rgb[j+1], s.rgb[j+2], 255
		j += 3
	}
}

// Matches reports whether r currently holds exactly the snapshot's pixels.
func (s *Snapshot) Matches(r *Raster) bool {
	if r.Width() != s.width || r.Height() != s.height {
		return false
	}
	pix := r.img.Pix
	j := 0
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i] != s.rgb[j] || pix[i+1] != s.rgb[j+1] || pix[i+2] != s.rgb[j+2] {
			return false
		}
		j += 3
	}
	return true
}

// Bytes returns the memory held by the snapshot's pixels.
func (s *Snapshot) Bytes() int { return len(s.rgb) }

// Info describes the snapshot without its pixels.
func (s *Snapshot) Info() EntryInfo {
	return EntryInfo{ID: s.ID, Seq: s.Seq, Action: s.Action, Taken: s.Taken}
}

// EntryInfo describes a history entry.
type EntryInfo struct {
	ID     uuid.UUID
	Seq    uint64
	Action Action
	Taken  time.Time
}
