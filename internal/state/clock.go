package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var seq uint64

// nextSeq numbers snapshots in the order they are taken, across sessions.
func nextSeq() uint64 {
	return atomic.AddUint64(&seq, 1)
}

func newSessionID() string {
	return uuid.NewString()
}
