package state

import (
	"fmt"

	"github.com/google/uuid"
)

// Session identifies one run of the application. Stroke IDs are derived
// from it so log lines from different runs never collide.
type Session struct {
	ID string
}

func NewSession() Session {
	return Session{ID: uuid.NewString()}
}

// StrokeID names the stroke with sequence number seq.
func (s Session) StrokeID(seq uint64) string {
	short := s.ID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("stroke-%s-%d", short, seq)
}
