package bisect

import (
	"errors"
	"fmt"

	"github.com/gkwa/wackywolffish/internal/frameset"
)

// ErrExhausted is returned when a narrowing command finds nothing left to
// split.
var ErrExhausted = errors.New("cannot bisect further")

// State is one search window. Invariant: 0 <= Low <= Current <= High < len,
// with Current always the floor midpoint of [Low, High].
type State struct {
	Low     int
	High    int
	Current int
}

// Session drives a bisection over an immutable, pre-sorted catalog.
type Session struct {
	frames  []frameset.Frame
	state   State
	history []State
}

// NewSession starts a session over frames, which must already be sorted and
// non-empty.
func NewSession(frames []frameset.Frame) (*Session, error) {
	if len(frames) == 0 {
		return nil, errors.New("bisect: catalog is empty")
	}
	s := &Session{frames: frames}
	s.state = State{Low: 0, High: len(frames) - 1}
	s.state.Current = midpoint(s.state.Low, s.state.High)
	return s, nil
}

// State returns the current search window.
func (s *Session) State() State {
	return s.state
}

// Len returns the catalog size.
func (s *Session) Len() int {
	return len(s.frames)
}

// HistoryDepth returns how many narrowing moves can be undone.
func (s *Session) HistoryDepth() int {
	return len(s.history)
}

// Frame returns the frame at the current cursor.
func (s *Session) Frame() frameset.Frame {
	return s.frames[s.state.Current]
}

// Later narrows the window to indices after the cursor. Returns ErrExhausted
// without touching state when the window cannot be split.
func (s *Session) Later() error {
	if s.state.Low >= s.state.High {
		return ErrExhausted
	}
	s.history = append(s.history, s.state)
	s.state.Low = s.state.Current + 1
	s.state.Current = midpoint(s.state.Low, s.state.High)
	return nil
}

// Earlier narrows the window to indices before the cursor. Returns
// ErrExhausted without touching state when the window cannot be split.
func (s *Session) Earlier() error {
	if s.state.Low >= s.state.High {
		return ErrExhausted
	}
	s.history = append(s.history, s.state)
	s.state.High = s.state.Current - 1
	s.state.Current = midpoint(s.state.Low, s.state.High)
	return nil
}

// Undo reverts the last n narrowing moves, restoring the window as it was
// immediately before the n-th most recent move. The pop is atomic: when n
// exceeds the available depth nothing changes and the error reports the
// actual depth.
func (s *Session) Undo(n int) error {
	if n <= 0 {
		return fmt.Errorf("undo count must be positive, got %d", n)
	}
	if n > len(s.history) {
		return fmt.Errorf("cannot undo %d move(s), only %d in history", n, len(s.history))
	}
	s.state = s.history[len(s.history)-n]
	s.history = s.history[:len(s.history)-n]
	return nil
}

func midpoint(low, high int) int {
	return (low + high) / 2
}
