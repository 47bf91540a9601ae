package incident

import (
	"errors"
	"sync"
)

// ErrSubmissionInFlight is returned when a submit is attempted while one is
// already outstanding. Double-tapping "Confirm" must not fire two uploads.
var ErrSubmissionInFlight = errors.New("a submission is already in progress")

// opGuard is a single-slot in-flight token.
type opGuard struct {
	mu   sync.Mutex
	busy bool
}

func (g *opGuard) begin() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

func (g *opGuard) end() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}
