package core

import (
	"fmt"
	"sync"
)

// ModelLimiter caps the number of model calls a single run may make. The
// generate-tool-generate loop checks it before every model turn so a model
// that keeps requesting tools cannot loop forever.
//
// A max of 0 disables the cap.
type ModelLimiter struct {
	mu    sync.Mutex
	max   int
	count int
}

// NewModelLimiter returns a limiter allowing up to max calls (0 = unlimited).
func NewModelLimiter(max int) *ModelLimiter {
	return &ModelLimiter{max: max}
}

// Increment records one model call, failing once the cap is exceeded.
func (ml *ModelLimiter) Increment() error {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	ml.count++
	if ml.max > 0 && ml.count > ml.max {
		return fmt.Errorf("exceeded max model calls: %d", ml.max)
	}
	return nil
}

// Count reports how many calls have been recorded so far.
func (ml *ModelLimiter) Count() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return ml.count
}

// Remaining reports calls left before the cap, or -1 when unlimited.
func (ml *ModelLimiter) Remaining() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	if ml.max == 0 {
		return -1
	}
	return ml.max - ml.count
}
