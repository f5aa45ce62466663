package app

import (
	"time"

	"eldritch-cube/internal/config"
)

// Pacer schedules the frame driver's wake-ups. The next deadline is always
// now + period: a frame that runs past its budget pushes the schedule back
// rather than being caught up, so the period is a minimum, not a guarantee.
type Pacer struct {
	deadline time.Time
}

// NewPacer creates a new frame pacer
func NewPacer() *Pacer {
	return &Pacer{}
}

// Period returns the target inter-frame duration based on the FPS cap
func (p *Pacer) Period() time.Duration {
	return time.Second / time.Duration(config.GetFPSLimit())
}

// Rearm schedules the next wake-up at now + period
func (p *Pacer) Rearm(now time.Time) {
	p.deadline = now.Add(p.Period())
}

// Deadline returns the scheduled wake time
func (p *Pacer) Deadline() time.Time {
	return p.deadline
}
