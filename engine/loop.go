package engine

import (
	"context"
	"time"
)

// Stepper advances the simulation by one tick, *Session is the usual one
type Stepper interface {
	Step(TickInput) TickOutput
}

// Source supplies the next tick's input, ok false ends the loop
type Source func() (in TickInput, ok bool)

// Sink receives every tick's output, including paused ticks
type Sink func(TickOutput)

// Loop runs a Stepper at a fixed rate
// Ticks missed while a step or sink overruns are dropped, never replayed
type Loop struct {
	Interval time.Duration
}

// NewLoop creates a loop ticking every interval
func NewLoop(interval time.Duration) *Loop {
	return &Loop{Interval: interval}
}

// Run steps s until ctx is cancelled or source reports done
// source and sink are called on the loop goroutine
func (l *Loop) Run(ctx context.Context, s Stepper, source Source, sink Sink) error {
	interval := l.Interval
	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			in, ok := source()
			if !ok {
				return nil
			}
			out := s.Step(in)
			if sink != nil {
				sink(out)
			}
		}
	}
}
