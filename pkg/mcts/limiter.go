package mcts

import (
	"context"
	"sync/atomic"
)

type StopReason int

const (
	StopNone      StopReason = 0
	StopInterrupt StopReason = 1 // Stopped by user, by calling .SetStop(true) or context cancellation
	StopMovetime  StopReason = 2 // Time limit reached
	StopCycles    StopReason = 4 // Cycle limit reached
)

func (sr StopReason) String() string {
	if sr == StopNone {
		return "None"
	}

	reasons := []struct {
		flag StopReason
		name string
	}{
		{StopInterrupt, "Interrupt"},
		{StopMovetime, "Movetime"},
		{StopCycles, "Cycles"},
	}

	var result string
	for _, r := range reasons {
		if sr&r.flag == r.flag {
			if result != "" {
				result += "|"
			}
			result += r.name
		}
	}

	return result
}

// Decides between iterations whether the search may continue
type Limiter struct {
	limits *Limits
	timer  *timer
	stop   atomic.Bool
	reason StopReason
	ctx    context.Context
}

func NewLimiter(limits *Limits) *Limiter {
	if limits == nil {
		limits = DefaultLimits()
	}
	return &Limiter{
		limits: limits,
		timer:  newTimer(),
		ctx:    context.Background(),
	}
}

// Reset the limiter's flags, called on search setup
func (l *Limiter) Reset() {
	l.timer.Movetime(l.limits.Movetime)
	l.timer.Reset()
	l.stop.Store(false)
	l.reason = StopNone
}

func (l *Limiter) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	l.ctx = ctx
}

// Whether the search can be bounded with current limits and context
func (l *Limiter) Bounded() bool {
	if l.limits.Bounded() {
		return true
	}
	_, ok := l.ctx.Deadline()
	return ok
}

// Set the stop signal, will cause to exit search if set to true
func (l *Limiter) SetStop(v bool) {
	l.stop.Store(v)
}

func (l *Limiter) Stop() bool {
	select {
	case <-l.ctx.Done():
		l.stop.Store(true)
	default:
	}
	return l.stop.Load()
}

func (l *Limiter) SetLimits(limits *Limits) {
	l.limits = limits
}

func (l *Limiter) Limits() *Limits {
	return l.limits
}

// Elapsed time in ms (from the last 'Reset' call)
func (l *Limiter) Elapsed() int {
	return l.timer.Deltatime()
}

func (l *Limiter) reached(cycles int) StopReason {
	reason := StopNone
	if l.Stop() {
		reason |= StopInterrupt
	}
	if l.timer.IsEnd() {
		reason |= StopMovetime
	}
	if l.limits.Cycles > 0 && cycles >= l.limits.Cycles {
		reason |= StopCycles
	}
	return reason
}

// Whether the search should continue, called before every iteration
func (l *Limiter) Ok(cycles int) bool {
	return l.reached(cycles) == StopNone
}

// Evaluate stop reason based on current state, and set it internally,
// called once after the search ends
func (l *Limiter) EvaluateStopReason(cycles int) {
	l.reason = l.reached(cycles)
}

// Get the reason why the search was stopped, valid after search ends
func (l *Limiter) StopReason() StopReason {
	return l.reason
}
