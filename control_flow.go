package winit

import "time"

type controlFlowMode int

const (
	controlFlowWait controlFlowMode = iota
	controlFlowPoll
	controlFlowWaitUntil
)

// ControlFlow governs how long the event loop may block between
// iterations when no work is pending. The zero value is Wait.
type ControlFlow struct {
	mode     controlFlowMode
	deadline time.Time
}

// ControlFlowPoll runs iterations back to back without blocking.
func ControlFlowPoll() ControlFlow {
	return ControlFlow{mode: controlFlowPoll}
}

// ControlFlowWait blocks until new work arrives.
func ControlFlowWait() ControlFlow {
	return ControlFlow{mode: controlFlowWait}
}

// ControlFlowWaitUntil blocks until new work arrives or the deadline
// passes, whichever comes first.
func ControlFlowWaitUntil(deadline time.Time) ControlFlow {
	return ControlFlow{mode: controlFlowWaitUntil, deadline: deadline}
}

// IsPoll reports whether the policy is Poll.
func (c ControlFlow) IsPoll() bool { return c.mode == controlFlowPoll }

// IsWait reports whether the policy is Wait.
func (c ControlFlow) IsWait() bool { return c.mode == controlFlowWait }

// WaitDeadline returns the WaitUntil deadline, if any.
func (c ControlFlow) WaitDeadline() (time.Time, bool) {
	if c.mode != controlFlowWaitUntil {
		return time.Time{}, false
	}
	return c.deadline, true
}

// waitTimeout converts the policy into a wait bound relative to now.
// The second result is false when the wait is unbounded.
func (c ControlFlow) waitTimeout(now time.Time) (time.Duration, bool) {
	switch c.mode {
	case controlFlowPoll:
		return 0, true
	case controlFlowWaitUntil:
		d := c.deadline.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, true
	default:
		return 0, false
	}
}
