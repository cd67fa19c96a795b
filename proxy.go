package winit

import "sync/atomic"

// EventLoopProxy lets any goroutine wake an otherwise-blocked event loop
// and have it run one more iteration.
type EventLoopProxy struct {
	flag *atomic.Bool
	wake func()
}

// Wakeup forces the main loop awake. The application receives at most
// one ProxyWakeUp callback per set of the flag, however many times
// Wakeup is called before the loop observes it.
func (p *EventLoopProxy) Wakeup() {
	p.flag.Store(true)
	p.wake()
}
