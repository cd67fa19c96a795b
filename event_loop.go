package winit

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/Charlie-XIAO/winit/internal/config"
	"github.com/Charlie-XIAO/winit/internal/mainthread"
)

// eventLoopCreated guards against a second event loop in the same
// process. Set on the first construction attempt, never reset.
var eventLoopCreated atomic.Bool

// NoTimeout makes PumpEvents wait without a caller-imposed bound.
const NoTimeout time.Duration = -1

// PumpStatus is the result of one PumpEvents call.
type PumpStatus struct {
	exited bool
	code   int32
}

// Exited reports whether the loop has exited.
func (s PumpStatus) Exited() bool { return s.exited }

// ExitCode returns the exit code. Only meaningful when Exited is true.
func (s PumpStatus) ExitCode() int32 { return s.code }

type eventLoopConfig struct {
	anyThread bool
	appID     string
	logger    *slog.Logger
	backend   Backend
}

// EventLoopOption configures NewEventLoop.
type EventLoopOption func(*eventLoopConfig)

// WithAnyThread relaxes the main-thread requirement. Most native
// toolkits are main-thread-only; only opt in when the embedding
// guarantees the calling thread drives the loop for its whole life.
func WithAnyThread() EventLoopOption {
	return func(c *eventLoopConfig) { c.anyThread = true }
}

// WithAppID sets the application id used for WM_CLASS on created
// windows.
func WithAppID(id string) EventLoopOption {
	return func(c *eventLoopConfig) { c.appID = id }
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) EventLoopOption {
	return func(c *eventLoopConfig) { c.logger = logger }
}

// WithBackend substitutes the native backend. Intended for embedders
// with their own display connection and for tests.
func WithBackend(b Backend) EventLoopOption {
	return func(c *eventLoopConfig) { c.backend = b }
}

// EventLoop drives the native main loop and turns its iterations into
// the typed application callback sequence.
type EventLoop struct {
	running bool
	target  *ActiveEventLoop
	native  <-chan NativeEvent
	logger  *slog.Logger
}

// NewEventLoop opens the native display and builds the event loop.
//
// At most one event loop may exist per process; a second call returns
// ErrEventLoopRecreation regardless of whether the first loop is still
// alive. Calling from a thread other than the process main thread panics
// unless WithAnyThread was given.
func NewEventLoop(opts ...EventLoopOption) (*EventLoop, error) {
	cfg := eventLoopConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if eventLoopCreated.Swap(true) {
		return nil, ErrEventLoopRecreation
	}

	// The calling goroutine becomes the main-loop thread. Lock before
	// the thread check so the answer cannot be invalidated by the
	// scheduler migrating the goroutine afterwards.
	runtime.LockOSThread()

	if !cfg.anyThread && !mainthread.IsMain() {
		runtime.UnlockOSThread()
		panic("winit: initializing the event loop outside of the main thread " +
			"is a significant cross-platform compatibility hazard; " +
			"use WithAnyThread if you truly need to create it on another thread")
	}

	backend := cfg.backend
	if backend == nil {
		env, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("loading winit configuration: %w", err)
		}
		switch env.Backend {
		case config.BackendAuto, config.BackendX11:
			backend, err = newX11Backend(cfg.appID, env, cfg.logger)
			if err != nil {
				return nil, err
			}
		case config.BackendWayland:
			// The pure-Go build carries only the X11 backend; a Wayland
			// session is expected to go through XWayland.
			return nil, osError("wayland backend requested but not built in", nil)
		}
	}

	return newEventLoop(backend, cfg.logger), nil
}

// newEventLoop wires a loop around an already-open backend, bypassing
// the process-wide guard and thread check.
func newEventLoop(backend Backend, logger *slog.Logger) *EventLoop {
	return &EventLoop{
		target: newActiveEventLoop(backend, logger),
		native: backend.Events(),
		logger: logger,
	}
}

// RunApp pumps the loop until the application requests an exit, then
// releases the native connection. Exit code 0 returns nil; any other
// code returns an ExitError.
func (el *EventLoop) RunApp(app ApplicationHandler) error {
	for {
		status := el.PumpEvents(NoTimeout, app)
		if !status.Exited() {
			continue
		}
		if err := el.Close(); err != nil {
			el.logger.Warn("failed to close native backend", "err", err)
		}
		if code := status.ExitCode(); code != 0 {
			return &ExitError{Code: code}
		}
		return nil
	}
}

// Close releases the native display connection. Embedders driving
// PumpEvents themselves call it once the loop has exited; RunApp calls
// it automatically. The loop must not be pumped again afterwards.
func (el *EventLoop) Close() error {
	return el.target.backend.Close()
}

// PumpEvents advances the loop by a single step, bounded by timeout
// (NoTimeout for no caller bound). It is the embedding point for foreign
// run loops: call it repeatedly and stop once the status reports an
// exit.
func (el *EventLoop) PumpEvents(timeout time.Duration, app ApplicationHandler) PumpStatus {
	ael := el.target

	if !el.running {
		el.running = true
		ael.clearExit()
		el.singleIteration(app, CauseInit{})
	}

	if !ael.Exiting() {
		start := time.Now()

		wait, bounded := el.effectiveTimeout(timeout, start)
		el.waitForWork(wait, bounded)
		el.drainNative()
		ael.processRequests()

		if cause, run := el.startCause(start); run {
			el.singleIteration(app, cause)
		}
	}

	if ael.Exiting() {
		code := *ael.exitCode
		// Allow a clean restart with a fresh Init iteration.
		el.running = false
		return PumpStatus{exited: true, code: code}
	}
	return PumpStatus{}
}

// effectiveTimeout combines the caller-supplied bound with the
// control-flow policy bound, taking the minimum and treating "no bound"
// as the identity. Anything already pending forces a zero wait.
func (el *EventLoop) effectiveTimeout(caller time.Duration, now time.Time) (time.Duration, bool) {
	ael := el.target
	if ael.pendingWork() {
		return 0, true
	}

	policy, policyBounded := ael.controlFlow.waitTimeout(now)
	callerBounded := caller >= 0

	switch {
	case callerBounded && policyBounded:
		return min(caller, policy), true
	case callerBounded:
		return caller, true
	case policyBounded:
		return policy, true
	default:
		return 0, false
	}
}

// waitForWork performs the single blocking step of an iteration: one
// native wait/poll cycle bounded by the computed timeout, interrupted by
// a native event or an explicit wake.
func (el *EventLoop) waitForWork(timeout time.Duration, bounded bool) {
	if bounded && timeout <= 0 {
		return
	}

	var timer <-chan time.Time
	if bounded {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case ev, ok := <-el.native:
		if !ok {
			el.native = nil
			return
		}
		el.target.dispatchNative(ev)
	case <-el.target.wakeCh:
	case <-timer:
	}
}

// drainNative delivers every synchronously-ready native event without
// blocking.
func (el *EventLoop) drainNative() {
	for {
		select {
		case ev, ok := <-el.native:
			if !ok {
				el.native = nil
				return
			}
			el.target.dispatchNative(ev)
		default:
			return
		}
	}
}

// startCause derives this iteration's cause from the control flow and
// pending work. The second result is false when no callback is
// warranted, which prevents redundant wakeups under Wait.
func (el *EventLoop) startCause(start time.Time) (StartCause, bool) {
	ael := el.target
	deliverable := ael.events.pending() || ael.redraws.hasPending() || ael.proxyWake.Load()

	flow := ael.controlFlow
	switch {
	case flow.IsPoll():
		return CausePoll{}, true

	case flow.IsWait():
		if !deliverable {
			return nil, false
		}
		return CauseWaitCancelled{Start: start}, true

	default:
		deadline, _ := flow.WaitDeadline()
		if !time.Now().Before(deadline) {
			return CauseResumeTimeReached{Start: start, RequestedResume: deadline}, true
		}
		if !deliverable {
			return nil, false
		}
		resume := deadline
		return CauseWaitCancelled{Start: start, RequestedResume: &resume}, true
	}
}

// singleIteration runs one full application callback pass, then applies
// any requests the callbacks issued so the native objects are current
// before the loop waits again.
func (el *EventLoop) singleIteration(app ApplicationHandler, cause StartCause) {
	ael := el.target

	app.NewEvents(ael, cause)
	if _, ok := cause.(CauseInit); ok {
		app.CanCreateSurfaces(ael)
	}

	for {
		ev, ok := ael.events.pop()
		if !ok {
			break
		}
		switch {
		case ev.windowEvent != nil:
			app.WindowEvent(ael, ev.windowID, ev.windowEvent)
		case ev.deviceEvent != nil:
			app.DeviceEvent(ael, ev.deviceID, ev.deviceEvent)
		}
	}

	if ael.takeProxyWake() {
		app.ProxyWakeUp(ael)
	}

	for _, id := range ael.redraws.drain() {
		app.WindowEvent(ael, id, RedrawRequested{})
	}

	app.AboutToWait(ael)

	ael.processRequests()
}
