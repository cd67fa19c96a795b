package winit

import (
	"log/slog"
	"sync/atomic"
)

// eventLoopWindow is one registry entry: the native window object, its
// shared state snapshot, and the event wiring once installed. Entries are
// inserted at window construction and removed exactly once when a Destroy
// request is processed.
type eventLoopWindow struct {
	native NativeWindow
	state  *WindowState
	wiring *windowWiring
}

// ActiveEventLoop is the per-process shared state handed to the
// application each iteration: the window registry, the outgoing event
// queue, control-flow policy, exit status, and the proxy wake flag.
//
// Except where noted, methods must be called from the main-loop thread
// (i.e. from inside application callbacks).
type ActiveEventLoop struct {
	backend Backend
	logger  *slog.Logger

	// windows is mutated only by the request consumer and CreateWindow,
	// both on the main-loop thread.
	windows map[WindowID]*eventLoopWindow

	events   *eventQueue
	redraws  *redrawQueue
	requests *requestQueue
	wakeCh   chan struct{}

	controlFlow ControlFlow
	exitCode    *int32
	proxyWake   atomic.Bool

	display OwnedDisplayHandle
}

func newActiveEventLoop(backend Backend, logger *slog.Logger) *ActiveEventLoop {
	ael := &ActiveEventLoop{
		backend:     backend,
		logger:      logger,
		windows:     make(map[WindowID]*eventLoopWindow),
		events:      &eventQueue{},
		redraws:     newRedrawQueue(),
		wakeCh:      make(chan struct{}, 1),
		controlFlow: ControlFlowWait(),
		display:     backend.DisplayHandle(),
	}
	ael.requests = newRequestQueue(ael.wakeup)
	return ael
}

// wakeup interrupts a blocked main-loop wait. Safe from any goroutine;
// redundant wakes collapse into one.
func (ael *ActiveEventLoop) wakeup() {
	select {
	case ael.wakeCh <- struct{}{}:
	default:
	}
}

// CreateWindow creates a native window, registers it, and installs its
// event wiring. The returned Window handle may be shared across
// goroutines.
func (ael *ActiveEventLoop) CreateWindow(attrs WindowAttributes) (*Window, error) {
	native, err := ael.backend.CreateWindow(attrs)
	if err != nil {
		return nil, err
	}

	id := native.ID()
	x, y, width, height := native.Geometry()
	state := NewWindowState(native.ScaleFactor(), x, y, width, height)

	ael.windows[id] = &eventLoopWindow{native: native, state: state}
	ael.requests.send(id, requestWireUpEvents{})

	return &Window{
		id:       id,
		requests: ael.requests,
		state:    state,
		redraws:  ael.redraws,
		wake:     ael.wakeup,
		display:  ael.display,
		handle:   native.WindowHandle(),
	}, nil
}

// CreateProxy returns a wake-up proxy usable from any goroutine.
func (ael *ActiveEventLoop) CreateProxy() *EventLoopProxy {
	return &EventLoopProxy{flag: &ael.proxyWake, wake: ael.wakeup}
}

// AvailableMonitors enumerates connected outputs.
func (ael *ActiveEventLoop) AvailableMonitors() ([]Monitor, error) {
	return ael.backend.AvailableMonitors()
}

// PrimaryMonitor returns the primary output.
func (ael *ActiveEventLoop) PrimaryMonitor() (Monitor, error) {
	return ael.backend.PrimaryMonitor()
}

// SetControlFlow sets the wait policy for upcoming iterations and wakes
// the loop so the new policy takes effect immediately.
func (ael *ActiveEventLoop) SetControlFlow(flow ControlFlow) {
	ael.controlFlow = flow
	ael.wakeup()
}

// ControlFlow returns the current wait policy.
func (ael *ActiveEventLoop) ControlFlow() ControlFlow {
	return ael.controlFlow
}

// Exit requests a clean exit with code 0.
func (ael *ActiveEventLoop) Exit() {
	ael.ExitWithCode(0)
}

// ExitWithCode requests an exit with the given status. The first request
// wins; later ones are ignored until the loop restarts.
func (ael *ActiveEventLoop) ExitWithCode(code int32) {
	if ael.exitCode == nil {
		ael.exitCode = &code
	}
	ael.wakeup()
}

// Exiting reports whether an exit has been requested.
func (ael *ActiveEventLoop) Exiting() bool {
	return ael.exitCode != nil
}

func (ael *ActiveEventLoop) clearExit() {
	ael.exitCode = nil
}

// OwnedDisplayHandle returns the process-wide display handle.
func (ael *ActiveEventLoop) OwnedDisplayHandle() OwnedDisplayHandle {
	return ael.display
}

// IsX11 reports whether the display backend is X11.
func (ael *ActiveEventLoop) IsX11() bool {
	return ael.display.Backend() == BackendX11
}

// IsWayland reports whether the display backend is Wayland.
func (ael *ActiveEventLoop) IsWayland() bool {
	return ael.display.Backend() == BackendWayland
}

// takeProxyWake test-and-clears the proxy wake flag, guaranteeing at
// most one wake callback per set.
func (ael *ActiveEventLoop) takeProxyWake() bool {
	return ael.proxyWake.Swap(false)
}

func (ael *ActiveEventLoop) pendingWork() bool {
	return ael.events.pending() || ael.redraws.hasPending() ||
		ael.requests.pending() || ael.proxyWake.Load()
}

// processRequests is the single consumer of the window request channel.
// It applies requests in send order with exclusive access to the native
// objects. Runs on the main-loop thread only.
func (ael *ActiveEventLoop) processRequests() {
	for _, tr := range ael.requests.drain() {
		if _, ok := tr.request.(requestDestroy); ok {
			if entry, ok := ael.windows[tr.id]; ok {
				delete(ael.windows, tr.id)
				ael.redraws.discard(tr.id)
				if err := entry.native.Destroy(); err != nil {
					ael.logger.Warn("failed to destroy native window",
						"window", tr.id, "err", err)
				}
				// Registry removal makes the native DestroyNotify
				// unroutable, so the wiring's final event is produced
				// here. It is the last event for this id.
				if entry.wiring != nil {
					entry.wiring.sendWindowEvent(Destroyed{})
				}
			}
			continue
		}

		// A request for an already-destroyed id is a silent no-op.
		entry, ok := ael.windows[tr.id]
		if !ok {
			continue
		}

		switch req := tr.request.(type) {
		case requestTitle:
			if err := entry.native.SetTitle(req.title); err != nil {
				ael.logger.Warn("failed to set window title",
					"window", tr.id, "err", err)
			}
		case requestVisible:
			if err := entry.native.SetVisible(req.visible); err != nil {
				ael.logger.Warn("failed to set window visibility",
					"window", tr.id, "err", err)
			}
		case requestResizable:
			if err := entry.native.SetResizable(req.resizable); err != nil {
				ael.logger.Warn("failed to set window resizability",
					"window", tr.id, "err", err)
			}
		case requestOuterPosition:
			if err := entry.native.SetOuterPosition(req.x, req.y); err != nil {
				ael.logger.Warn("failed to move window",
					"window", tr.id, "err", err)
			}
		case requestSurfaceSize:
			if err := entry.native.SetSurfaceSize(req.width, req.height); err != nil {
				ael.logger.Warn("failed to resize window",
					"window", tr.id, "err", err)
			}
		case requestWithWindow:
			req.fn(entry.native)
		case requestWireUpEvents:
			entry.wiring = newWindowWiring(tr.id, entry.state, ael.events, ael.redraws)
		}
	}

	if err := ael.backend.Flush(); err != nil {
		ael.logger.Warn("failed to flush native connection", "err", err)
	}
}

// dispatchNative routes a raw backend event to its window's wiring. A
// window without wiring installed produces nothing; the wiring is the
// sole producer of application-visible window events.
//
// A DestroyNotify for a still-registered window means the window went
// away without a Destroy request (killed externally); the entry is
// removed here so Destroyed stays the last event for the id.
func (ael *ActiveEventLoop) dispatchNative(ev NativeEvent) {
	entry, ok := ael.windows[ev.WindowID()]
	if !ok || entry.wiring == nil {
		return
	}
	entry.wiring.dispatch(ev)

	if _, gone := ev.(NativeDestroyed); gone {
		delete(ael.windows, ev.WindowID())
		ael.redraws.discard(ev.WindowID())
	}
}

// windowWiring is the per-window installation of native signal handling.
// One installation produces exactly one stream of window events and
// redraw notifications, and it updates the shared state before
// forwarding geometry events, so readers reacting to a SurfaceResized
// already observe the new size.
type windowWiring struct {
	id      WindowID
	state   *WindowState
	events  *eventQueue
	redraws *redrawQueue

	lastX, lastY          int32
	lastWidth, lastHeight uint32
}

func newWindowWiring(id WindowID, state *WindowState, events *eventQueue, redraws *redrawQueue) *windowWiring {
	w := &windowWiring{id: id, state: state, events: events, redraws: redraws}
	pos := state.SurfacePosition()
	size := state.SurfaceSize()
	scale := state.ScaleFactor()
	// Seed last-seen geometry from the state snapshot so the first
	// configure only reports what actually changed.
	logicalPos := pos.ToLogical(scale)
	logicalSize := size.ToLogical(scale)
	w.lastX, w.lastY = int32(logicalPos.X), int32(logicalPos.Y)
	w.lastWidth, w.lastHeight = uint32(logicalSize.Width), uint32(logicalSize.Height)
	return w
}

func (w *windowWiring) sendWindowEvent(ev WindowEvent) {
	w.events.push(queuedEvent{windowID: w.id, windowEvent: ev})
}

func (w *windowWiring) dispatch(ev NativeEvent) {
	switch e := ev.(type) {
	case NativeCloseRequested:
		w.sendWindowEvent(CloseRequested{})

	case NativeConfigured:
		moved := e.X != w.lastX || e.Y != w.lastY
		resized := e.Width != w.lastWidth || e.Height != w.lastHeight
		w.lastX, w.lastY = e.X, e.Y
		w.lastWidth, w.lastHeight = e.Width, e.Height

		// Outer geometry is surface geometry grown by the WM frame. It
		// is refreshed on every configure, since the frame can change
		// (e.g. the WM toggling decorations) without a surface move.
		w.state.SetOuterPosition(e.X-int32(e.Frame.Left), e.Y-int32(e.Frame.Top))
		w.state.SetOuterSize(
			e.Width+e.Frame.Left+e.Frame.Right,
			e.Height+e.Frame.Top+e.Frame.Bottom,
		)

		if moved {
			w.state.SetSurfacePosition(e.X, e.Y)
			w.sendWindowEvent(Moved{Position: w.state.SurfacePosition()})
		}
		if resized {
			w.state.SetSurfaceSize(e.Width, e.Height)
			w.sendWindowEvent(SurfaceResized{Size: w.state.SurfaceSize()})
		}

	case NativeFocusChanged:
		w.sendWindowEvent(Focused{Focused: e.Focused})

	case NativeDestroyed:
		w.sendWindowEvent(Destroyed{})

	case NativeExposed:
		w.redraws.push(w.id)

	case NativeScaleChanged:
		w.state.SetScaleFactor(e.ScaleFactor)
	}
}
