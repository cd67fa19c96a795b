package winit

// ApplicationHandler receives the typed callback sequence produced by the
// event loop driver. All callbacks run on the main-loop thread.
//
// Per iteration the order is: NewEvents, then every queued window and
// device event in arrival order, at most one ProxyWakeUp if the proxy was
// woken, at most one RedrawRequested per window with a pending redraw,
// and finally AboutToWait before the loop blocks again.
type ApplicationHandler interface {
	// NewEvents marks the start of an iteration and carries its cause.
	NewEvents(ael *ActiveEventLoop, cause StartCause)

	// CanCreateSurfaces is called once at startup, after which the
	// application may create windows and rendering surfaces.
	CanCreateSurfaces(ael *ActiveEventLoop)

	// WindowEvent delivers an event for a specific window.
	WindowEvent(ael *ActiveEventLoop, id WindowID, event WindowEvent)

	// DeviceEvent delivers an event for an input device.
	DeviceEvent(ael *ActiveEventLoop, id DeviceID, event DeviceEvent)

	// ProxyWakeUp is called when an EventLoopProxy woke the loop.
	ProxyWakeUp(ael *ActiveEventLoop)

	// AboutToWait marks the end of an iteration.
	AboutToWait(ael *ActiveEventLoop)
}
