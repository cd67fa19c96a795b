package winit

import (
	"math"

	"github.com/Charlie-XIAO/winit/dpi"
)

// Window is the application-facing handle to a live window. It may be
// shared freely across goroutines: mutators enqueue a request and wake
// the main loop (fire-and-forget), geometry getters read the shared
// state snapshot synchronously.
//
// Holding a Window does not keep the native object alive; destruction is
// requested, not immediate.
type Window struct {
	id       WindowID
	requests *requestQueue
	state    *WindowState
	redraws  *redrawQueue
	wake     func()
	display  OwnedDisplayHandle
	handle   OwnedWindowHandle
}

// ID returns the window's identifier.
func (w *Window) ID() WindowID { return w.id }

// ScaleFactor returns the window's current scale factor.
func (w *Window) ScaleFactor() float64 { return w.state.ScaleFactor() }

// RequestRedraw schedules a RedrawRequested event. Requests issued
// between two iterations coalesce into a single event.
func (w *Window) RequestRedraw() {
	w.redraws.push(w.id)
	w.wake()
}

// SetTitle asks the main loop to retitle the window.
func (w *Window) SetTitle(title string) {
	w.requests.send(w.id, requestTitle{title: title})
}

// SetVisible asks the main loop to show or hide the window.
func (w *Window) SetVisible(visible bool) {
	w.requests.send(w.id, requestVisible{visible: visible})
}

// SetResizable asks the main loop to make the window resizable or not.
func (w *Window) SetResizable(resizable bool) {
	w.requests.send(w.id, requestResizable{resizable: resizable})
}

// SetOuterPosition asks the main loop to move the window frame to a
// logical position. The state snapshot updates once the window system
// reports the move, not when the request is sent.
func (w *Window) SetOuterPosition(pos dpi.LogicalPosition) {
	w.requests.send(w.id, requestOuterPosition{
		x: int32(math.Round(pos.X)),
		y: int32(math.Round(pos.Y)),
	})
}

// RequestSurfaceSize asks the main loop to resize the surface to a
// logical size. The window manager may not honor it exactly; the state
// snapshot follows the reported geometry.
func (w *Window) RequestSurfaceSize(size dpi.LogicalSize) {
	w.requests.send(w.id, requestSurfaceSize{
		width:  uint32(math.Round(size.Width)),
		height: uint32(math.Round(size.Height)),
	})
}

// Destroy asks the main loop to destroy the native window and drop it
// from the registry. Requests already queued behind the destroy become
// no-ops.
func (w *Window) Destroy() {
	w.requests.send(w.id, requestDestroy{})
}

// WithNativeWindow runs fn on the main-loop thread with exclusive access
// to the native window object.
func (w *Window) WithNativeWindow(fn func(NativeWindow)) {
	w.requests.send(w.id, requestWithWindow{fn: fn})
}

// SurfacePosition returns the surface position in physical pixels.
func (w *Window) SurfacePosition() dpi.PhysicalPosition {
	return w.state.SurfacePosition()
}

// OuterPosition returns the frame-inclusive position in physical pixels.
func (w *Window) OuterPosition() dpi.PhysicalPosition {
	return w.state.OuterPosition()
}

// SurfaceSize returns the surface size in physical pixels.
func (w *Window) SurfaceSize() dpi.PhysicalSize {
	return w.state.SurfaceSize()
}

// OuterSize returns the frame-inclusive size in physical pixels.
func (w *Window) OuterSize() dpi.PhysicalSize {
	return w.state.OuterSize()
}

// DisplayHandle returns the process-wide native display handle.
func (w *Window) DisplayHandle() OwnedDisplayHandle { return w.display }

// WindowHandle returns the window's native handle.
func (w *Window) WindowHandle() OwnedWindowHandle { return w.handle }
