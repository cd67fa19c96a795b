package winit

import (
	"time"

	"github.com/Charlie-XIAO/winit/dpi"
)

// WindowID identifies a live window. It is derived from the native window
// identifier, stable for the window's lifetime, and not reused while the
// window exists.
type WindowID uint64

// DeviceID identifies an input device.
type DeviceID uint64

// StartCause describes why an application iteration is running.
type StartCause interface {
	isStartCause()
}

// CauseInit is the synthetic cause of the very first iteration after the
// loop starts or restarts.
type CauseInit struct{}

// CausePoll means the loop is in Poll mode and ran immediately.
type CausePoll struct{}

// CauseWaitCancelled means a wait was interrupted by pending work before
// any requested resume time was reached.
type CauseWaitCancelled struct {
	Start           time.Time
	RequestedResume *time.Time
}

// CauseResumeTimeReached means a WaitUntil deadline fired.
type CauseResumeTimeReached struct {
	Start           time.Time
	RequestedResume time.Time
}

func (CauseInit) isStartCause()              {}
func (CausePoll) isStartCause()              {}
func (CauseWaitCancelled) isStartCause()     {}
func (CauseResumeTimeReached) isStartCause() {}

// WindowEvent is an event produced by a window's native signal wiring.
type WindowEvent interface {
	isWindowEvent()
}

// CloseRequested means the user asked the window to close (e.g. via the
// window manager close button). The window is not destroyed until the
// application requests it.
type CloseRequested struct{}

// Moved reports the window's new surface position in physical pixels.
type Moved struct {
	Position dpi.PhysicalPosition
}

// SurfaceResized reports the surface's new size in physical pixels. The
// shared window state already reflects the new size when this event is
// delivered.
type SurfaceResized struct {
	Size dpi.PhysicalSize
}

// Focused reports a keyboard focus change.
type Focused struct {
	Focused bool
}

// Destroyed means the native window object is gone. This is the last
// event delivered for a given WindowID.
type Destroyed struct{}

// RedrawRequested asks the application to redraw the window's surface.
// Multiple redraw requests between iterations collapse into one event.
type RedrawRequested struct{}

func (CloseRequested) isWindowEvent()  {}
func (Moved) isWindowEvent()           {}
func (SurfaceResized) isWindowEvent()  {}
func (Focused) isWindowEvent()         {}
func (Destroyed) isWindowEvent()       {}
func (RedrawRequested) isWindowEvent() {}

// DeviceEvent is an event produced by an input device rather than a
// window. The X11 backend currently produces none; the type exists so
// embedders and future backends share one delivery path.
type DeviceEvent interface {
	isDeviceEvent()
}

// DeviceAdded reports that a device became available.
type DeviceAdded struct{}

// DeviceRemoved reports that a device went away.
type DeviceRemoved struct{}

func (DeviceAdded) isDeviceEvent()   {}
func (DeviceRemoved) isDeviceEvent() {}

// queuedEvent is one entry of the outgoing event queue, either a window
// event or a device event.
type queuedEvent struct {
	windowID    WindowID
	windowEvent WindowEvent

	deviceID    DeviceID
	deviceEvent DeviceEvent
}
