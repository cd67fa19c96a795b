package winit

import "github.com/Charlie-XIAO/winit/dpi"

// WindowAttributes describes the initial configuration of a window.
type WindowAttributes struct {
	Title string
	// SurfaceSize is the initial surface size in logical pixels.
	SurfaceSize dpi.LogicalSize
	// Position is the requested outer position in logical pixels. Nil
	// lets the window manager place the window.
	Position  *dpi.LogicalPosition
	Visible   bool
	Resizable bool
}

// DefaultWindowAttributes returns the attribute defaults: a visible,
// resizable 800x600 window.
func DefaultWindowAttributes() WindowAttributes {
	return WindowAttributes{
		Title:       "winit window",
		SurfaceSize: dpi.LogicalSize{Width: 800, Height: 600},
		Visible:     true,
		Resizable:   true,
	}
}

// NativeEvent is a raw occurrence reported by a backend before any window
// wiring is applied. The driver routes it to the owning window's wiring,
// which decides what (if anything) the application sees.
type NativeEvent interface {
	// WindowID returns the window the event belongs to.
	WindowID() WindowID
	isNativeEvent()
}

// NativeCloseRequested is a window-manager close request.
type NativeCloseRequested struct {
	Window WindowID
}

// FrameExtents are the window-manager decoration border widths around a
// window's surface, in logical pixels. Zero extents mean an undecorated
// window or a WM that does not report them.
type FrameExtents struct {
	Left, Right uint32
	Top, Bottom uint32
}

// NativeConfigured reports new window geometry in logical pixels. X/Y
// and Width/Height describe the surface; Frame carries the decoration
// extents so outer geometry can be derived.
type NativeConfigured struct {
	Window WindowID
	X, Y   int32
	Width  uint32
	Height uint32
	Frame  FrameExtents
}

// NativeFocusChanged reports a keyboard focus change.
type NativeFocusChanged struct {
	Window  WindowID
	Focused bool
}

// NativeDestroyed reports that the native window object is gone.
type NativeDestroyed struct {
	Window WindowID
}

// NativeExposed reports that part of the window needs repainting.
type NativeExposed struct {
	Window WindowID
}

// NativeScaleChanged reports a new scale factor for the window.
type NativeScaleChanged struct {
	Window      WindowID
	ScaleFactor float64
}

func (e NativeCloseRequested) WindowID() WindowID { return e.Window }
func (e NativeConfigured) WindowID() WindowID     { return e.Window }
func (e NativeFocusChanged) WindowID() WindowID   { return e.Window }
func (e NativeDestroyed) WindowID() WindowID      { return e.Window }
func (e NativeExposed) WindowID() WindowID        { return e.Window }
func (e NativeScaleChanged) WindowID() WindowID   { return e.Window }

func (NativeCloseRequested) isNativeEvent() {}
func (NativeConfigured) isNativeEvent()     {}
func (NativeFocusChanged) isNativeEvent()   {}
func (NativeDestroyed) isNativeEvent()      {}
func (NativeExposed) isNativeEvent()        {}
func (NativeScaleChanged) isNativeEvent()   {}

// NativeWindow is the native window object owned by the event loop
// registry. All methods are called on the main-loop thread only; other
// goroutines reach it indirectly through window requests.
type NativeWindow interface {
	ID() WindowID
	ScaleFactor() float64
	// Geometry returns the creation-time logical geometry.
	Geometry() (x, y int32, width, height uint32)
	SetTitle(title string) error
	SetVisible(visible bool) error
	SetResizable(resizable bool) error
	// SetOuterPosition moves the window frame. Logical coordinates.
	SetOuterPosition(x, y int32) error
	// SetSurfaceSize resizes the surface. Logical dimensions.
	SetSurfaceSize(width, height uint32) error
	Destroy() error
	WindowHandle() OwnedWindowHandle
}

// Backend drives one native windowing system. Implementations deliver
// raw events on the Events channel from a single reader goroutine and
// perform all mutation synchronously on the caller's (main-loop) thread.
type Backend interface {
	DisplayHandle() OwnedDisplayHandle
	// Events is the native event stream. The channel is closed when the
	// backend shuts down.
	Events() <-chan NativeEvent
	CreateWindow(attrs WindowAttributes) (NativeWindow, error)
	AvailableMonitors() ([]Monitor, error)
	PrimaryMonitor() (Monitor, error)
	// Flush pushes any buffered protocol writes to the display server.
	Flush() error
	Close() error
}
