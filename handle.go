package winit

// HandleBackend tags which display backend a native handle belongs to.
type HandleBackend int

const (
	// BackendUnavailable means no native handle exists. This is a
	// legitimate terminal state, not an error: handle queries against it
	// fail explicitly instead of handing out a zero handle.
	BackendUnavailable HandleBackend = iota
	BackendX11
	BackendWayland
)

func (b HandleBackend) String() string {
	switch b {
	case BackendX11:
		return "x11"
	case BackendWayland:
		return "wayland"
	default:
		return "unavailable"
	}
}

// X11DisplayHandle identifies an X11 display connection.
type X11DisplayHandle struct {
	// Display is the display string the connection was opened with
	// (e.g. ":0").
	Display string
	// Screen is the default screen number.
	Screen int
}

// WaylandDisplayHandle identifies a Wayland display connection by its
// socket name (e.g. "wayland-0").
type WaylandDisplayHandle struct {
	Socket string
}

// RawDisplayHandle is one concrete display handle variant.
type RawDisplayHandle interface {
	isRawDisplayHandle()
}

func (X11DisplayHandle) isRawDisplayHandle()     {}
func (WaylandDisplayHandle) isRawDisplayHandle() {}

// OwnedDisplayHandle is a process-wide, reference-shareable display
// handle. It is constructed once per event loop and immutable thereafter.
type OwnedDisplayHandle struct {
	backend HandleBackend
	raw     RawDisplayHandle
}

// NewX11DisplayHandle wraps an X11 display handle.
func NewX11DisplayHandle(h X11DisplayHandle) OwnedDisplayHandle {
	return OwnedDisplayHandle{backend: BackendX11, raw: h}
}

// NewWaylandDisplayHandle wraps a Wayland display handle.
func NewWaylandDisplayHandle(h WaylandDisplayHandle) OwnedDisplayHandle {
	return OwnedDisplayHandle{backend: BackendWayland, raw: h}
}

// UnavailableDisplayHandle returns the terminal unavailable variant.
func UnavailableDisplayHandle() OwnedDisplayHandle {
	return OwnedDisplayHandle{backend: BackendUnavailable}
}

// Backend returns which backend the handle belongs to.
func (h OwnedDisplayHandle) Backend() HandleBackend { return h.backend }

// Raw returns the concrete handle variant, or ErrHandleUnavailable.
func (h OwnedDisplayHandle) Raw() (RawDisplayHandle, error) {
	if h.raw == nil {
		return nil, ErrHandleUnavailable
	}
	return h.raw, nil
}

// X11WindowHandle identifies an X11 window by its protocol-level id.
type X11WindowHandle struct {
	Window uint32
}

// WaylandWindowHandle identifies a Wayland surface by its object pointer.
// The pure-Go X11 backend never produces one; it exists for embedders
// that obtain surfaces elsewhere.
type WaylandWindowHandle struct {
	Surface uintptr
}

// RawWindowHandle is one concrete window handle variant.
type RawWindowHandle interface {
	isRawWindowHandle()
}

func (X11WindowHandle) isRawWindowHandle()     {}
func (WaylandWindowHandle) isRawWindowHandle() {}

// OwnedWindowHandle is a per-window native handle, constructed once at
// window creation and immutable thereafter.
type OwnedWindowHandle struct {
	backend HandleBackend
	raw     RawWindowHandle
}

// NewX11WindowHandle wraps an X11 window handle. A zero window id yields
// the unavailable variant.
func NewX11WindowHandle(h X11WindowHandle) OwnedWindowHandle {
	if h.Window == 0 {
		return UnavailableWindowHandle()
	}
	return OwnedWindowHandle{backend: BackendX11, raw: h}
}

// NewWaylandWindowHandle wraps a Wayland window handle. A nil surface
// pointer yields the unavailable variant.
func NewWaylandWindowHandle(h WaylandWindowHandle) OwnedWindowHandle {
	if h.Surface == 0 {
		return UnavailableWindowHandle()
	}
	return OwnedWindowHandle{backend: BackendWayland, raw: h}
}

// UnavailableWindowHandle returns the terminal unavailable variant.
func UnavailableWindowHandle() OwnedWindowHandle {
	return OwnedWindowHandle{backend: BackendUnavailable}
}

// Backend returns which backend the handle belongs to.
func (h OwnedWindowHandle) Backend() HandleBackend { return h.backend }

// Raw returns the concrete handle variant, or ErrHandleUnavailable.
func (h OwnedWindowHandle) Raw() (RawWindowHandle, error) {
	if h.raw == nil {
		return nil, ErrHandleUnavailable
	}
	return h.raw, nil
}
