package winit

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/Charlie-XIAO/winit/dpi"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackend is an in-memory Backend: tests inject native events into
// its channel and inspect the fake native windows it hands out.
type fakeBackend struct {
	mu      sync.Mutex
	events  chan NativeEvent
	windows []*fakeNativeWindow
	nextID  WindowID
	closed  bool
}

var _ Backend = (*fakeBackend)(nil)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		events: make(chan NativeEvent, 128),
		nextID: 1,
	}
}

func (b *fakeBackend) inject(ev NativeEvent) {
	b.events <- ev
}

func (b *fakeBackend) DisplayHandle() OwnedDisplayHandle {
	return NewX11DisplayHandle(X11DisplayHandle{Display: ":99", Screen: 0})
}

func (b *fakeBackend) Events() <-chan NativeEvent {
	return b.events
}

func (b *fakeBackend) CreateWindow(attrs WindowAttributes) (NativeWindow, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	win := &fakeNativeWindow{
		id:        b.nextID,
		title:     attrs.Title,
		visible:   attrs.Visible,
		resizable: attrs.Resizable,
		width:     uint32(attrs.SurfaceSize.Width),
		height:    uint32(attrs.SurfaceSize.Height),
	}
	b.nextID++
	b.windows = append(b.windows, win)
	return win, nil
}

func (b *fakeBackend) AvailableMonitors() ([]Monitor, error) {
	return []Monitor{{
		Name: "FAKE-0",
		Size: dpi.PhysicalSize{Width: 1920, Height: 1080},
	}}, nil
}

func (b *fakeBackend) PrimaryMonitor() (Monitor, error) {
	monitors, _ := b.AvailableMonitors()
	return monitors[0], nil
}

func (b *fakeBackend) Flush() error { return nil }

func (b *fakeBackend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.closed = true
		close(b.events)
	}
	return nil
}

func (b *fakeBackend) isClosed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.closed
}

// fakeNativeWindow records every mutation so tests can assert both final
// state and application order.
type fakeNativeWindow struct {
	mu            sync.Mutex
	id            WindowID
	title         string
	visible       bool
	resizable     bool
	destroyed     bool
	width, height uint32
	log           []string
}

var _ NativeWindow = (*fakeNativeWindow)(nil)

func (w *fakeNativeWindow) ID() WindowID        { return w.id }
func (w *fakeNativeWindow) ScaleFactor() float64 { return 1 }

func (w *fakeNativeWindow) Geometry() (x, y int32, width, height uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return 0, 0, w.width, w.height
}

func (w *fakeNativeWindow) SetTitle(title string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
	w.log = append(w.log, "title="+title)
	return nil
}

func (w *fakeNativeWindow) SetVisible(visible bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = visible
	w.log = append(w.log, fmt.Sprintf("visible=%t", visible))
	return nil
}

func (w *fakeNativeWindow) SetResizable(resizable bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resizable = resizable
	w.log = append(w.log, fmt.Sprintf("resizable=%t", resizable))
	return nil
}

func (w *fakeNativeWindow) SetOuterPosition(x, y int32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.log = append(w.log, fmt.Sprintf("position=%d,%d", x, y))
	return nil
}

func (w *fakeNativeWindow) SetSurfaceSize(width, height uint32) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width, w.height = width, height
	w.log = append(w.log, fmt.Sprintf("size=%dx%d", width, height))
	return nil
}

func (w *fakeNativeWindow) Destroy() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.destroyed = true
	w.log = append(w.log, "destroy")
	return nil
}

func (w *fakeNativeWindow) WindowHandle() OwnedWindowHandle {
	return NewX11WindowHandle(X11WindowHandle{Window: uint32(w.id)})
}

func (w *fakeNativeWindow) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

func (w *fakeNativeWindow) Destroyed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.destroyed
}

func (w *fakeNativeWindow) Log() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.log))
	copy(out, w.log)
	return out
}

// testApp is a scriptable ApplicationHandler recording every callback.
type testApp struct {
	onNewEvents         func(*ActiveEventLoop, StartCause)
	onCanCreateSurfaces func(*ActiveEventLoop)
	onWindowEvent       func(*ActiveEventLoop, WindowID, WindowEvent)
	onProxyWakeUp       func(*ActiveEventLoop)
	onAboutToWait       func(*ActiveEventLoop)

	causes       []StartCause
	windowEvents []recordedWindowEvent
	proxyWakes   int
	aboutToWaits int
}

type recordedWindowEvent struct {
	id    WindowID
	event WindowEvent
}

var _ ApplicationHandler = (*testApp)(nil)

func (a *testApp) NewEvents(ael *ActiveEventLoop, cause StartCause) {
	a.causes = append(a.causes, cause)
	if a.onNewEvents != nil {
		a.onNewEvents(ael, cause)
	}
}

func (a *testApp) CanCreateSurfaces(ael *ActiveEventLoop) {
	if a.onCanCreateSurfaces != nil {
		a.onCanCreateSurfaces(ael)
	}
}

func (a *testApp) WindowEvent(ael *ActiveEventLoop, id WindowID, event WindowEvent) {
	a.windowEvents = append(a.windowEvents, recordedWindowEvent{id: id, event: event})
	if a.onWindowEvent != nil {
		a.onWindowEvent(ael, id, event)
	}
}

func (a *testApp) DeviceEvent(ael *ActiveEventLoop, id DeviceID, event DeviceEvent) {}

func (a *testApp) ProxyWakeUp(ael *ActiveEventLoop) {
	a.proxyWakes++
	if a.onProxyWakeUp != nil {
		a.onProxyWakeUp(ael)
	}
}

func (a *testApp) AboutToWait(ael *ActiveEventLoop) {
	a.aboutToWaits++
	if a.onAboutToWait != nil {
		a.onAboutToWait(ael)
	}
}

// redrawEvents filters the recorded window events down to redraws for a
// given window.
func (a *testApp) redrawEvents(id WindowID) int {
	n := 0
	for _, ev := range a.windowEvents {
		if ev.id != id {
			continue
		}
		if _, ok := ev.event.(RedrawRequested); ok {
			n++
		}
	}
	return n
}
