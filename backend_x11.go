package winit

import (
	"log/slog"

	"github.com/Charlie-XIAO/winit/dpi"
	"github.com/Charlie-XIAO/winit/internal/config"
	"github.com/Charlie-XIAO/winit/internal/x11"
)

// x11Backend adapts the x11 package to the Backend interface.
type x11Backend struct {
	conn   *x11.Connection
	appID  string
	logger *slog.Logger
	events chan NativeEvent
}

var _ Backend = (*x11Backend)(nil)

func newX11Backend(appID string, env *config.Config, logger *slog.Logger) (*x11Backend, error) {
	conn, err := x11.NewConnection(env.Display, env.ScaleFactor)
	if err != nil {
		return nil, osError("failed to connect to the X11 display", err)
	}

	b := &x11Backend{
		conn:   conn,
		appID:  appID,
		logger: logger,
		events: make(chan NativeEvent, 64),
	}
	go b.forward(conn.StartEventReader(64))
	return b, nil
}

// forward moves translated protocol events from the reader goroutine
// onto the backend's event channel.
func (b *x11Backend) forward(src <-chan x11.Event) {
	defer close(b.events)
	for ev := range src {
		if native, ok := b.translate(ev); ok {
			b.events <- native
		}
	}
	b.logger.Debug("x11 event stream closed")
}

func (b *x11Backend) translate(ev x11.Event) (NativeEvent, bool) {
	id := WindowID(ev.Window())
	switch e := ev.(type) {
	case x11.CloseRequested:
		return NativeCloseRequested{Window: id}, true
	case x11.Configured:
		return NativeConfigured{
			Window: id,
			X:      int32(e.X),
			Y:      int32(e.Y),
			Width:  uint32(e.Width),
			Height: uint32(e.Height),
			Frame: FrameExtents{
				Left:   uint32(e.FrameLeft),
				Right:  uint32(e.FrameRight),
				Top:    uint32(e.FrameTop),
				Bottom: uint32(e.FrameBottom),
			},
		}, true
	case x11.FocusChanged:
		return NativeFocusChanged{Window: id, Focused: e.Focused}, true
	case x11.Destroyed:
		return NativeDestroyed{Window: id}, true
	case x11.Exposed:
		return NativeExposed{Window: id}, true
	}
	return nil, false
}

func (b *x11Backend) DisplayHandle() OwnedDisplayHandle {
	return NewX11DisplayHandle(X11DisplayHandle{
		Display: b.conn.DisplayName(),
		Screen:  b.conn.Screen(),
	})
}

func (b *x11Backend) Events() <-chan NativeEvent {
	return b.events
}

func (b *x11Backend) CreateWindow(attrs WindowAttributes) (NativeWindow, error) {
	opts := x11.WindowOptions{
		Title:     attrs.Title,
		Width:     int(attrs.SurfaceSize.Width),
		Height:    int(attrs.SurfaceSize.Height),
		Visible:   attrs.Visible,
		Resizable: attrs.Resizable,
		AppID:     b.appID,
	}
	if attrs.Position != nil {
		opts.Placed = true
		opts.X = int(attrs.Position.X)
		opts.Y = int(attrs.Position.Y)
	}

	win, err := b.conn.CreateWindow(opts)
	if err != nil {
		return nil, osError("failed to create X11 window", err)
	}
	return &x11NativeWindow{conn: b.conn, win: win}, nil
}

func (b *x11Backend) AvailableMonitors() ([]Monitor, error) {
	raw, err := b.conn.GetMonitors()
	if err != nil {
		return nil, osError("failed to enumerate monitors", err)
	}
	monitors := make([]Monitor, 0, len(raw))
	for _, m := range raw {
		monitors = append(monitors, monitorFromX11(m))
	}
	return monitors, nil
}

func (b *x11Backend) PrimaryMonitor() (Monitor, error) {
	m, err := b.conn.GetPrimaryMonitor()
	if err != nil {
		return Monitor{}, osError("failed to query primary monitor", err)
	}
	return monitorFromX11(m), nil
}

func (b *x11Backend) Flush() error {
	return b.conn.Sync()
}

func (b *x11Backend) Close() error {
	b.conn.Close()
	return nil
}

func monitorFromX11(m x11.Monitor) Monitor {
	return Monitor{
		Name:     m.Name,
		Position: dpi.PhysicalPosition{X: int32(m.X), Y: int32(m.Y)},
		Size:     dpi.PhysicalSize{Width: uint32(m.Width), Height: uint32(m.Height)},
	}
}

// x11NativeWindow adapts an x11.Window to the NativeWindow interface.
type x11NativeWindow struct {
	conn *x11.Connection
	win  *x11.Window
}

var _ NativeWindow = (*x11NativeWindow)(nil)

func (w *x11NativeWindow) ID() WindowID {
	return WindowID(w.win.ID())
}

func (w *x11NativeWindow) ScaleFactor() float64 {
	return w.conn.ScaleFactor()
}

func (w *x11NativeWindow) Geometry() (x, y int32, width, height uint32) {
	gx, gy, gw, gh := w.win.Geometry()
	return int32(gx), int32(gy), uint32(gw), uint32(gh)
}

func (w *x11NativeWindow) SetTitle(title string) error {
	return w.win.SetTitle(title)
}

func (w *x11NativeWindow) SetVisible(visible bool) error {
	return w.win.SetVisible(visible)
}

func (w *x11NativeWindow) SetResizable(resizable bool) error {
	return w.win.SetResizable(resizable)
}

func (w *x11NativeWindow) SetOuterPosition(x, y int32) error {
	return w.win.SetPosition(int(x), int(y))
}

func (w *x11NativeWindow) SetSurfaceSize(width, height uint32) error {
	return w.win.SetSize(int(width), int(height))
}

func (w *x11NativeWindow) Destroy() error {
	return w.win.Destroy()
}

func (w *x11NativeWindow) WindowHandle() OwnedWindowHandle {
	return NewX11WindowHandle(X11WindowHandle{Window: uint32(w.win.ID())})
}
