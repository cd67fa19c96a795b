package x11

import (
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xwindow"
)

// WindowOptions is the creation-time configuration of an X11 window.
// Geometry is in logical pixels; the connection's scale factor converts
// to device pixels.
type WindowOptions struct {
	Title     string
	X, Y      int
	Placed    bool // honor X/Y instead of letting the WM place
	Width     int
	Height    int
	Visible   bool
	Resizable bool
	AppID     string
}

// Window is one top-level X11 window. All methods must run on the
// thread driving the connection.
type Window struct {
	conn *Connection
	id   xproto.Window

	x, y          int
	width, height int
}

// CreateWindow creates, configures, and optionally maps a top-level
// window.
func (c *Connection) CreateWindow(opts WindowOptions) (*Window, error) {
	id, err := xproto.NewWindowId(c.XUtil.Conn())
	if err != nil {
		return nil, fmt.Errorf("failed to allocate window id: %w", err)
	}

	screen := c.XUtil.Screen()
	scale := c.scaleFactor
	pxW := uint16(math.Round(float64(opts.Width) * scale))
	pxH := uint16(math.Round(float64(opts.Height) * scale))
	pxX := int16(math.Round(float64(opts.X) * scale))
	pxY := int16(math.Round(float64(opts.Y) * scale))

	err = xproto.CreateWindowChecked(
		c.XUtil.Conn(),
		screen.RootDepth,
		id,
		c.Root,
		pxX, pxY, pxW, pxH,
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			screen.WhitePixel,
			xproto.EventMaskStructureNotify |
				xproto.EventMaskFocusChange |
				xproto.EventMaskExposure,
		},
	).Check()
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	w := &Window{
		conn:   c,
		id:     id,
		x:      opts.X,
		y:      opts.Y,
		width:  opts.Width,
		height: opts.Height,
	}

	if err := w.SetTitle(opts.Title); err != nil {
		return nil, err
	}

	// Opt into WM_DELETE_WINDOW so a close button press arrives as a
	// ClientMessage instead of the server killing the connection.
	if err := icccm.WmProtocolsSet(c.XUtil, id, []string{"WM_DELETE_WINDOW"}); err != nil {
		return nil, fmt.Errorf("failed to set WM_PROTOCOLS: %w", err)
	}

	if opts.AppID != "" {
		err := icccm.WmClassSet(c.XUtil, id, &icccm.WmClass{
			Instance: opts.AppID,
			Class:    opts.AppID,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to set WM_CLASS: %w", err)
		}
	}

	if opts.Placed {
		hints := icccm.NormalHints{
			Flags: icccm.SizeHintUSPosition,
			X:     int(pxX),
			Y:     int(pxY),
		}
		if err := icccm.WmNormalHintsSet(c.XUtil, id, &hints); err != nil {
			return nil, fmt.Errorf("failed to set position hints: %w", err)
		}
	}

	if !opts.Resizable {
		if err := w.SetResizable(false); err != nil {
			return nil, err
		}
	}

	if opts.Visible {
		if err := w.SetVisible(true); err != nil {
			return nil, err
		}
	}

	return w, nil
}

// ID returns the protocol-level window id.
func (w *Window) ID() xproto.Window {
	return w.id
}

// Geometry returns the creation-time logical geometry.
func (w *Window) Geometry() (x, y, width, height int) {
	return w.x, w.y, w.width, w.height
}

// SetTitle sets both the EWMH and ICCCM window names; some window
// managers only read one of the two.
func (w *Window) SetTitle(title string) error {
	if err := ewmh.WmNameSet(w.conn.XUtil, w.id, title); err != nil {
		return fmt.Errorf("failed to set _NET_WM_NAME: %w", err)
	}
	if err := icccm.WmNameSet(w.conn.XUtil, w.id, title); err != nil {
		return fmt.Errorf("failed to set WM_NAME: %w", err)
	}
	return nil
}

// SetVisible maps or unmaps the window.
func (w *Window) SetVisible(visible bool) error {
	if visible {
		if err := xproto.MapWindowChecked(w.conn.XUtil.Conn(), w.id).Check(); err != nil {
			return fmt.Errorf("failed to map window: %w", err)
		}
		return nil
	}
	if err := xproto.UnmapWindowChecked(w.conn.XUtil.Conn(), w.id).Check(); err != nil {
		return fmt.Errorf("failed to unmap window: %w", err)
	}
	return nil
}

// SetPosition moves the window frame. Logical coordinates.
func (w *Window) SetPosition(x, y int) error {
	scale := w.conn.scaleFactor
	pxX := int(math.Round(float64(x) * scale))
	pxY := int(math.Round(float64(y) * scale))

	// EWMH first so the WM can account for the frame; some WMs ignore
	// _NET_MOVERESIZE_WINDOW, then a plain ConfigureWindow has to do.
	if err := ewmh.MoveWindow(w.conn.XUtil, w.id, pxX, pxY); err != nil {
		xwindow.New(w.conn.XUtil, w.id).Move(pxX, pxY)
	}

	w.x, w.y = x, y
	return nil
}

// SetSize resizes the window surface. Logical dimensions.
func (w *Window) SetSize(width, height int) error {
	scale := w.conn.scaleFactor
	pxW := int(math.Round(float64(width) * scale))
	pxH := int(math.Round(float64(height) * scale))

	if err := ewmh.ResizeWindow(w.conn.XUtil, w.id, pxW, pxH); err != nil {
		xwindow.New(w.conn.XUtil, w.id).Resize(pxW, pxH)
	}

	w.width, w.height = width, height
	return nil
}

// SetResizable toggles resizability the ICCCM way: a non-resizable
// window pins min and max size hints to the current size.
func (w *Window) SetResizable(resizable bool) error {
	hints := icccm.NormalHints{}

	if !resizable {
		width, height := w.currentPixelSize()
		hints.Flags = icccm.SizeHintPMinSize | icccm.SizeHintPMaxSize
		hints.MinWidth, hints.MinHeight = width, height
		hints.MaxWidth, hints.MaxHeight = width, height
	}

	if err := icccm.WmNormalHintsSet(w.conn.XUtil, w.id, &hints); err != nil {
		return fmt.Errorf("failed to set WM_NORMAL_HINTS: %w", err)
	}
	return nil
}

// Destroy destroys the native window. DestroyNotify arrives through the
// event stream afterwards.
func (w *Window) Destroy() error {
	if err := xproto.DestroyWindowChecked(w.conn.XUtil.Conn(), w.id).Check(); err != nil {
		return fmt.Errorf("failed to destroy window: %w", err)
	}
	return nil
}

// currentPixelSize queries the live geometry, falling back to the
// creation size when the round trip fails.
func (w *Window) currentPixelSize() (width, height uint) {
	geom, err := xproto.GetGeometry(w.conn.XUtil.Conn(), xproto.Drawable(w.id)).Reply()
	if err != nil {
		scale := w.conn.scaleFactor
		return uint(math.Round(float64(w.width) * scale)),
			uint(math.Round(float64(w.height) * scale))
	}
	return uint(geom.Width), uint(geom.Height)
}
