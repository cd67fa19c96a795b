// Package x11 drives the X11 display over the wire protocol. It owns the
// connection, window creation and mutation, and the translation of raw
// protocol events into the small event vocabulary the event loop core
// consumes. No cgo: everything goes through xgb/xgbutil.
package x11

import (
	"fmt"
	"os"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"
)

// Connection manages the X11 connection and core X resources.
type Connection struct {
	XUtil *xgbutil.XUtil
	Root  xproto.Window

	displayName string
	screen      int
	scaleFactor float64

	wmProtocols    xproto.Atom
	wmDeleteWindow xproto.Atom
}

// NewConnection connects to the X server. An empty display string falls
// back to $DISPLAY. scaleFactor must be positive; pass 1 when no
// override is configured.
func NewConnection(display string, scaleFactor float64) (*Connection, error) {
	if display == "" {
		display = os.Getenv("DISPLAY")
	}

	var xu *xgbutil.XUtil
	var err error
	if display == "" {
		xu, err = xgbutil.NewConn()
	} else {
		xu, err = xgbutil.NewConnDisplay(display)
	}
	if err != nil {
		return nil, err
	}

	if scaleFactor <= 0 {
		scaleFactor = 1
	}

	c := &Connection{
		XUtil:       xu,
		Root:        xu.RootWin(),
		displayName: display,
		screen:      xu.Conn().DefaultScreen,
		scaleFactor: scaleFactor,
	}

	// Intern the WM protocol atoms up front; every close request needs
	// them and interning late would race the first ClientMessage.
	if c.wmProtocols, err = xprop.Atm(xu, "WM_PROTOCOLS"); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("failed to intern WM_PROTOCOLS: %w", err)
	}
	if c.wmDeleteWindow, err = xprop.Atm(xu, "WM_DELETE_WINDOW"); err != nil {
		xu.Conn().Close()
		return nil, fmt.Errorf("failed to intern WM_DELETE_WINDOW: %w", err)
	}

	return c, nil
}

// DisplayName returns the display string the connection was opened with.
func (c *Connection) DisplayName() string {
	if c.displayName != "" {
		return c.displayName
	}
	return os.Getenv("DISPLAY")
}

// Screen returns the default screen number.
func (c *Connection) Screen() int {
	return c.screen
}

// ScaleFactor returns the configured scale factor for this display.
func (c *Connection) ScaleFactor() float64 {
	return c.scaleFactor
}

// FrameExtents returns the window manager's decoration border widths
// around a window, in device pixels. Windows without _NET_FRAME_EXTENTS
// (undecorated, or a WM that does not set it) report zero extents.
func (c *Connection) FrameExtents(win xproto.Window) (left, right, top, bottom int) {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, win)
	if err != nil || extents == nil {
		return 0, 0, 0, 0
	}
	return extents.Left, extents.Right, extents.Top, extents.Bottom
}

// Sync flushes buffered requests and waits for the server to process
// them.
func (c *Connection) Sync() error {
	c.XUtil.Conn().Sync()
	return nil
}

// Close cleanly disconnects from the X11 server.
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
