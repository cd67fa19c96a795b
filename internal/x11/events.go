package x11

import (
	"math"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Event is one translated occurrence on a window. Geometry is logical.
type Event interface {
	Window() xproto.Window
	isEvent()
}

// CloseRequested is a WM_DELETE_WINDOW client message.
type CloseRequested struct {
	Win xproto.Window
}

// Configured is a ConfigureNotify: new position and size, plus the WM
// frame borders so outer geometry can be derived.
type Configured struct {
	Win           xproto.Window
	X, Y          int
	Width, Height int

	FrameLeft, FrameRight int
	FrameTop, FrameBottom int
}

// FocusChanged is a FocusIn or FocusOut.
type FocusChanged struct {
	Win     xproto.Window
	Focused bool
}

// Destroyed is a DestroyNotify.
type Destroyed struct {
	Win xproto.Window
}

// Exposed is an Expose; the final event of a series (count zero).
type Exposed struct {
	Win xproto.Window
}

func (e CloseRequested) Window() xproto.Window { return e.Win }
func (e Configured) Window() xproto.Window     { return e.Win }
func (e FocusChanged) Window() xproto.Window   { return e.Win }
func (e Destroyed) Window() xproto.Window      { return e.Win }
func (e Exposed) Window() xproto.Window        { return e.Win }

func (CloseRequested) isEvent() {}
func (Configured) isEvent()     {}
func (FocusChanged) isEvent()   {}
func (Destroyed) isEvent()      {}
func (Exposed) isEvent()        {}

// Translate converts a raw protocol event into the package vocabulary.
// Events the core does not consume translate to (nil, false).
func (c *Connection) Translate(raw xgb.Event) (Event, bool) {
	switch ev := raw.(type) {
	case xproto.ClientMessageEvent:
		if ev.Type != c.wmProtocols || ev.Format != 32 {
			return nil, false
		}
		data := ev.Data.Data32
		if len(data) == 0 || xproto.Atom(data[0]) != c.wmDeleteWindow {
			return nil, false
		}
		return CloseRequested{Win: ev.Window}, true

	case xproto.ConfigureNotifyEvent:
		scale := c.scaleFactor
		left, right, top, bottom := c.FrameExtents(ev.Window)
		return Configured{
			Win:         ev.Window,
			X:           int(math.Round(float64(ev.X) / scale)),
			Y:           int(math.Round(float64(ev.Y) / scale)),
			Width:       int(math.Round(float64(ev.Width) / scale)),
			Height:      int(math.Round(float64(ev.Height) / scale)),
			FrameLeft:   int(math.Round(float64(left) / scale)),
			FrameRight:  int(math.Round(float64(right) / scale)),
			FrameTop:    int(math.Round(float64(top) / scale)),
			FrameBottom: int(math.Round(float64(bottom) / scale)),
		}, true

	case xproto.FocusInEvent:
		if ev.Mode != xproto.NotifyModeNormal {
			return nil, false
		}
		return FocusChanged{Win: ev.Event, Focused: true}, true

	case xproto.FocusOutEvent:
		if ev.Mode != xproto.NotifyModeNormal {
			return nil, false
		}
		return FocusChanged{Win: ev.Event, Focused: false}, true

	case xproto.DestroyNotifyEvent:
		return Destroyed{Win: ev.Window}, true

	case xproto.ExposeEvent:
		// Intermediate events of a series carry a nonzero count; only
		// the last one matters since redraws coalesce anyway.
		if ev.Count != 0 {
			return nil, false
		}
		return Exposed{Win: ev.Window}, true
	}

	return nil, false
}

// StartEventReader spawns the single reader goroutine that moves
// translated events onto the returned channel. The channel closes when
// the connection shuts down.
func (c *Connection) StartEventReader(buffer int) <-chan Event {
	ch := make(chan Event, buffer)
	go func() {
		defer close(ch)
		for {
			raw, err := c.XUtil.Conn().WaitForEvent()
			if raw == nil && err == nil {
				// Connection closed.
				return
			}
			if err != nil {
				// Protocol-level errors (e.g. a request against an
				// already-destroyed window) are not fatal to the loop.
				continue
			}
			if ev, ok := c.Translate(raw); ok {
				ch <- ev
			}
		}
	}()
	return ch
}
