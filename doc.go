// Package winit bridges a single-threaded native windowing main loop with
// applications written against a thread-agnostic windowing API.
//
// All native window mutation happens on the main-loop thread: the thread
// (OS-thread locked goroutine) that calls EventLoop.RunApp or
// EventLoop.PumpEvents. Any other goroutine may hold a Window handle and
// issue mutation requests through it; the requests are queued and applied
// in send order by the main loop. Window geometry and scale factor are
// mirrored into a synchronized snapshot that can be read from any
// goroutine without blocking the main loop.
//
// The only supported native backend is X11, driven over the wire protocol
// with github.com/BurntSushi/xgb, so no cgo is required. A Wayland session
// is served through XWayland; display and window handles for which no
// native representation exists report themselves as unavailable instead of
// failing at startup.
package winit
