// Command winit-demo opens a window and logs its event stream. Close the
// window to exit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	winit "github.com/Charlie-XIAO/winit"
)

type demoApp struct {
	logger *slog.Logger
	window *winit.Window
}

func (a *demoApp) NewEvents(ael *winit.ActiveEventLoop, cause winit.StartCause) {
	if _, ok := cause.(winit.CauseInit); ok {
		a.logger.Info("event loop started")
	}
}

func (a *demoApp) CanCreateSurfaces(ael *winit.ActiveEventLoop) {
	attrs := winit.DefaultWindowAttributes()
	attrs.Title = "winit demo"

	win, err := ael.CreateWindow(attrs)
	if err != nil {
		a.logger.Error("failed to create window", "err", err)
		ael.ExitWithCode(1)
		return
	}
	a.window = win

	if monitors, err := ael.AvailableMonitors(); err == nil {
		for _, m := range monitors {
			a.logger.Info("monitor",
				"name", m.Name,
				"size", fmt.Sprintf("%dx%d", m.Size.Width, m.Size.Height),
				"position", fmt.Sprintf("%d,%d", m.Position.X, m.Position.Y))
		}
	}

	win.RequestRedraw()
}

func (a *demoApp) WindowEvent(ael *winit.ActiveEventLoop, id winit.WindowID, event winit.WindowEvent) {
	switch ev := event.(type) {
	case winit.CloseRequested:
		a.logger.Info("close requested", "window", id)
		a.window.Destroy()
		ael.Exit()
	case winit.SurfaceResized:
		a.logger.Info("resized", "window", id,
			"size", fmt.Sprintf("%dx%d", ev.Size.Width, ev.Size.Height))
	case winit.Moved:
		a.logger.Info("moved", "window", id,
			"position", fmt.Sprintf("%d,%d", ev.Position.X, ev.Position.Y))
	case winit.Focused:
		a.logger.Info("focus changed", "window", id, "focused", ev.Focused)
	case winit.RedrawRequested:
		a.logger.Debug("redraw", "window", id)
	}
}

func (a *demoApp) DeviceEvent(ael *winit.ActiveEventLoop, id winit.DeviceID, event winit.DeviceEvent) {
}

func (a *demoApp) ProxyWakeUp(ael *winit.ActiveEventLoop) {
	a.logger.Info("proxy wake")
}

func (a *demoApp) AboutToWait(ael *winit.ActiveEventLoop) {}

func main() {
	verbose := flag.Bool("v", false, "enable debug logging")
	retitle := flag.Duration("retitle", 0, "retitle the window from a background goroutine at this interval")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	el, err := winit.NewEventLoop(winit.WithAppID("winit-demo"), winit.WithLogger(logger))
	if err != nil {
		logger.Error("failed to create event loop", "err", err)
		os.Exit(1)
	}

	app := &demoApp{logger: logger}

	if *retitle > 0 {
		go func() {
			ticker := time.NewTicker(*retitle)
			defer ticker.Stop()
			for i := 0; ; i++ {
				<-ticker.C
				if app.window == nil {
					continue
				}
				app.window.SetTitle(fmt.Sprintf("winit demo (%d)", i))
				app.window.RequestRedraw()
			}
		}()
	}

	if err := el.RunApp(app); err != nil {
		logger.Error("event loop exited with error", "err", err)
		os.Exit(1)
	}
}
