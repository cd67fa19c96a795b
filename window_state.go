package winit

import (
	"math"
	"sync/atomic"

	"github.com/Charlie-XIAO/winit/dpi"
)

// WindowState is a synchronized snapshot of a window's geometry and scale
// factor. The main-loop thread writes it from native signal wiring; any
// goroutine may read it without blocking on request processing.
//
// Each field is an independent atomic. Readers observe a consistent value
// per field but no cross-field transaction; surface/outer pairs are
// written together on the main-loop thread, which keeps the pairs
// coherent in practice.
type WindowState struct {
	scaleFactor atomic.Uint64 // float64 bits

	surfaceX atomic.Int32
	surfaceY atomic.Int32
	outerX   atomic.Int32
	outerY   atomic.Int32

	surfaceWidth  atomic.Uint32
	surfaceHeight atomic.Uint32
	outerWidth    atomic.Uint32
	outerHeight   atomic.Uint32
}

// NewWindowState returns a state snapshot seeded with the window's
// creation geometry. Positions are logical coordinates.
func NewWindowState(scaleFactor float64, x, y int32, width, height uint32) *WindowState {
	s := &WindowState{}
	s.SetScaleFactor(scaleFactor)
	s.SetSurfacePosition(x, y)
	s.SetOuterPosition(x, y)
	s.SetSurfaceSize(width, height)
	s.SetOuterSize(width, height)
	return s
}

// ScaleFactor returns the current scale factor.
func (s *WindowState) ScaleFactor() float64 {
	return math.Float64frombits(s.scaleFactor.Load())
}

// SetScaleFactor stores a new scale factor.
func (s *WindowState) SetScaleFactor(scale float64) {
	s.scaleFactor.Store(math.Float64bits(scale))
}

// SurfacePosition returns the surface position in physical pixels,
// converted with the scale factor read at call time.
func (s *WindowState) SurfacePosition() dpi.PhysicalPosition {
	logical := dpi.LogicalPosition{
		X: float64(s.surfaceX.Load()),
		Y: float64(s.surfaceY.Load()),
	}
	return logical.ToPhysical(s.ScaleFactor())
}

// SetSurfacePosition stores the surface position in logical pixels.
func (s *WindowState) SetSurfacePosition(x, y int32) {
	s.surfaceX.Store(x)
	s.surfaceY.Store(y)
}

// OuterPosition returns the outer (frame-inclusive) position in physical
// pixels.
func (s *WindowState) OuterPosition() dpi.PhysicalPosition {
	logical := dpi.LogicalPosition{
		X: float64(s.outerX.Load()),
		Y: float64(s.outerY.Load()),
	}
	return logical.ToPhysical(s.ScaleFactor())
}

// SetOuterPosition stores the outer position in logical pixels.
func (s *WindowState) SetOuterPosition(x, y int32) {
	s.outerX.Store(x)
	s.outerY.Store(y)
}

// SurfaceSize returns the surface size in physical pixels. The stored
// logical size is converted with the scale factor read at call time, so a
// scale change is reflected immediately even without a resize.
func (s *WindowState) SurfaceSize() dpi.PhysicalSize {
	logical := dpi.LogicalSize{
		Width:  float64(s.surfaceWidth.Load()),
		Height: float64(s.surfaceHeight.Load()),
	}
	return logical.ToPhysical(s.ScaleFactor())
}

// SetSurfaceSize stores the surface size in logical pixels.
func (s *WindowState) SetSurfaceSize(width, height uint32) {
	s.surfaceWidth.Store(width)
	s.surfaceHeight.Store(height)
}

// OuterSize returns the outer (frame-inclusive) size in physical pixels.
func (s *WindowState) OuterSize() dpi.PhysicalSize {
	logical := dpi.LogicalSize{
		Width:  float64(s.outerWidth.Load()),
		Height: float64(s.outerHeight.Load()),
	}
	return logical.ToPhysical(s.ScaleFactor())
}

// SetOuterSize stores the outer size in logical pixels.
func (s *WindowState) SetOuterSize(width, height uint32) {
	s.outerWidth.Store(width)
	s.outerHeight.Store(height)
}
