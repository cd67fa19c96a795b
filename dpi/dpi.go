// Package dpi provides logical and physical geometry types.
//
// Logical coordinates are what the application works in; physical
// coordinates are what the windowing system works in. The two are related
// by the per-window scale factor, which may change at any time (e.g. when
// a window is dragged to a monitor with a different pixel density).
package dpi

import "math"

// LogicalSize is a size in logical (scale-independent) pixels.
type LogicalSize struct {
	Width  float64
	Height float64
}

// PhysicalSize is a size in physical (device) pixels.
type PhysicalSize struct {
	Width  uint32
	Height uint32
}

// LogicalPosition is a position in logical pixels.
type LogicalPosition struct {
	X float64
	Y float64
}

// PhysicalPosition is a position in physical pixels.
type PhysicalPosition struct {
	X int32
	Y int32
}

// ToPhysical converts the size using the given scale factor.
func (s LogicalSize) ToPhysical(scale float64) PhysicalSize {
	return PhysicalSize{
		Width:  uint32(math.Round(s.Width * scale)),
		Height: uint32(math.Round(s.Height * scale)),
	}
}

// ToLogical converts the size using the given scale factor.
func (s PhysicalSize) ToLogical(scale float64) LogicalSize {
	return LogicalSize{
		Width:  float64(s.Width) / scale,
		Height: float64(s.Height) / scale,
	}
}

// ToPhysical converts the position using the given scale factor.
func (p LogicalPosition) ToPhysical(scale float64) PhysicalPosition {
	return PhysicalPosition{
		X: int32(math.Round(p.X * scale)),
		Y: int32(math.Round(p.Y * scale)),
	}
}

// ToLogical converts the position using the given scale factor.
func (p PhysicalPosition) ToLogical(scale float64) LogicalPosition {
	return LogicalPosition{
		X: float64(p.X) / scale,
		Y: float64(p.Y) / scale,
	}
}
