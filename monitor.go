package winit

import "github.com/Charlie-XIAO/winit/dpi"

// Monitor describes one connected output.
type Monitor struct {
	Name     string
	Position dpi.PhysicalPosition
	Size     dpi.PhysicalSize
}
