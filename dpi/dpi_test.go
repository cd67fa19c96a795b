package dpi

import "testing"

func TestLogicalSizeToPhysical(t *testing.T) {
	tests := []struct {
		name  string
		size  LogicalSize
		scale float64
		want  PhysicalSize
	}{
		{"identity", LogicalSize{800, 600}, 1.0, PhysicalSize{800, 600}},
		{"hidpi", LogicalSize{800, 600}, 2.0, PhysicalSize{1600, 1200}},
		{"fractional rounds", LogicalSize{100, 100}, 1.25, PhysicalSize{125, 125}},
		{"rounds to nearest", LogicalSize{3, 3}, 1.5, PhysicalSize{5, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.size.ToPhysical(tt.scale)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPhysicalSizeToLogicalRoundTrip(t *testing.T) {
	phys := PhysicalSize{1600, 1200}
	logical := phys.ToLogical(2.0)
	if logical.Width != 800 || logical.Height != 600 {
		t.Fatalf("expected 800x600, got %+v", logical)
	}
	if back := logical.ToPhysical(2.0); back != phys {
		t.Fatalf("round trip mismatch: %+v != %+v", back, phys)
	}
}

func TestLogicalPositionToPhysical(t *testing.T) {
	pos := LogicalPosition{X: -10, Y: 20}
	got := pos.ToPhysical(2.0)
	if got.X != -20 || got.Y != 40 {
		t.Fatalf("expected (-20, 40), got %+v", got)
	}
}
