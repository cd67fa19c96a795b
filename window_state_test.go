package winit

import (
	"sync"
	"testing"
)

func TestWindowStateScaleAppliedAtReadTime(t *testing.T) {
	state := NewWindowState(1.0, 0, 0, 100, 100)

	if size := state.SurfaceSize(); size.Width != 100 || size.Height != 100 {
		t.Fatalf("expected 100x100 at scale 1, got %dx%d", size.Width, size.Height)
	}

	// A scale change with no intervening resize must show up in the
	// physical getters immediately.
	state.SetScaleFactor(2.0)
	if size := state.SurfaceSize(); size.Width != 200 || size.Height != 200 {
		t.Fatalf("expected 200x200 at scale 2, got %dx%d", size.Width, size.Height)
	}
	if size := state.OuterSize(); size.Width != 200 || size.Height != 200 {
		t.Fatalf("expected outer 200x200 at scale 2, got %dx%d", size.Width, size.Height)
	}
}

func TestWindowStatePositionScaling(t *testing.T) {
	state := NewWindowState(2.0, 10, 20, 640, 480)

	pos := state.SurfacePosition()
	if pos.X != 20 || pos.Y != 40 {
		t.Fatalf("expected physical position (20, 40), got (%d, %d)", pos.X, pos.Y)
	}

	state.SetSurfacePosition(-5, 7)
	pos = state.SurfacePosition()
	if pos.X != -10 || pos.Y != 14 {
		t.Fatalf("expected physical position (-10, 14), got (%d, %d)", pos.X, pos.Y)
	}
}

func TestWindowStateConcurrentAccess(t *testing.T) {
	state := NewWindowState(1.0, 0, 0, 800, 600)

	stop := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for i := uint32(0); ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			state.SetSurfaceSize(800+i%10, 600+i%10)
			state.SetScaleFactor(1.0 + float64(i%2))
		}
	}()

	var wg sync.WaitGroup
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 10000; i++ {
				size := state.SurfaceSize()
				if size.Width == 0 || size.Height == 0 {
					t.Errorf("observed zero size %dx%d", size.Width, size.Height)
					return
				}
				if sf := state.ScaleFactor(); sf != 1.0 && sf != 2.0 {
					t.Errorf("observed torn scale factor %v", sf)
					return
				}
			}
		}()
	}

	wg.Wait()
	close(stop)
	<-writerDone
}
