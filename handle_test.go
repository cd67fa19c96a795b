package winit

import (
	"errors"
	"testing"
)

func TestDisplayHandleVariants(t *testing.T) {
	h := NewX11DisplayHandle(X11DisplayHandle{Display: ":0", Screen: 0})
	if h.Backend() != BackendX11 {
		t.Fatalf("expected x11 backend, got %v", h.Backend())
	}
	raw, err := h.Raw()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	x11, ok := raw.(X11DisplayHandle)
	if !ok {
		t.Fatalf("expected X11DisplayHandle, got %T", raw)
	}
	if x11.Display != ":0" {
		t.Fatalf("expected display %q, got %q", ":0", x11.Display)
	}

	w := NewWaylandDisplayHandle(WaylandDisplayHandle{Socket: "wayland-0"})
	if w.Backend() != BackendWayland {
		t.Fatalf("expected wayland backend, got %v", w.Backend())
	}
}

func TestUnavailableDisplayHandle(t *testing.T) {
	h := UnavailableDisplayHandle()
	if h.Backend() != BackendUnavailable {
		t.Fatalf("expected unavailable backend, got %v", h.Backend())
	}
	if _, err := h.Raw(); !errors.Is(err, ErrHandleUnavailable) {
		t.Fatalf("expected ErrHandleUnavailable, got %v", err)
	}
}

func TestWindowHandleZeroIDIsUnavailable(t *testing.T) {
	h := NewX11WindowHandle(X11WindowHandle{Window: 0})
	if h.Backend() != BackendUnavailable {
		t.Fatalf("expected unavailable backend for zero id, got %v", h.Backend())
	}
	if _, err := h.Raw(); !errors.Is(err, ErrHandleUnavailable) {
		t.Fatalf("expected ErrHandleUnavailable, got %v", err)
	}

	valid := NewX11WindowHandle(X11WindowHandle{Window: 42})
	raw, err := valid.Raw()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.(X11WindowHandle).Window != 42 {
		t.Fatalf("expected window 42, got %v", raw)
	}
}

func TestWaylandWindowHandleNilSurfaceIsUnavailable(t *testing.T) {
	h := NewWaylandWindowHandle(WaylandWindowHandle{Surface: 0})
	if h.Backend() != BackendUnavailable {
		t.Fatalf("expected unavailable backend for nil surface, got %v", h.Backend())
	}
	if _, err := h.Raw(); !errors.Is(err, ErrHandleUnavailable) {
		t.Fatalf("expected ErrHandleUnavailable, got %v", err)
	}
}

func TestHandleBackendString(t *testing.T) {
	cases := []struct {
		backend HandleBackend
		want    string
	}{
		{BackendX11, "x11"},
		{BackendWayland, "wayland"},
		{BackendUnavailable, "unavailable"},
	}
	for _, tc := range cases {
		if got := tc.backend.String(); got != tc.want {
			t.Errorf("String(%d): expected %q, got %q", tc.backend, tc.want, got)
		}
	}
}
