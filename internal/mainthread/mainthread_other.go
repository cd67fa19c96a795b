//go:build !linux

package mainthread

// IsMain reports whether the calling thread is the process main thread.
// Platforms without a reliable check answer true and rely on the caller
// keeping the loop on one locked thread.
func IsMain() bool {
	return true
}
