//go:build linux

// Package mainthread reports whether the caller runs on the process main
// thread. Native UI toolkits are main-thread-only on most platforms, so
// the event loop refuses construction elsewhere unless explicitly opted
// out.
package mainthread

import (
	"os"

	"golang.org/x/sys/unix"
)

// IsMain reports whether the calling thread is the process main thread.
// On Linux the main thread's tid equals the pid. Callers must be
// OS-thread locked for the answer to stay meaningful.
func IsMain() bool {
	return unix.Gettid() == os.Getpid()
}
