package winit

import (
	"errors"
	"fmt"
	"runtime"
)

var (
	// ErrEventLoopRecreation is returned by NewEventLoop when an event
	// loop has already been created in this process. At most one event
	// loop may exist per process; the guard is never reset.
	ErrEventLoopRecreation = errors.New("winit: attempted to create the event loop multiple times")

	// ErrHandleUnavailable is returned by raw handle queries when no
	// native handle exists for the current backend configuration.
	ErrHandleUnavailable = errors.New("winit: native handle unavailable")

	// ErrNotSupported is returned by operations the active backend does
	// not implement. Callers get a loud failure instead of silently wrong
	// results.
	ErrNotSupported = errors.New("winit: operation not supported by this backend")
)

// OsError is a failure from the native windowing system, carrying the
// source location where it was raised.
type OsError struct {
	File string
	Line int
	Msg  string
	Err  error
}

func (e *OsError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("os error at %s:%d: %s: %v", e.File, e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("os error at %s:%d: %s", e.File, e.Line, e.Msg)
}

func (e *OsError) Unwrap() error { return e.Err }

// osError builds an OsError tagged with the caller's file and line.
func osError(msg string, err error) *OsError {
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	return &OsError{File: file, Line: line, Msg: msg, Err: err}
}

// ExitError reports that the event loop exited with a nonzero exit code.
type ExitError struct {
	Code int32
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("winit: event loop exited with code %d", e.Code)
}
