package winit

import "sync"

// WindowRequest is a mutation command targeting a specific window. All
// native mutation funnels through requests so it happens on the main-loop
// thread, regardless of which goroutine issued it.
type WindowRequest interface {
	isWindowRequest()
}

type requestTitle struct {
	title string
}

type requestVisible struct {
	visible bool
}

type requestResizable struct {
	resizable bool
}

type requestOuterPosition struct {
	x, y int32
}

type requestSurfaceSize struct {
	width, height uint32
}

// requestDestroy removes the window from the registry and releases the
// native object. Once observed, later requests for the id are no-ops.
type requestDestroy struct{}

// requestWithWindow runs arbitrary logic with exclusive synchronous
// access to the native window object.
type requestWithWindow struct {
	fn func(NativeWindow)
}

// requestWireUpEvents installs the native signal wiring for a window. It
// is sent exactly once, immediately after window construction; the wiring
// is the sole producer of that window's events and redraw notifications.
type requestWireUpEvents struct{}

func (requestTitle) isWindowRequest()         {}
func (requestVisible) isWindowRequest()       {}
func (requestResizable) isWindowRequest()     {}
func (requestOuterPosition) isWindowRequest() {}
func (requestSurfaceSize) isWindowRequest()   {}
func (requestDestroy) isWindowRequest()       {}
func (requestWithWindow) isWindowRequest()    {}
func (requestWireUpEvents) isWindowRequest()  {}

type targetedRequest struct {
	id      WindowID
	request WindowRequest
}

// requestQueue is the window request channel: an unbounded, ordered,
// multi-producer/single-consumer queue. Send never blocks and never
// drops; every send wakes the main loop so pending work is observed
// promptly even while the loop is waiting indefinitely.
type requestQueue struct {
	mu    sync.Mutex
	items []targetedRequest
	wake  func()
}

func newRequestQueue(wake func()) *requestQueue {
	return &requestQueue{wake: wake}
}

// send enqueues a request from any goroutine.
func (q *requestQueue) send(id WindowID, req WindowRequest) {
	q.mu.Lock()
	q.items = append(q.items, targetedRequest{id: id, request: req})
	q.mu.Unlock()
	q.wake()
}

// drain returns all queued requests in send order.
func (q *requestQueue) drain() []targetedRequest {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *requestQueue) pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) > 0
}
