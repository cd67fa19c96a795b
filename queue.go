package winit

import "sync"

// eventQueue is an unbounded multi-producer FIFO of outgoing events.
// Producers are the native signal wiring (main-loop thread today, but the
// queue does not rely on that); the consumer is the driver's drain step.
type eventQueue struct {
	mu    sync.Mutex
	items []queuedEvent
}

func (q *eventQueue) push(ev queuedEvent) {
	q.mu.Lock()
	q.items = append(q.items, ev)
	q.mu.Unlock()
}

func (q *eventQueue) pop() (queuedEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return queuedEvent{}, false
	}
	ev := q.items[0]
	q.items = q.items[1:]
	return ev, true
}

func (q *eventQueue) pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) > 0
}

// redrawQueue collects redraw requests and coalesces them to at most one
// entry per window. Delivery order across windows is request order.
type redrawQueue struct {
	mu      sync.Mutex
	order   []WindowID
	pending map[WindowID]struct{}
}

func newRedrawQueue() *redrawQueue {
	return &redrawQueue{pending: make(map[WindowID]struct{})}
}

func (q *redrawQueue) push(id WindowID) {
	q.mu.Lock()
	if _, ok := q.pending[id]; !ok {
		q.pending[id] = struct{}{}
		q.order = append(q.order, id)
	}
	q.mu.Unlock()
}

// drain returns and clears the coalesced redraw set.
func (q *redrawQueue) drain() []WindowID {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.order) == 0 {
		return nil
	}
	out := q.order
	q.order = nil
	q.pending = make(map[WindowID]struct{})
	return out
}

func (q *redrawQueue) hasPending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.order) > 0
}

// discard drops any pending redraw for a window that is going away.
func (q *redrawQueue) discard(id WindowID) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if _, ok := q.pending[id]; !ok {
		return
	}
	delete(q.pending, id)
	for i, queued := range q.order {
		if queued == id {
			q.order = append(q.order[:i], q.order[i+1:]...)
			break
		}
	}
}
