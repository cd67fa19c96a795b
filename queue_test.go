package winit

import (
	"sync"
	"testing"
)

func TestEventQueueFIFO(t *testing.T) {
	q := &eventQueue{}
	if q.pending() {
		t.Fatal("expected empty queue")
	}

	for i := uint64(1); i <= 3; i++ {
		q.push(queuedEvent{windowID: WindowID(i), windowEvent: CloseRequested{}})
	}
	if !q.pending() {
		t.Fatal("expected pending events")
	}

	for i := uint64(1); i <= 3; i++ {
		ev, ok := q.pop()
		if !ok {
			t.Fatalf("expected event %d", i)
		}
		if ev.windowID != WindowID(i) {
			t.Fatalf("expected window %d, got %d", i, ev.windowID)
		}
	}
	if _, ok := q.pop(); ok {
		t.Fatal("expected drained queue")
	}
}

func TestRedrawQueueCoalesces(t *testing.T) {
	q := newRedrawQueue()

	q.push(1)
	q.push(2)
	q.push(1)
	q.push(1)

	got := q.drain()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("expected [1 2], got %v", got)
	}
	if q.hasPending() {
		t.Fatal("expected drained queue")
	}

	// A fresh push after draining is delivered again.
	q.push(1)
	if got := q.drain(); len(got) != 1 || got[0] != 1 {
		t.Fatalf("expected [1], got %v", got)
	}
}

func TestRedrawQueueDiscard(t *testing.T) {
	q := newRedrawQueue()
	q.push(1)
	q.push(2)
	q.push(3)

	q.discard(2)
	q.discard(9) // unknown id is a no-op

	got := q.drain()
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Fatalf("expected [1 3], got %v", got)
	}
}

func TestRequestQueueWakesOnSend(t *testing.T) {
	wakes := 0
	q := newRequestQueue(func() { wakes++ })

	q.send(1, requestTitle{title: "a"})
	q.send(1, requestDestroy{})

	if wakes != 2 {
		t.Fatalf("expected a wake per send, got %d", wakes)
	}
	if !q.pending() {
		t.Fatal("expected pending requests")
	}

	got := q.drain()
	if len(got) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(got))
	}
	if _, ok := got[0].request.(requestTitle); !ok {
		t.Fatalf("expected requestTitle first, got %T", got[0].request)
	}
	if _, ok := got[1].request.(requestDestroy); !ok {
		t.Fatalf("expected requestDestroy second, got %T", got[1].request)
	}
	if q.pending() {
		t.Fatal("expected drained queue")
	}
}

func TestRequestQueueConcurrentSendLosesNothing(t *testing.T) {
	q := newRequestQueue(func() {})

	const producers = 8
	const perProducer = 200

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.send(WindowID(p+1), requestVisible{visible: i%2 == 0})
			}
		}(p)
	}
	wg.Wait()

	got := q.drain()
	if len(got) != producers*perProducer {
		t.Fatalf("expected %d requests, got %d", producers*perProducer, len(got))
	}

	counts := make(map[WindowID]int)
	for _, tr := range got {
		counts[tr.id]++
	}
	for p := 0; p < producers; p++ {
		if counts[WindowID(p+1)] != perProducer {
			t.Fatalf("producer %d: expected %d requests, got %d", p, perProducer, counts[WindowID(p+1)])
		}
	}
}
