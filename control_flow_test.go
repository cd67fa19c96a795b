package winit

import (
	"testing"
	"time"
)

func TestControlFlowZeroValueIsWait(t *testing.T) {
	var flow ControlFlow
	if !flow.IsWait() {
		t.Fatal("expected the zero value to be Wait")
	}
	if flow.IsPoll() {
		t.Fatal("expected the zero value not to be Poll")
	}
	if _, bounded := flow.waitTimeout(time.Now()); bounded {
		t.Fatal("expected an unbounded wait for the zero value")
	}
}

func TestControlFlowWaitTimeout(t *testing.T) {
	now := time.Now()

	if d, bounded := ControlFlowPoll().waitTimeout(now); !bounded || d != 0 {
		t.Fatalf("poll: expected (0, true), got (%v, %t)", d, bounded)
	}
	if _, bounded := ControlFlowWait().waitTimeout(now); bounded {
		t.Fatal("wait: expected unbounded")
	}
	if d, bounded := ControlFlowWaitUntil(now.Add(time.Second)).waitTimeout(now); !bounded || d != time.Second {
		t.Fatalf("wait-until: expected (1s, true), got (%v, %t)", d, bounded)
	}
	if d, bounded := ControlFlowWaitUntil(now.Add(-time.Second)).waitTimeout(now); !bounded || d != 0 {
		t.Fatalf("expired wait-until: expected (0, true), got (%v, %t)", d, bounded)
	}
}
