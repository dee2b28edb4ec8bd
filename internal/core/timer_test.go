package core

import (
	"testing"
	"time"
)

func TestFixedStepDue(t *testing.T) {
	fs := NewFixedStep(10)
	start := time.Unix(100, 0)
	if n := fs.Due(start, 0); n != 1 {
		t.Fatalf("first call should release the primed tick, got %d", n)
	}
	if n := fs.Due(start.Add(250*time.Millisecond), 0); n != 2 {
		t.Fatalf("expected 2 ticks after 250ms at 10 TPS, got %d", n)
	}
	if n := fs.Due(start.Add(10*time.Second), 5); n != 5 {
		t.Fatalf("catch-up must be capped, got %d", n)
	}
	if n := fs.Due(start.Add(10*time.Second+50*time.Millisecond), 5); n != 0 {
		t.Fatalf("backlog must be dropped after a capped burst, got %d", n)
	}
	if fs.Interval() != 100*time.Millisecond {
		t.Fatalf("unexpected interval %s", fs.Interval())
	}
}
