package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/portfolio-quest/parameter"
)

func TestTimeProviderMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestFrameTimer(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := NewManualClock(start, 16*time.Millisecond)
	timer := NewFrameTimer(clock)

	if dt := timer.Tick(); dt != 0 {
		t.Errorf("first tick without advance = %v, want 0", dt)
	}

	clock.Step()
	if dt := timer.Tick(); dt != 16*time.Millisecond {
		t.Errorf("tick = %v, want 16ms", dt)
	}

	// A stall is capped
	clock.Advance(3 * time.Second)
	if dt := timer.Tick(); dt != parameter.MaxFrameDelta {
		t.Errorf("stalled tick = %v, want %v", dt, parameter.MaxFrameDelta)
	}

	clock.Advance(5 * time.Millisecond)
	clock.Advance(5 * time.Millisecond)
	if dt := timer.Tick(); dt != 10*time.Millisecond {
		t.Errorf("tick after two advances = %v, want 10ms", dt)
	}

	// A clock set backwards yields no time
	clock.Set(start)
	if dt := timer.Tick(); dt != 0 {
		t.Errorf("tick after clock went back = %v, want 0", dt)
	}
	clock.Step()
	if dt := timer.Tick(); dt != 16*time.Millisecond {
		t.Errorf("tick after recovery = %v, want 16ms", dt)
	}
}
