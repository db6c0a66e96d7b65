package core

import (
	"testing"
	"time"
)

func TestIntervalDue(t *testing.T) {
	iv := NewInterval(40*time.Millisecond, 0)

	tests := []struct {
		now      time.Duration
		expected int
	}{
		{10 * time.Millisecond, 0},
		{39 * time.Millisecond, 0},
		{40 * time.Millisecond, 1},
		{40 * time.Millisecond, 0}, // already consumed
		{79 * time.Millisecond, 0},
		{200 * time.Millisecond, 4}, // 80, 120, 160, 200
	}

	for _, tc := range tests {
		if got := iv.Due(tc.now); got != tc.expected {
			t.Errorf("Due(%v) = %d, expected %d", tc.now, got, tc.expected)
		}
	}

	if got := iv.Due(240 * time.Millisecond); got != 1 {
		t.Errorf("Due(240ms) = %d, expected the next tick at 240ms", got)
	}
}

func TestIntervalStartOffset(t *testing.T) {
	iv := NewInterval(750*time.Millisecond, 1500*time.Millisecond)

	if got := iv.Due(2249 * time.Millisecond); got != 0 {
		t.Errorf("Due before first period = %d, expected 0", got)
	}
	if got := iv.Due(2250 * time.Millisecond); got != 1 {
		t.Errorf("Due at first period = %d, expected 1", got)
	}
}

func TestIntervalDisabled(t *testing.T) {
	iv := NewInterval(0, 0)
	if got := iv.Due(time.Hour); got != 0 {
		t.Errorf("zero period should never fire, got %d ticks", got)
	}
}

func TestIntervalSetEvery(t *testing.T) {
	iv := NewInterval(100*time.Millisecond, 0)
	iv.SetEvery(50 * time.Millisecond)

	// The tick at 100ms was already scheduled with the old period.
	if got := iv.Due(100 * time.Millisecond); got != 1 {
		t.Fatalf("Due(100ms) = %d, expected 1", got)
	}
	if got := iv.Due(150 * time.Millisecond); got != 1 {
		t.Errorf("Due(150ms) = %d, expected 1 with new period", got)
	}
}

func TestIntervalTake(t *testing.T) {
	iv := NewInterval(40*time.Millisecond, 0)

	var got []time.Duration
	for {
		at, ok := iv.Take(130 * time.Millisecond)
		if !ok {
			break
		}
		got = append(got, at)
	}

	expected := []time.Duration{40 * time.Millisecond, 80 * time.Millisecond, 120 * time.Millisecond}
	if len(got) != len(expected) {
		t.Fatalf("Take returned %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("tick %d at %v, expected %v", i, got[i], expected[i])
		}
	}
}
