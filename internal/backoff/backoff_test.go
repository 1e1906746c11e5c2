package backoff

import (
	"testing"
	"time"
)

func TestFixedDelay(t *testing.T) {
	p := Fixed{Interval: 60 * time.Second}
	for attempt := 1; attempt <= 5; attempt++ {
		if got := p.Delay(attempt); got != 60*time.Second {
			t.Errorf("Delay(%d) = %v, want 60s", attempt, got)
		}
	}
}

func TestDelayFloor(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
	}{
		{name: "fixed zero interval", policy: Fixed{}},
		{name: "fixed sub-second interval", policy: Fixed{Interval: 100 * time.Millisecond}},
		{name: "exponential zero base", policy: Exponential{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Delay(1); got < time.Second {
				t.Errorf("Delay(1) = %v, below the 1s floor", got)
			}
		})
	}
}

func TestExponentialDelay(t *testing.T) {
	p := Exponential{Base: 2 * time.Second, Max: 10 * time.Second}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 0, want: 2 * time.Second}, // clamped to 1
		{attempt: 1, want: 2 * time.Second},
		{attempt: 2, want: 4 * time.Second},
		{attempt: 3, want: 8 * time.Second},
		{attempt: 4, want: 10 * time.Second}, // capped
		{attempt: 10, want: 10 * time.Second},
	}
	for _, tt := range tests {
		if got := p.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestForName(t *testing.T) {
	if _, ok := ForName("exponential", time.Second).(Exponential); !ok {
		t.Error("ForName(exponential) did not return an Exponential policy")
	}
	if _, ok := ForName("fixed", time.Second).(Fixed); !ok {
		t.Error("ForName(fixed) did not return a Fixed policy")
	}
	if _, ok := ForName("something-else", time.Second).(Fixed); !ok {
		t.Error("unknown name did not fall back to Fixed")
	}
}
