package backoff

import "time"

// minDelay is the floor applied to every computed delay.
const minDelay = time.Second

// Policy computes the delay before a given retry attempt. Attempt
// numbering starts at 1 for the first retry.
type Policy interface {
	Delay(attempt int) time.Duration
}

// Fixed waits the same interval before every retry.
type Fixed struct {
	Interval time.Duration
}

func (f Fixed) Delay(attempt int) time.Duration {
	return clamp(f.Interval)
}

// Exponential doubles the base interval per attempt, up to Max.
type Exponential struct {
	Base time.Duration
	Max  time.Duration
}

func (e Exponential) Delay(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := e.Base
	for i := 1; i < attempt; i++ {
		d *= 2
		if e.Max > 0 && d >= e.Max {
			d = e.Max
			break
		}
	}
	return clamp(d)
}

// ForName builds the policy selected by configuration. Unknown names
// fall back to fixed.
func ForName(name string, interval time.Duration) Policy {
	if name == "exponential" {
		return Exponential{Base: interval, Max: 10 * interval}
	}
	return Fixed{Interval: interval}
}

func clamp(d time.Duration) time.Duration {
	if d < minDelay {
		return minDelay
	}
	return d
}
