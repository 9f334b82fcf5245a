package core

import "time"

var epoch = time.Now()

// GetTime returns seconds elapsed on a monotonic clock.
func GetTime() float64 { return time.Since(epoch).Seconds() }

// Sleep blocks for the given number of seconds.
func Sleep(seconds float64) {
	if seconds <= 0 {
		return
	}
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}
