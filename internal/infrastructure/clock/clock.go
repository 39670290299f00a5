package clock

import "time"

// SystemClock reports wall-clock unix seconds.
type SystemClock struct{}

func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

func (c *SystemClock) Now() int64 {
	return time.Now().Unix()
}
