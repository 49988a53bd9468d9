package time

import (
	"time"
)

type (
	Clock interface {
		Now() time.Time
		AfterFunc(d time.Duration, f func()) Timer
	}

	Timer interface {
		// Stop reports whether the call prevented the function from running.
		Stop() bool
	}

	clockImpl struct{}
)

func NewClock() Clock {
	return clockImpl{}
}

func (c clockImpl) Now() time.Time {
	return time.Now()
}

func (c clockImpl) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
