package fake_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/klwxsrx/hwstore-client/pkg/time/fake"
)

func TestClock_AdvanceFiresDueTimersInOrder(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := fake.NewClock(start)

	var fired []string
	clock.AfterFunc(2*time.Minute, func() { fired = append(fired, "second") })
	clock.AfterFunc(time.Minute, func() { fired = append(fired, "first") })
	clock.AfterFunc(time.Hour, func() { fired = append(fired, "later") })

	clock.Advance(3 * time.Minute)

	assert.Equal(t, []string{"first", "second"}, fired)
	assert.Equal(t, start.Add(3*time.Minute), clock.Now())
	assert.Equal(t, 1, clock.PendingTimers())
}

func TestClock_StoppedTimerDoesNotFire(t *testing.T) {
	clock := fake.NewClock(time.Unix(0, 0))

	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	clock.Advance(time.Minute)
	assert.False(t, fired)
	assert.Zero(t, clock.PendingTimers())
}

func TestClock_TimerArmedInsideCallback(t *testing.T) {
	clock := fake.NewClock(time.Unix(0, 0))

	count := 0
	var rearm func()
	rearm = func() {
		count++
		if count < 3 {
			clock.AfterFunc(time.Second, rearm)
		}
	}
	clock.AfterFunc(time.Second, rearm)

	clock.Advance(10 * time.Second)
	assert.Equal(t, 3, count)
}
