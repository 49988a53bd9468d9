// Package fake provides a virtual clock: time moves only when Advance is called
// and due timers fire synchronously inside Advance.
package fake

import (
	"sort"
	"sync"
	"time"

	pkgtime "github.com/klwxsrx/hwstore-client/pkg/time"
)

type Clock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers map[int]*timer
}

type timer struct {
	clock  *Clock
	id     int
	seq    int
	fireAt time.Time
	f      func()
}

func NewClock(now time.Time) *Clock {
	return &Clock{
		now:    now,
		timers: make(map[int]*timer),
	}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) AfterFunc(d time.Duration, f func()) pkgtime.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	t := &timer{
		clock:  c,
		id:     c.seq,
		seq:    c.seq,
		fireAt: c.now.Add(d),
		f:      f,
	}
	c.timers[t.id] = t
	return t
}

// Advance moves the clock forward and runs every timer that became due,
// in fire time order.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		next := c.nextDueLocked(target)
		if next == nil {
			c.now = target
			c.mu.Unlock()
			return
		}

		delete(c.timers, next.id)
		if next.fireAt.After(c.now) {
			c.now = next.fireAt
		}
		c.mu.Unlock()

		next.f()
	}
}

// PendingTimers returns the number of armed timers.
func (c *Clock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

func (c *Clock) nextDueLocked(target time.Time) *timer {
	due := make([]*timer, 0, len(c.timers))
	for _, t := range c.timers {
		if !t.fireAt.After(target) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].fireAt.Equal(due[j].fireAt) {
			return due[i].seq < due[j].seq
		}
		return due[i].fireAt.Before(due[j].fireAt)
	})
	return due[0]
}

func (t *timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if _, ok := t.clock.timers[t.id]; !ok {
		return false
	}

	delete(t.clock.timers, t.id)
	return true
}
