// Package simclock provides a virtual-time carousel.Scheduler.
//
// Time only moves when the caller advances it, so timer behavior can be
// asserted to the exact tick. Fires run synchronously inside Advance, on the
// caller's goroutine, in (due time, arm order). A Clock is not safe for
// concurrent use.
package simclock

import (
	"container/heap"
	"fmt"
	"time"

	"finecode/internal/carousel"
)

// Clock is a manually advanced scheduler. The zero value is ready to use at t=0.
type Clock struct {
	now   time.Duration
	seq   uint64
	queue timerQueue
	fired int
}

// New returns a clock at t=0.
func New() *Clock {
	return &Clock{}
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration { return c.now }

// Armed returns the number of live timers.
func (c *Clock) Armed() int { return len(c.queue) }

// Fired returns how many timer callbacks have run.
func (c *Clock) Fired() int { return c.fired }

// NextFire returns the due time of the earliest live timer.
func (c *Clock) NextFire() (time.Duration, bool) {
	if len(c.queue) == 0 {
		return 0, false
	}
	return c.queue[0].due, true
}

// Arm implements carousel.Scheduler. The first fire is one full interval
// from now.
func (c *Clock) Arm(interval time.Duration, fire func()) carousel.Timer {
	if interval <= 0 {
		panic(fmt.Sprintf("simclock: non-positive interval %s", interval))
	}
	c.seq++
	t := &timer{
		clock:    c,
		interval: interval,
		due:      c.now + interval,
		seq:      c.seq,
		fire:     fire,
	}
	heap.Push(&c.queue, t)
	return t
}

// Advance moves time forward by d, running every fire that falls due.
func (c *Clock) Advance(d time.Duration) {
	c.AdvanceTo(c.now + d)
}

// AdvanceTo moves time forward to target. Moving backwards is a no-op.
// Callbacks may arm or disarm timers, including their own.
func (c *Clock) AdvanceTo(target time.Duration) {
	for len(c.queue) > 0 && c.queue[0].due <= target {
		t := c.queue[0]
		c.now = t.due
		t.due += t.interval
		heap.Fix(&c.queue, 0)
		c.fired++
		t.fire()
	}
	if target > c.now {
		c.now = target
	}
}

type timer struct {
	clock    *Clock
	interval time.Duration
	due      time.Duration
	seq      uint64
	fire     func()
	index    int
	stopped  bool
}

func (t *timer) Disarm() {
	if t.stopped {
		return
	}
	t.stopped = true
	heap.Remove(&t.clock.queue, t.index)
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
