// Package eventloop runs carousel controllers in real time on a single
// goroutine, the way a UI thread would.
//
// Every task posted to a Loop, including timer fires, runs on the goroutine
// that called Run, one at a time and in arrival order. A Loop also implements
// carousel.Scheduler with one ticker goroutine per armed timer; that goroutine
// only ever posts into the loop and is joined by Disarm.
package eventloop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"finecode/internal/carousel"
	"finecode/internal/logging"
)

// ErrStopped is returned when posting to a loop that has exited.
var ErrStopped = errors.New("eventloop: stopped")

// DefaultQueueSize bounds pending tasks before Post blocks.
const DefaultQueueSize = 64

// Loop is a serial task executor.
type Loop struct {
	tasks chan func()
	done  chan struct{}
	once  sync.Once

	// OnIdle runs on the loop goroutine after a task when no other task is
	// queued. It is where callers repaint.
	OnIdle func()
}

// New creates a loop with the given queue size (DefaultQueueSize if <= 0).
func New(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Loop{
		tasks: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Run executes tasks until ctx is cancelled. It must be called exactly once.
func (l *Loop) Run(ctx context.Context) error {
	defer l.once.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.tasks:
			fn()
			if len(l.tasks) == 0 && l.OnIdle != nil {
				l.OnIdle()
			}
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Post queues fn. It blocks while the queue is full.
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}
	select {
	case l.tasks <- fn:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Call runs fn on the loop and waits for it to finish.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := l.Post(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Arm implements carousel.Scheduler.
func (l *Loop) Arm(interval time.Duration, fire func()) carousel.Timer {
	t := &tickerTimer{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	ticker := time.NewTicker(interval)

	go func() {
		defer close(t.done)
		defer ticker.Stop()
		for {
			select {
			case <-t.stop:
				return
			case <-l.done:
				return
			case <-ticker.C:
				task := func() {
					// A tick queued just before Disarm must not fire.
					if !t.disarmed.Load() {
						fire()
					}
				}
				select {
				case l.tasks <- task:
				case <-t.stop:
					return
				case <-l.done:
					return
				}
			}
		}
	}()

	logging.SchedulerDebug("eventloop: armed ticker every %s", interval)
	return t
}

type tickerTimer struct {
	disarmed atomic.Bool
	stop     chan struct{}
	done     chan struct{}
}

// Disarm stops the ticker and waits for its goroutine to exit.
func (t *tickerTimer) Disarm() {
	if t.disarmed.Swap(true) {
		return
	}
	close(t.stop)
	<-t.done
	logging.SchedulerDebug("eventloop: ticker released")
}
