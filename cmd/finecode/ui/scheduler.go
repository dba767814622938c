package ui

import (
	"time"

	"finecode/internal/carousel"
	"finecode/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is delivered by tea.Tick for one armed timer.
type tickMsg struct {
	owner string
	id    uint64
}

// teaScheduler implements carousel.Scheduler on top of the Bubble Tea loop.
//
// A tea.Tick cannot be retracted once issued, so disarming only forgets the
// timer; when its tick arrives Handle finds no live timer and drops it.
// Recurrence comes from re-issuing a tick every time a live one arrives.
// Commands produced while arming are collected and returned by Flush.
type teaScheduler struct {
	owner   string
	nextID  uint64
	live    map[uint64]*teaTimer
	pending []tea.Cmd
}

type teaTimer struct {
	sched    *teaScheduler
	id       uint64
	interval time.Duration
	fire     func()
}

func newTeaScheduler(owner string) *teaScheduler {
	return &teaScheduler{
		owner: owner,
		live:  make(map[uint64]*teaTimer),
	}
}

// Arm implements carousel.Scheduler.
func (s *teaScheduler) Arm(interval time.Duration, fire func()) carousel.Timer {
	s.nextID++
	t := &teaTimer{sched: s, id: s.nextID, interval: interval, fire: fire}
	s.live[t.id] = t
	s.pending = append(s.pending, s.tick(t))
	return t
}

func (s *teaScheduler) tick(t *teaTimer) tea.Cmd {
	owner, id := s.owner, t.id
	return tea.Tick(t.interval, func(time.Time) tea.Msg {
		return tickMsg{owner: owner, id: id}
	})
}

// Handle processes a tick. It reports false if the tick belongs to another
// scheduler (for example a carousel that has since been unmounted).
func (s *teaScheduler) Handle(msg tickMsg) bool {
	if msg.owner != s.owner {
		return false
	}
	t, ok := s.live[msg.id]
	if !ok {
		logging.SchedulerDebug("tea: dropped tick for disarmed timer %d", msg.id)
		return true
	}
	s.pending = append(s.pending, s.tick(t))
	t.fire()
	return true
}

// Flush returns the commands queued since the last call.
func (s *teaScheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Armed returns the number of live timers.
func (s *teaScheduler) Armed() int { return len(s.live) }

func (t *teaTimer) Disarm() {
	delete(t.sched.live, t.id)
}
