// Package carousel implements the auto-advancing image carousel: a controller
// that owns the current index, the pause flag and the auto-advance timer, and a
// pure view that turns controller state into a renderable Frame.
//
// The controller is not safe for concurrent use. It expects a single event loop
// to deliver every intent and every timer fire, which is how all Scheduler
// implementations in this module behave.
package carousel

import (
	"time"

	"finecode/internal/logging"

	"github.com/google/uuid"
)

// DefaultInterval is the auto-advance period used when no interval is configured.
const DefaultInterval = 3 * time.Second

// Option configures a Controller.
type Option func(*Controller)

// WithInterval sets the time between automatic advances while playing.
// Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithID overrides the generated instance id (used in logs).
func WithID(id string) Option {
	return func(c *Controller) {
		c.id = id
	}
}

// Controller is the single source of truth for one mounted carousel.
type Controller struct {
	id       string
	images   []string
	title    string
	interval time.Duration

	index  int
	paused bool

	// sched is non-nil exactly while mounted.
	sched Scheduler
	timer Timer
	// gen is bumped on every arm and disarm; fires from older generations are dropped.
	gen       uint64
	unmounted bool

	log *logging.Logger
}

// New creates an unmounted controller at index 0, playing. The image list is
// copied and never changes for the controller's lifetime.
func New(images []string, title string, opts ...Option) *Controller {
	c := &Controller{
		id:       uuid.NewString(),
		images:   append([]string(nil), images...),
		title:    title,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = logging.Get(logging.CategoryCarousel).With("carousel", c.id)
	return c
}

// ID returns the instance id.
func (c *Controller) ID() string { return c.id }

// Title returns the optional display title.
func (c *Controller) Title() string { return c.title }

// Interval returns the configured auto-advance period.
func (c *Controller) Interval() time.Duration { return c.interval }

// Len returns the number of images.
func (c *Controller) Len() int { return len(c.images) }

// Image returns the reference at i.
func (c *Controller) Image(i int) string { return c.images[i] }

// Images returns a copy of the image list.
func (c *Controller) Images() []string {
	return append([]string(nil), c.images...)
}

// State reports the state machine position.
func (c *Controller) State() State {
	switch {
	case len(c.images) == 0:
		return StateEmpty
	case c.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Index: c.index, Paused: c.paused, State: c.State()}
}

// Frame renders the current state.
func (c *Controller) Frame() Frame {
	return Render(c.images, c.title, c.Snapshot())
}

// Mounted reports whether the controller is attached to a scheduler.
func (c *Controller) Mounted() bool { return c.sched != nil }

// Armed reports whether an auto-advance timer is currently held.
func (c *Controller) Armed() bool { return c.timer != nil }

// Mount attaches the controller to s and arms the timer if the carousel is
// playing and non-empty. Mounting twice, or after Unmount, panics.
func (c *Controller) Mount(s Scheduler) {
	if c.sched != nil || c.unmounted {
		panic(&ConstraintViolation{Op: "Mount", Msg: "controller already mounted or unmounted"})
	}
	if s == nil {
		panic(&ConstraintViolation{Op: "Mount", Msg: "nil scheduler"})
	}
	c.sched = s
	c.log.Info("mounted: %d images, interval %s, state %s", len(c.images), c.interval, c.State())
	c.reconcile()
}

// Unmount disarms the timer unconditionally and detaches the controller.
// Intents delivered afterwards are ignored. Safe to call more than once.
func (c *Controller) Unmount() {
	if c.timer != nil {
		c.disarm()
	}
	if c.sched != nil {
		c.log.Info("unmounted at index %d", c.index)
	}
	c.sched = nil
	c.unmounted = true
}

// Next advances one image forward, wrapping at the end. It does not change
// the pause state or restart the timer.
func (c *Controller) Next() {
	if !c.live() || len(c.images) == 0 {
		return
	}
	c.index = (c.index + 1) % len(c.images)
	c.log.Debug("next -> %d", c.index)
}

// Prev moves one image back, wrapping from 0 to the last image.
func (c *Controller) Prev() {
	if !c.live() || len(c.images) == 0 {
		return
	}
	n := len(c.images)
	c.index = (c.index - 1 + n) % n
	c.log.Debug("prev -> %d", c.index)
}

// JumpTo selects image i and pauses auto-advance until Resume.
// An index outside [0, Len()) panics with *ConstraintViolation.
func (c *Controller) JumpTo(i int) {
	if i < 0 || i >= len(c.images) {
		panic(&ConstraintViolation{Op: "JumpTo", Index: i, Len: len(c.images)})
	}
	if !c.live() {
		return
	}
	c.index = i
	c.paused = true
	c.log.Debug("jump -> %d (paused)", i)
	c.reconcile()
}

// Pause suspends auto-advance. Idempotent.
func (c *Controller) Pause() {
	if !c.live() || len(c.images) == 0 || c.paused {
		return
	}
	c.paused = true
	c.log.Debug("paused at %d", c.index)
	c.reconcile()
}

// Resume re-enables auto-advance. The next advance happens one full interval
// later; Resume never advances by itself. Idempotent.
func (c *Controller) Resume() {
	if !c.live() || len(c.images) == 0 || !c.paused {
		return
	}
	c.paused = false
	c.log.Debug("resumed at %d", c.index)
	c.reconcile()
}

// Dispatch applies an intent relayed from a view.
func (c *Controller) Dispatch(in Intent) {
	switch in.Kind {
	case IntentNext:
		c.Next()
	case IntentPrev:
		c.Prev()
	case IntentJump:
		c.JumpTo(in.Index)
	case IntentPause:
		c.Pause()
	case IntentResume:
		c.Resume()
	}
}

func (c *Controller) live() bool {
	return !c.unmounted
}

// reconcile keeps "timer armed iff mounted, non-empty and playing".
func (c *Controller) reconcile() {
	want := c.sched != nil && len(c.images) > 0 && !c.paused
	switch {
	case want && c.timer == nil:
		c.arm()
	case !want && c.timer != nil:
		c.disarm()
	}
}

func (c *Controller) arm() {
	c.gen++
	gen := c.gen
	c.timer = c.sched.Arm(c.interval, func() { c.fire(gen) })
	logging.SchedulerDebug("carousel %s: armed gen %d every %s", c.id, gen, c.interval)
}

func (c *Controller) disarm() {
	c.timer.Disarm()
	c.timer = nil
	c.gen++
	logging.SchedulerDebug("carousel %s: disarmed, gen now %d", c.id, c.gen)
}

func (c *Controller) fire(gen uint64) {
	if gen != c.gen || c.timer == nil {
		logging.SchedulerDebug("carousel %s: dropped stale fire gen %d (current %d)", c.id, gen, c.gen)
		return
	}
	c.index = (c.index + 1) % len(c.images)
	c.log.Debug("auto-advance -> %d", c.index)
}
