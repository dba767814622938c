package carousel_test

import (
	"fmt"
	"testing"
	"time"

	"finecode/internal/carousel"
	"finecode/internal/simclock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const interval = 3000 * time.Millisecond

func mounted(t *testing.T, images ...string) (*carousel.Controller, *simclock.Clock) {
	t.Helper()
	clock := simclock.New()
	c := carousel.New(images, "Demo", carousel.WithInterval(interval))
	c.Mount(clock)
	t.Cleanup(c.Unmount)
	return c, clock
}

func images(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("img-%d.png", i)
	}
	return out
}

func TestController_InitialState(t *testing.T) {
	c, clock := mounted(t, "a", "b", "c")

	assert.Equal(t, carousel.Snapshot{Index: 0, Paused: false, State: carousel.StatePlaying}, c.Snapshot())
	assert.True(t, c.Armed())
	assert.Equal(t, 1, clock.Armed())
}

func TestController_NextIsCyclic(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for start := 0; start < n; start++ {
			c, _ := mounted(t, images(n)...)
			for i := 0; i < start; i++ {
				c.Next()
			}
			require.Equal(t, start, c.Snapshot().Index)

			for i := 0; i < n; i++ {
				c.Next()
			}
			assert.Equal(t, start, c.Snapshot().Index, "n=%d start=%d", n, start)
		}
	}
}

func TestController_PrevWrapsFromZero(t *testing.T) {
	for n := 1; n <= 5; n++ {
		c, _ := mounted(t, images(n)...)
		c.Prev()
		assert.Equal(t, n-1, c.Snapshot().Index, "n=%d", n)
	}
}

func TestController_PrevUndoesNext(t *testing.T) {
	n := 4
	for start := 0; start < n; start++ {
		c, _ := mounted(t, images(n)...)
		c.JumpTo(start)
		c.Next()
		c.Prev()
		assert.Equal(t, start, c.Snapshot().Index)
	}
}

func TestController_NextAndPrevDoNotPause(t *testing.T) {
	c, clock := mounted(t, "a", "b", "c")
	c.Next()
	c.Prev()
	c.Prev()
	assert.Equal(t, carousel.StatePlaying, c.State())
	assert.Equal(t, 1, clock.Armed())
}

func TestController_JumpToSetsIndexAndPauses(t *testing.T) {
	for _, startPaused := range []bool{false, true} {
		for i := 0; i < 3; i++ {
			c, clock := mounted(t, "a", "b", "c")
			if startPaused {
				c.Pause()
			}
			c.JumpTo(i)

			assert.Equal(t, carousel.Snapshot{Index: i, Paused: true, State: carousel.StatePaused}, c.Snapshot())
			assert.Equal(t, 0, clock.Armed())
		}
	}
}

func TestController_JumpToOutOfRangePanics(t *testing.T) {
	c, _ := mounted(t, "a", "b", "c")

	for _, bad := range []int{-1, 3, 100} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r, "JumpTo(%d) should panic", bad)
				cv, ok := r.(*carousel.ConstraintViolation)
				require.True(t, ok, "panic value should be *ConstraintViolation, got %T", r)
				assert.Equal(t, bad, cv.Index)
				assert.Equal(t, 3, cv.Len)
				assert.Contains(t, cv.Error(), "out of range")
			}()
			c.JumpTo(bad)
		}()
	}
	assert.Equal(t, 0, c.Snapshot().Index, "a rejected jump must not move the index")
}

func TestController_PauseResumeIdempotent(t *testing.T) {
	c, clock := mounted(t, "a", "b")

	c.Pause()
	c.Pause()
	assert.Equal(t, carousel.StatePaused, c.State())
	assert.Equal(t, 0, clock.Armed())

	c.Resume()
	c.Resume()
	assert.Equal(t, carousel.StatePlaying, c.State())
	assert.Equal(t, 1, clock.Armed())
}

func TestController_NoAdvanceWhilePaused(t *testing.T) {
	c, clock := mounted(t, "a", "b", "c")
	c.Pause()

	clock.Advance(time.Hour)
	assert.Equal(t, 0, c.Snapshot().Index)
	assert.Equal(t, 0, clock.Fired())
}

func TestController_ResumeGivesOneAdvancePerInterval(t *testing.T) {
	c, clock := mounted(t, images(10)...)
	c.Pause()
	clock.Advance(1234 * time.Millisecond)
	c.Resume()

	for k := 1; k <= 5; k++ {
		clock.Advance(interval - time.Millisecond)
		assert.Equal(t, k-1, c.Snapshot().Index)
		clock.Advance(time.Millisecond)
		assert.Equal(t, k, c.Snapshot().Index)
	}
}

func TestController_ResumeDoesNotAdvanceImmediately(t *testing.T) {
	c, _ := mounted(t, "a", "b", "c")
	c.Pause()
	c.Resume()
	assert.Equal(t, 0, c.Snapshot().Index)
}

func TestController_ResumeRestartsInterval(t *testing.T) {
	c, clock := mounted(t, "a", "b", "c")

	clock.Advance(2000 * time.Millisecond)
	c.Pause()
	c.Resume()

	// 1000ms were left on the old timer; a fresh one needs the full interval.
	clock.Advance(1000 * time.Millisecond)
	assert.Equal(t, 0, c.Snapshot().Index)
	clock.Advance(2000 * time.Millisecond)
	assert.Equal(t, 1, c.Snapshot().Index)
}

func TestController_ManualNavigationKeepsTimerPhase(t *testing.T) {
	c, clock := mounted(t, "a", "b", "c", "d")

	clock.Advance(2000 * time.Millisecond)
	c.Next()
	clock.Advance(1000 * time.Millisecond)
	assert.Equal(t, 2, c.Snapshot().Index)
}

func TestController_EmptyList(t *testing.T) {
	clock := simclock.New()
	c := carousel.New(nil, "", carousel.WithInterval(interval))
	c.Mount(clock)
	defer c.Unmount()

	assert.Equal(t, carousel.StateEmpty, c.State())
	assert.False(t, c.Armed())
	assert.Equal(t, 0, clock.Armed())

	c.Next()
	c.Prev()
	c.Pause()
	c.Resume()
	clock.Advance(time.Minute)

	assert.Equal(t, carousel.StateEmpty, c.State())
	assert.Equal(t, 0, clock.Armed())
	assert.True(t, c.Frame().Empty)
	assert.Panics(t, func() { c.JumpTo(0) })
}

func TestController_UnmountInAnyStateLeavesNoTimer(t *testing.T) {
	setups := map[string]func(c *carousel.Controller){
		"playing":       func(c *carousel.Controller) {},
		"paused":        func(c *carousel.Controller) { c.Pause() },
		"jumped":        func(c *carousel.Controller) { c.JumpTo(2) },
		"resumed":       func(c *carousel.Controller) { c.Pause(); c.Resume() },
		"after advance": func(c *carousel.Controller) { c.Next() },
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			clock := simclock.New()
			c := carousel.New([]string{"a", "b", "c"}, "", carousel.WithInterval(interval))
			c.Mount(clock)
			setup(c)
			clock.Advance(1500 * time.Millisecond)

			before := c.Snapshot()
			c.Unmount()
			c.Unmount()

			assert.Equal(t, 0, clock.Armed())
			assert.False(t, c.Mounted())

			firedBefore := clock.Fired()
			clock.Advance(time.Minute)
			assert.Equal(t, firedBefore, clock.Fired())
			assert.Equal(t, before, c.Snapshot())

			c.Resume()
			c.Next()
			assert.Equal(t, before, c.Snapshot(), "intents after unmount are ignored")
			assert.Equal(t, 0, clock.Armed())
		})
	}
}

func TestController_NeverMoreThanOneTimer(t *testing.T) {
	c, clock := mounted(t, images(5)...)

	ops := []func(){
		c.Pause, c.Resume, c.Resume, func() { c.JumpTo(3) }, c.Resume, c.Next,
		c.Pause, c.Pause, c.Resume, c.Prev, func() { c.JumpTo(0) }, c.Resume,
	}
	for i, op := range ops {
		op()
		assert.LessOrEqual(t, clock.Armed(), 1, "after op %d", i)
		clock.Advance(700 * time.Millisecond)
	}
	assert.Equal(t, 1, clock.Armed())
}

func TestController_MountTwicePanics(t *testing.T) {
	c, clock := mounted(t, "a")
	assert.Panics(t, func() { c.Mount(clock) })

	c.Unmount()
	assert.Panics(t, func() { c.Mount(clock) })
}

func TestController_InstancesAreIndependent(t *testing.T) {
	clock := simclock.New()
	a := carousel.New([]string{"a1", "a2", "a3"}, "A", carousel.WithInterval(time.Second))
	b := carousel.New([]string{"b1", "b2"}, "B", carousel.WithInterval(2*time.Second))
	a.Mount(clock)
	b.Mount(clock)
	defer a.Unmount()
	defer b.Unmount()

	assert.NotEqual(t, a.ID(), b.ID())

	b.Pause()
	clock.Advance(2 * time.Second)
	assert.Equal(t, 2, a.Snapshot().Index)
	assert.Equal(t, 0, b.Snapshot().Index)
	assert.Equal(t, 1, clock.Armed())
}

func TestController_DispatchRoutesIntents(t *testing.T) {
	c, _ := mounted(t, "a", "b", "c")

	c.Dispatch(carousel.Next)
	assert.Equal(t, 1, c.Snapshot().Index)
	c.Dispatch(carousel.Prev)
	c.Dispatch(carousel.Prev)
	assert.Equal(t, 2, c.Snapshot().Index)
	c.Dispatch(carousel.Jump(1))
	assert.Equal(t, carousel.Snapshot{Index: 1, Paused: true, State: carousel.StatePaused}, c.Snapshot())
	c.Dispatch(carousel.Resume)
	assert.Equal(t, carousel.StatePlaying, c.State())
	c.Dispatch(carousel.Pause)
	assert.Equal(t, carousel.StatePaused, c.State())
	c.Dispatch(carousel.Intent{})
	assert.Equal(t, carousel.StatePaused, c.State())
}

func TestController_ImagesAreCopied(t *testing.T) {
	src := []string{"a", "b"}
	c := carousel.New(src, "")
	src[0] = "mutated"
	assert.Equal(t, "a", c.Image(0))

	out := c.Images()
	out[1] = "mutated"
	assert.Equal(t, "b", c.Image(1))
}

func TestController_DefaultInterval(t *testing.T) {
	assert.Equal(t, carousel.DefaultInterval, carousel.New(nil, "").Interval())
	assert.Equal(t, carousel.DefaultInterval, carousel.New(nil, "", carousel.WithInterval(-1)).Interval())
	assert.Equal(t, "fixed", carousel.New(nil, "", carousel.WithID("fixed")).ID())
}

func TestController_PreMountIntentsDoNotArm(t *testing.T) {
	clock := simclock.New()
	c := carousel.New([]string{"a", "b", "c"}, "", carousel.WithInterval(interval))
	c.Next()
	c.JumpTo(2)
	c.Resume()
	assert.False(t, c.Armed())

	c.Mount(clock)
	defer c.Unmount()
	assert.Equal(t, 1, clock.Armed())
	assert.Equal(t, 2, c.Snapshot().Index)
}
