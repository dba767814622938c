package carousel_test

import (
	"testing"
	"time"

	"finecode/internal/carousel"
	"finecode/internal/simclock"

	"github.com/stretchr/testify/assert"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestScenario_HoverPauseAndResume(t *testing.T) {
	clock := simclock.New()
	c := carousel.New([]string{"a", "b", "c"}, "", carousel.WithInterval(ms(3000)))
	c.Mount(clock)
	defer c.Unmount()

	assert.Equal(t, 0, c.Snapshot().Index)

	clock.AdvanceTo(ms(2999))
	assert.Equal(t, 0, c.Snapshot().Index)

	clock.AdvanceTo(ms(3000))
	assert.Equal(t, 1, c.Snapshot().Index)

	clock.AdvanceTo(ms(3500))
	c.Dispatch(c.Frame().Enter)
	assert.Equal(t, carousel.StatePaused, c.State())

	for _, at := range []int{4000, 6000, 9000, 9999, 10000} {
		clock.AdvanceTo(ms(at))
		assert.Equal(t, 1, c.Snapshot().Index, "t=%d", at)
	}

	c.Dispatch(c.Frame().Leave)
	assert.Equal(t, carousel.StatePlaying, c.State())

	clock.AdvanceTo(ms(12999))
	assert.Equal(t, 1, c.Snapshot().Index)
	clock.AdvanceTo(ms(13000))
	assert.Equal(t, 2, c.Snapshot().Index)
}

func TestScenario_IndicatorClickPausesUntilLeave(t *testing.T) {
	clock := simclock.New()
	c := carousel.New([]string{"a", "b", "c"}, "", carousel.WithInterval(ms(3000)))
	c.Mount(clock)
	defer c.Unmount()

	c.Dispatch(c.Frame().Indicators[2].Intent)
	assert.Equal(t, carousel.Snapshot{Index: 2, Paused: true, State: carousel.StatePaused}, c.Snapshot())

	clock.Advance(time.Minute)
	assert.Equal(t, 2, c.Snapshot().Index)

	c.Dispatch(c.Frame().Leave)
	clock.Advance(ms(3000))
	assert.Equal(t, 0, c.Snapshot().Index)
}
