package config

import (
	"fmt"
	"time"

	"finecode/internal/carousel"
)

// CarouselConfig configures auto-advance behavior shared by every carousel.
type CarouselConfig struct {
	// Interval is the time between automatic advances while playing, as a Go duration.
	Interval string `yaml:"interval"`
}

// GetInterval returns the interval as a duration, falling back to
// carousel.DefaultInterval when unset or invalid.
func (c CarouselConfig) GetInterval() time.Duration {
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d <= 0 {
		return carousel.DefaultInterval
	}
	return d
}

// Validate rejects intervals that cannot drive a timer.
func (c CarouselConfig) Validate() error {
	if c.Interval == "" {
		return nil
	}
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return fmt.Errorf("invalid carousel interval %q: %w", c.Interval, err)
	}
	if d <= 0 {
		return fmt.Errorf("invalid carousel interval %q: must be positive", c.Interval)
	}
	return nil
}
