// Package scenario replays a scripted timeline of carousel intents on virtual
// time and records every state change. It backs the simulate command.
package scenario

import (
	"fmt"
	"os"
	"time"

	"finecode/internal/carousel"
	"finecode/internal/simclock"

	"gopkg.in/yaml.v3"
)

// Script is the YAML document read by Load.
//
//	images: [a, b, c]
//	interval: 3s
//	until: 15s
//	steps:
//	  - {at: 3500ms, intent: pause}
//	  - {at: 10s, intent: resume}
type Script struct {
	Title    string   `yaml:"title,omitempty"`
	Images   []string `yaml:"images"`
	Interval string   `yaml:"interval,omitempty"`
	Until    string   `yaml:"until,omitempty"`
	Steps    []Step   `yaml:"steps"`
}

// Step delivers one intent at a virtual time offset.
type Step struct {
	At     string `yaml:"at"`
	Intent string `yaml:"intent"`
	Index  int    `yaml:"index,omitempty"`
}

// Event is one recorded observation.
type Event struct {
	At       time.Duration
	Cause    string
	Snapshot carousel.Snapshot
	Armed    int
}

func (e Event) String() string {
	return fmt.Sprintf("t=%-8s %-12s index=%d state=%s timers=%d",
		e.At, e.Cause, e.Snapshot.Index, e.Snapshot.State, e.Armed)
}

// DefaultScript is the hover walkthrough: pause at 3.5s, resume at 10s.
func DefaultScript() *Script {
	return &Script{
		Images: []string{"a", "b", "c"},
		Until:  "13s",
		Steps: []Step{
			{At: "3500ms", Intent: "pause"},
			{At: "10s", Intent: "resume"},
		},
	}
}

// Parse decodes a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	return &s, nil
}

// Load reads and decodes a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return Parse(data)
}

// ScriptInterval returns the script's own interval, if it sets a valid one.
func (s *Script) ScriptInterval() (time.Duration, bool) {
	if s.Interval == "" {
		return 0, false
	}
	d, err := time.ParseDuration(s.Interval)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}

type compiledStep struct {
	at     time.Duration
	intent carousel.Intent
	label  string
}

// compile validates every step so Run never hands the controller an intent
// that would violate its contract.
func (s *Script) compile(interval time.Duration) ([]compiledStep, time.Duration, error) {
	steps := make([]compiledStep, 0, len(s.Steps))
	var last time.Duration
	for i, st := range s.Steps {
		at, err := time.ParseDuration(st.At)
		if err != nil {
			return nil, 0, fmt.Errorf("step %d: invalid time %q: %w", i, st.At, err)
		}
		if at < 0 {
			return nil, 0, fmt.Errorf("step %d: negative time %s", i, at)
		}
		if at < last {
			return nil, 0, fmt.Errorf("step %d: time %s is before previous step %s", i, at, last)
		}
		last = at

		kind, ok := carousel.ParseIntentKind(st.Intent)
		if !ok {
			return nil, 0, fmt.Errorf("step %d: unknown intent %q", i, st.Intent)
		}
		in := carousel.Intent{Kind: kind}
		label := kind.String()
		if kind == carousel.IntentJump {
			if st.Index < 0 || st.Index >= len(s.Images) {
				return nil, 0, fmt.Errorf("step %d: jump index %d out of range [0,%d)", i, st.Index, len(s.Images))
			}
			in.Index = st.Index
			label = fmt.Sprintf("jump(%d)", st.Index)
		}
		steps = append(steps, compiledStep{at: at, intent: in, label: label})
	}

	until := last + 3*interval
	if s.Until != "" {
		d, err := time.ParseDuration(s.Until)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid until %q: %w", s.Until, err)
		}
		if d < last {
			return nil, 0, fmt.Errorf("until %s is before the last step %s", d, last)
		}
		until = d
	}
	return steps, until, nil
}

// Run mounts a carousel on a fresh virtual clock, plays the script and
// returns the recorded events, ending with the unmount.
func Run(s *Script, interval time.Duration) ([]Event, error) {
	if interval <= 0 {
		interval = carousel.DefaultInterval
	}
	steps, until, err := s.compile(interval)
	if err != nil {
		return nil, err
	}

	clock := simclock.New()
	c := carousel.New(s.Images, s.Title, carousel.WithInterval(interval))

	var events []Event
	record := func(cause string) {
		events = append(events, Event{At: clock.Now(), Cause: cause, Snapshot: c.Snapshot(), Armed: clock.Armed()})
	}
	advance := func(to time.Duration) {
		for {
			due, ok := clock.NextFire()
			if !ok || due > to {
				break
			}
			clock.AdvanceTo(due)
			record("tick")
		}
		clock.AdvanceTo(to)
	}

	c.Mount(clock)
	record("mount")

	for _, st := range steps {
		advance(st.at)
		c.Dispatch(st.intent)
		record(st.label)
	}
	advance(until)

	c.Unmount()
	record("unmount")
	return events, nil
}
