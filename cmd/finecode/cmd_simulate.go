package main

import (
	"fmt"
	"time"

	"finecode/internal/scenario"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	simImages []string
	simScript string
	simTitle  string
)

// simulateCmd replays an intent timeline on virtual time
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a scripted intent timeline on virtual time",
	Long: `Mounts a carousel on a virtual clock, delivers the intents of a script at
their timestamps and prints every state change: timer advances, intents,
mount and unmount.

Without --script the hover walkthrough runs: three images, pause at 3.5s,
resume at 10s, observed until 13s.

Script format (YAML):
  images: [a.png, b.png, c.png]
  interval: 3s
  until: 15s
  steps:
    - {at: 3500ms, intent: pause}
    - {at: 4s, intent: jump, index: 2}
    - {at: 10s, intent: resume}

Interval precedence: --interval, then the script, then the config.`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringSliceVar(&simImages, "images", nil, "Image references (comma separated, overrides the script)")
	simulateCmd.Flags().StringVar(&simScript, "script", "", "Script file (YAML)")
	simulateCmd.Flags().StringVar(&simTitle, "title", "", "Carousel title for alt text")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	script := scenario.DefaultScript()
	if simScript != "" {
		s, err := scenario.Load(simScript)
		if err != nil {
			return err
		}
		script = s
	}
	if len(simImages) > 0 {
		script.Images = simImages
	}
	if simTitle != "" {
		script.Title = simTitle
	}

	interval := simulationInterval(script)
	currentLogger().Debug("simulating",
		zap.Int("images", len(script.Images)),
		zap.Int("steps", len(script.Steps)),
		zap.Duration("interval", interval))

	events, err := scenario.Run(script, interval)
	if err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "images=%d interval=%s\n", len(script.Images), interval)
	for _, e := range events {
		fmt.Fprintln(out, e)
	}
	return nil
}

func simulationInterval(s *scenario.Script) time.Duration {
	if intervalFlag > 0 {
		return intervalFlag
	}
	if d, ok := s.ScriptInterval(); ok {
		return d
	}
	return currentConfig().Carousel.GetInterval()
}
