package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"finecode/internal/carousel"
	"finecode/internal/eventloop"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	playProject string
	playFor     time.Duration
)

// playCmd runs a carousel in real time without a terminal UI
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a project's carousel in real time and print each frame",
	Long: `Mounts the carousel of one project on a real-time event loop and prints a
line whenever the selected screenshot or the play state changes. Stops after
--for, or on interrupt, unmounting the carousel first.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&playProject, "project", "p", "", "Project id (default: first project)")
	playCmd.Flags().DurationVar(&playFor, "for", 0, "Stop after this long (default: until interrupted)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	p, err := findProject(currentConfig(), playProject)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(p.Images) == 0 {
		fmt.Fprintf(out, "project %s has no images; nothing to play\n", p.ID)
		return nil
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if playFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, playFor)
		defer cancel()
	}

	interval := resolveInterval()
	currentLogger().Info("playing",
		zap.String("project", p.ID),
		zap.Int("images", len(p.Images)),
		zap.Duration("interval", interval))

	ctrl := carousel.New(p.Images, p.Title, carousel.WithInterval(interval))
	return play(ctx, ctrl, out)
}

// play drives ctrl on an event loop until ctx ends. The controller is only
// touched from the loop goroutine, and from this one after the loop exits.
func play(ctx context.Context, ctrl *carousel.Controller, out io.Writer) error {
	loop := eventloop.New(0)
	start := time.Now()

	var last carousel.Snapshot
	printed := false
	loop.OnIdle = func() {
		s := ctrl.Snapshot()
		if printed && s == last {
			return
		}
		last, printed = s, true
		fmt.Fprintln(out, frameLine(time.Since(start), ctrl.Frame()))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		if err := loop.Call(gctx, func() { ctrl.Mount(loop) }); err != nil && gctx.Err() == nil {
			return err
		}
		<-gctx.Done()
		return nil
	})
	err := g.Wait()

	ctrl.Unmount()
	fmt.Fprintf(out, "stopped after %s at image %d/%d\n",
		time.Since(start).Round(time.Millisecond), ctrl.Snapshot().Index+1, ctrl.Len())
	return err
}

// frameLine renders a frame on one line, e.g. "1.5s  ○ ● ○  2/3 playing  b.png".
func frameLine(elapsed time.Duration, f carousel.Frame) string {
	if f.Empty {
		return fmt.Sprintf("%s  (empty)", elapsed.Round(time.Millisecond))
	}

	dots := make([]string, len(f.Indicators))
	active := 0
	for i, ind := range f.Indicators {
		if ind.Active {
			dots[i] = "●"
			active = i
		} else {
			dots[i] = "○"
		}
	}
	state := "playing"
	if f.Paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  %s  %d/%d %s  %s",
		elapsed.Round(time.Millisecond), strings.Join(dots, " "), active+1, len(f.Indicators), state, f.Image.Src)
}
