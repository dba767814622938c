package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"finecode/cmd/finecode/ui"
	"finecode/internal/config"
	"finecode/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose      bool
	workspace    string
	configFile   string
	intervalFlag time.Duration

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "finecode",
	Short: "finecode - portfolio browser with auto-advancing screenshot carousels",
	Long: `finecode shows the projects listed in the portfolio configuration, one
screenshot carousel per project.

A carousel advances on its own every interval. Hovering over it (or pressing
space) pauses it, and picking a screenshot directly keeps it paused until the
pointer leaves again.

Run without arguments to start the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		ws, err := resolveWorkspace()
		if err != nil {
			return err
		}
		if configFile == "" {
			configFile = filepath.Join(ws, config.DefaultPath)
		}

		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configFile, err)
		}

		if err := logging.Initialize(ws, cfg.Logging.Options()); err != nil {
			logger.Warn("file logging disabled", zap.Error(err))
		}
		logging.Boot("config loaded from %s (%d projects)", configFile, len(cfg.Portfolio.Projects))
		logger.Debug("config loaded",
			zap.String("path", configFile),
			zap.Duration("interval", resolveInterval()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPortfolio,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Config file (default: <workspace>/"+config.DefaultPath+")")
	rootCmd.PersistentFlags().DurationVar(&intervalFlag, "interval", 0, "Carousel auto-advance interval (overrides config)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolveWorkspace() (string, error) {
	if workspace != "" {
		return workspace, nil
	}
	ws, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace: %w", err)
	}
	return ws, nil
}

// currentConfig returns the loaded config, or the defaults when a command
// runs without the root's pre-run (as in tests).
func currentConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// resolveInterval applies the --interval flag over the configured value.
func resolveInterval() time.Duration {
	if intervalFlag > 0 {
		return intervalFlag
	}
	return currentConfig().Carousel.GetInterval()
}

// findProject returns the project with the given id, or the first project
// when id is empty.
func findProject(c *config.Config, id string) (config.Project, error) {
	if id == "" {
		if len(c.Portfolio.Projects) == 0 {
			return config.Project{}, fmt.Errorf("no projects configured")
		}
		return c.Portfolio.Projects[0], nil
	}
	p, ok := c.Portfolio.FindProject(id)
	if !ok {
		return config.Project{}, fmt.Errorf("unknown project %q", id)
	}
	return p, nil
}

// runPortfolio starts the interactive browser.
func runPortfolio(cmd *cobra.Command, args []string) error {
	opts := ui.PortfolioOptions{Interval: intervalFlag}

	if configFile != "" {
		w, err := ui.NewConfigWatcher(configFile)
		if err != nil {
			currentLogger().Warn("config watcher unavailable", zap.Error(err))
		} else if err := w.Start(); err != nil {
			currentLogger().Warn("config watcher unavailable", zap.Error(err))
		} else {
			opts.Watcher = w
			defer w.Stop()
		}
	}

	return ui.Run(currentConfig(), opts)
}
