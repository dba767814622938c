package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"finecode/internal/config"
	"finecode/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// portfolioReloadedMsg carries a configuration that was re-read from disk
// and validated.
type portfolioReloadedMsg struct {
	cfg *config.Config
}

// watcherErrorMsg reports a reload that failed to read, parse or validate.
type watcherErrorMsg struct {
	err error
}

// ConfigWatcher watches the configuration file and turns saves into
// Bubble Tea messages. It watches the parent directory so editors that
// replace the file through a rename are still noticed.
type ConfigWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	dir      string
	debounce *Debouncer
	events   chan tea.Msg
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewConfigWatcher creates a watcher for the configuration file at path.
func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ConfigWatcher{
		watcher:  watcher,
		path:     abs,
		dir:      filepath.Dir(abs),
		debounce: NewDebouncer(DefaultReloadDelay),
		events:   make(chan tea.Msg, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking.
func (w *ConfigWatcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		logging.WatcherError("failed to create config dir %s: %v", w.dir, err)
	}
	if err := w.watcher.Add(w.dir); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	logging.Watcher("watching %s", w.path)

	go w.run()
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (w *ConfigWatcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	w.debounce.Cancel()
	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		logging.WatcherError("error closing watcher: %v", err)
	}
	logging.Watcher("stopped")
}

// Wait returns a command that blocks until the next reload message. The
// model re-issues it after every delivery. Once the watcher stops the
// command yields nil.
func (w *ConfigWatcher) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-w.events:
			return msg
		case <-w.doneCh:
			return nil
		}
	}
}

func (w *ConfigWatcher) run() {
	defer close(w.doneCh)

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.WatcherError("watcher error: %v", err)
		}
	}
}

func (w *ConfigWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	logging.Watcher("%s event for %s", event.Op, event.Name)
	w.debounce.Debounce(w.reload)
}

func (w *ConfigWatcher) reload() {
	var msg tea.Msg
	cfg, err := config.Load(w.path)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		logging.WatcherError("reload %s: %v", w.path, err)
		msg = watcherErrorMsg{err: err}
	} else {
		logging.Watcher("reloaded %s (%d projects)", w.path, len(cfg.Portfolio.Projects))
		msg = portfolioReloadedMsg{cfg: cfg}
	}

	select {
	case w.events <- msg:
	default:
		// The model has not taken the previous message yet; replace it.
		select {
		case <-w.events:
		default:
		}
		select {
		case w.events <- msg:
		default:
		}
	}
}
