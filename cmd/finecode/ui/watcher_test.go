package ui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"finecode/internal/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for watcher message")
		return nil
	}
}

func TestConfigWatcher_ReloadsOnSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.DefaultConfig().Save(path))

	w, err := NewConfigWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	cfg := config.DefaultConfig()
	cfg.Portfolio.Projects = append(cfg.Portfolio.Projects, config.Project{ID: "extra", Title: "Extra"})
	require.NoError(t, cfg.Save(path))

	msg := waitMsg(t, w.Wait())
	reloaded, ok := msg.(portfolioReloadedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Len(t, reloaded.cfg.Portfolio.Projects, 2)
}

func TestConfigWatcher_InvalidConfigReportsError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.DefaultConfig().Save(path))

	w, err := NewConfigWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("carousel:\n  interval: soon\n"), 0644))

	msg := waitMsg(t, w.Wait())
	_, ok := msg.(watcherErrorMsg)
	assert.True(t, ok, "got %T", msg)
}

func TestConfigWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.DefaultConfig().Save(path))

	w, err := NewConfigWatcher(path)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))
	time.Sleep(2 * DefaultReloadDelay)
	assert.False(t, w.debounce.Pending())

	w.Stop()
	assert.Nil(t, waitMsg(t, w.Wait()), "Wait yields nil once stopped")
}

func TestConfigWatcher_StopIsIdempotent(t *testing.T) {
	w, err := NewConfigWatcher(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.NoError(t, w.Start())
	w.Stop()
	w.Stop()
}
