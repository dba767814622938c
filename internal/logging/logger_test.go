package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetLogging() {
	CloseAll()
	logsDir = ""
	config = Config{}
}

// TestAllCategoriesLog tests that all categories create log files when debug_mode is true
func TestAllCategoriesLog(t *testing.T) {
	resetLogging()
	t.Cleanup(resetLogging)

	tempDir := t.TempDir()
	require.NoError(t, Initialize(tempDir, Config{DebugMode: true, Level: "debug"}))
	assert.True(t, IsDebugMode())

	categories := []Category{
		CategoryBoot,
		CategoryConfig,
		CategoryCarousel,
		CategoryScheduler,
		CategoryUI,
		CategoryWatcher,
	}
	for _, cat := range categories {
		require.True(t, IsCategoryEnabled(cat), "category %s should be enabled", cat)
		Get(cat).Info("Test info message for %s", cat)
	}

	CarouselDebug("convenience carousel debug")
	SchedulerDebug("convenience scheduler debug")
	UIDebug("convenience ui debug")

	CloseAll()

	entries, err := os.ReadDir(filepath.Join(tempDir, ".finecode", "logs"))
	require.NoError(t, err)

	for _, cat := range categories {
		found := false
		for _, entry := range entries {
			if !strings.HasSuffix(entry.Name(), "_"+string(cat)+".log") {
				continue
			}
			found = true
			content, err := os.ReadFile(filepath.Join(tempDir, ".finecode", "logs", entry.Name()))
			require.NoError(t, err)
			assert.Contains(t, string(content), "Test info message for "+string(cat))
		}
		assert.True(t, found, "no log file found for category %s", cat)
	}
}

// TestDebugModeDisabled tests that no logs are created when debug_mode is false
func TestDebugModeDisabled(t *testing.T) {
	resetLogging()
	t.Cleanup(resetLogging)

	tempDir := t.TempDir()
	require.NoError(t, Initialize(tempDir, Config{DebugMode: false}))

	Carousel("should not be written")
	Get(CategoryUI).Error("nor this")

	_, err := os.Stat(filepath.Join(tempDir, ".finecode", "logs"))
	assert.True(t, os.IsNotExist(err), "logs directory should not exist in production mode")
}

func TestCategoryFilter(t *testing.T) {
	resetLogging()
	t.Cleanup(resetLogging)

	require.NoError(t, Initialize(t.TempDir(), Config{
		DebugMode:  true,
		Categories: map[string]bool{"ui": false},
	}))

	assert.False(t, IsCategoryEnabled(CategoryUI))
	assert.True(t, IsCategoryEnabled(CategoryCarousel), "unlisted categories default to enabled")
	assert.Nil(t, Get(CategoryUI).sugar)
}

func TestInitializeRequiresWorkspace(t *testing.T) {
	assert.Error(t, Initialize("", Config{}))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "warn", parseLevel("warning").String())
	assert.Equal(t, "debug", parseLevel("debug").String())
	assert.Equal(t, "info", parseLevel("bogus").String())
}
