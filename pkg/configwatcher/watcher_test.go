package configwatcher

import (
	"context"
	"os"
	"path/filepath"
	"skill_manager_backend/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	t.Setenv("AI_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")

	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	logFile := filepath.Join(dir, "logs", "app.log")
	write := func(model string) {
		content := "database:\n  driver: sqlite\nai:\n  model: " + model + "\nlog:\n  file: " + logFile + "\n"
		require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	}
	write("first-model")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, file, func(cfg *config.Config) { reloaded <- cfg })
	}()

	// 等待 watcher 就绪
	time.Sleep(200 * time.Millisecond)
	write("second-model")

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "second-model", cfg.AI.Model)
	case <-time.After(5 * time.Second):
		t.Fatal("config was not reloaded")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchConfig_MissingDir(t *testing.T) {
	err := WatchConfig(context.Background(), filepath.Join(t.TempDir(), "nope", "config.yaml"), func(*config.Config) {})
	assert.Error(t, err)
}
