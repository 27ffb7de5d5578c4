package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "pulse.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("breakpoint_px: 1280\n"), 0o600))

	return configPath
}

func TestConfigChangeDelivered(t *testing.T) {
	changes := make(chan Config, 1)
	loader := NewLoader(changes, writeTestConfig(t))
	loader.done = context.Background().Done()

	loader.onConfigChange(fsnotify.Event{Name: loader.Path(), Op: fsnotify.Write})

	select {
	case conf := <-changes:
		require.Equal(t, 1280, conf.BreakpointPx)
	default:
		t.Fatal("config change was not delivered")
	}
}

func TestConfigChangeAfterShutdownDoesNotBlock(t *testing.T) {
	changes := make(chan Config)
	loader := NewLoader(changes, writeTestConfig(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loader.done = ctx.Done()

	returned := make(chan struct{})
	go func() {
		loader.onConfigChange(fsnotify.Event{Name: loader.Path(), Op: fsnotify.Write})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("config change blocked with nobody receiving")
	}
}

func TestConfigChangeIgnoresChmod(t *testing.T) {
	changes := make(chan Config, 1)
	loader := NewLoader(changes, writeTestConfig(t))

	loader.onConfigChange(fsnotify.Event{Name: loader.Path(), Op: fsnotify.Chmod})
	require.Empty(t, changes)
}
