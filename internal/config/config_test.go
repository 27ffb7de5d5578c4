package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leighmacdonald/pulse/internal/config"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "pulse.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(body), 0o600))

	return configPath
}

func TestDefaultsAreValid(t *testing.T) {
	conf := config.Default()
	require.NoError(t, conf.Validate())
	require.Equal(t, nav.TabHome, conf.DefaultTab)
	require.Equal(t, 1024, conf.BreakpointPx)
	require.Equal(t, 1024, conf.WidthPx(128))
	require.Equal(t, 1016, conf.WidthPx(127))
}

func TestReadMissingFileUsesDefaults(t *testing.T) {
	loader := config.NewLoader(nil, filepath.Join(t.TempDir(), "missing.yaml"))

	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, config.Default(), conf)
}

func TestReadFile(t *testing.T) {
	configPath := writeConfig(t, `
default_tab: news
breakpoint_px: 1280
reveal_mode: immediate
animate_background: false
`)

	conf, err := config.NewLoader(nil, configPath).Read()
	require.NoError(t, err)
	require.Equal(t, nav.TabNews, conf.DefaultTab)
	require.Equal(t, 1280, conf.BreakpointPx)
	require.Equal(t, config.RevealModeImmediate, conf.RevealMode)
	require.False(t, conf.AnimateBackground)
	require.Equal(t, 8, conf.CellWidthPx)
}

func TestReadEnvOverride(t *testing.T) {
	t.Setenv("PULSE_DEFAULT_TAB", "alerts")

	conf, err := config.NewLoader(nil, filepath.Join(t.TempDir(), "missing.yaml")).Read()
	require.NoError(t, err)
	require.Equal(t, nav.TabAlerts, conf.DefaultTab)
}

func TestReadRejectsInvalidTab(t *testing.T) {
	configPath := writeConfig(t, "default_tab: portfolio\n")

	_, err := config.NewLoader(nil, configPath).Read()
	require.Error(t, err)
	require.ErrorIs(t, err, nav.ErrInvalidTab)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *config.Config)
	}{
		{name: "breakpoint", mutate: func(c *config.Config) { c.BreakpointPx = 0 }},
		{name: "cell width", mutate: func(c *config.Config) { c.CellWidthPx = -1 }},
		{name: "threshold", mutate: func(c *config.Config) { c.RevealThreshold = 1.5 }},
		{name: "margin", mutate: func(c *config.Config) { c.RevealMarginBottomPx = -50 }},
		{name: "mode", mutate: func(c *config.Config) { c.RevealMode = "lazy" }},
		{name: "fps", mutate: func(c *config.Config) { c.FPS = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conf := config.Default()
			tc.mutate(&conf)
			require.Error(t, conf.Validate())
		})
	}
}

func TestWriteDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "pulse.yaml")
	loader := config.NewLoader(nil, configPath)

	require.NoError(t, loader.WriteDefaults(configPath))
	require.Error(t, loader.WriteDefaults(configPath), "existing files are never overwritten")

	conf, err := config.NewLoader(nil, configPath).Read()
	require.NoError(t, err)
	require.Equal(t, config.Default(), conf)
}
