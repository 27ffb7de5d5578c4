package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"

	"github.com/adrg/xdg"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/reveal"
	"github.com/leighmacdonald/pulse/internal/sidebar"
)

var (
	errConfigWrite   = errors.New("failed to write config file")
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config value")
	errLoggerInit    = errors.New("failed to initialize logger")
)

const (
	ConfigDirName     = "pulse"
	DefaultConfigName = "pulse"
	DefaultLogName    = "pulse.log"
	EnvPrefix         = "pulse"

	RevealModeObserve   = "observe"
	RevealModeImmediate = "immediate"
)

type Config struct {
	// DefaultTabName is the tab identifier active at startup, e.g. "news".
	DefaultTabName string  `mapstructure:"default_tab"`
	DefaultTab     nav.Tab `mapstructure:"-"`
	// BreakpointPx is the width, in logical pixels, below which the layout is mobile.
	BreakpointPx int `mapstructure:"breakpoint_px"`
	// CellWidthPx and CellHeightPx convert terminal cells into logical pixels.
	CellWidthPx  int `mapstructure:"cell_width_px"`
	CellHeightPx int `mapstructure:"cell_height_px"`
	// RevealThreshold is the visible fraction of a section needed to reveal it.
	RevealThreshold      float64 `mapstructure:"reveal_threshold"`
	RevealMarginBottomPx int     `mapstructure:"reveal_margin_bottom_px"`
	// RevealMode is either "observe" or "immediate". Immediate shows every section at once,
	// which is also what happens when the terminal cannot report its geometry.
	RevealMode         string `mapstructure:"reveal_mode"`
	ReverseScrollWheel bool   `mapstructure:"reverse_scroll_wheel"`
	AnimateBackground  bool   `mapstructure:"animate_background"`
	FPS                int    `mapstructure:"fps"`
	Debug              bool   `mapstructure:"debug"`
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() Config {
	return Config{
		DefaultTabName:       nav.DefaultTab.String(),
		DefaultTab:           nav.DefaultTab,
		BreakpointPx:         sidebar.DefaultBreakpoint,
		CellWidthPx:          8,
		CellHeightPx:         16,
		RevealThreshold:      reveal.DefaultThreshold,
		RevealMarginBottomPx: reveal.DefaultMarginBottom,
		RevealMode:           RevealModeObserve,
		AnimateBackground:    true,
		FPS:                  30,
	}
}

// Validate checks every value and resolves DefaultTab from DefaultTabName.
func (c *Config) Validate() error {
	tab, errTab := nav.ParseTab(c.DefaultTabName)
	if errTab != nil {
		return errors.Join(errTab, errConfigInvalid)
	}
	c.DefaultTab = tab

	switch {
	case c.BreakpointPx <= 0:
		return fmt.Errorf("%w: breakpoint_px must be positive, got %d", errConfigInvalid, c.BreakpointPx)
	case c.CellWidthPx <= 0 || c.CellHeightPx <= 0:
		return fmt.Errorf("%w: cell sizes must be positive, got %dx%d", errConfigInvalid, c.CellWidthPx, c.CellHeightPx)
	case c.RevealThreshold < 0 || c.RevealThreshold > 1:
		return fmt.Errorf("%w: reveal_threshold must be within [0,1], got %v", errConfigInvalid, c.RevealThreshold)
	case c.RevealMarginBottomPx < 0:
		return fmt.Errorf("%w: reveal_margin_bottom_px must not be negative", errConfigInvalid)
	case c.RevealMode != RevealModeObserve && c.RevealMode != RevealModeImmediate:
		return fmt.Errorf("%w: reveal_mode must be %q or %q, got %q", errConfigInvalid,
			RevealModeObserve, RevealModeImmediate, c.RevealMode)
	case c.FPS <= 0 || c.FPS > 120:
		return fmt.Errorf("%w: fps must be within (0,120], got %d", errConfigInvalid, c.FPS)
	}

	return nil
}

// WidthPx converts a terminal column count to logical pixels.
func (c Config) WidthPx(columns int) int {
	return columns * c.CellWidthPx
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(Path(logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}

// LogLevel maps the debug flag onto a slog level.
func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}
