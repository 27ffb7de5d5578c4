package config

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
	done    <-chan struct{}
}

// NewLoader creates a loader. When configFile is empty the file is searched for under the xdg
// config home and the working directory.
func NewLoader(changes chan<- Config, configFile string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	defaults := Default()
	loader.SetDefault("default_tab", defaults.DefaultTabName)
	loader.SetDefault("breakpoint_px", defaults.BreakpointPx)
	loader.SetDefault("cell_width_px", defaults.CellWidthPx)
	loader.SetDefault("cell_height_px", defaults.CellHeightPx)
	loader.SetDefault("reveal_threshold", defaults.RevealThreshold)
	loader.SetDefault("reveal_margin_bottom_px", defaults.RevealMarginBottomPx)
	loader.SetDefault("reveal_mode", defaults.RevealMode)
	loader.SetDefault("reverse_scroll_wheel", defaults.ReverseScrollWheel)
	loader.SetDefault("animate_background", defaults.AnimateBackground)
	loader.SetDefault("fps", defaults.FPS)
	loader.SetDefault("debug", defaults.Debug)
	loader.SetConfigType("yaml")
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	return &loader
}

// Watch starts reloading the config whenever the file changes on disk. Valid configs are
// sent on the changes channel until ctx is done.
func (cl *Loader) Watch(ctx context.Context) {
	if cl.changes == nil {
		return
	}

	cl.done = ctx.Done()

	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) && !in.Has(fsnotify.Create) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	select {
	case cl.changes <- config:
	case <-cl.done:
		slog.Debug("Dropped config reload after shutdown", slog.String("file", in.Name))
	}
}

// Read loads the file (when present), applies environment overrides and validates the result.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}

// WriteDefaults writes the default config to path unless a file already exists there.
func (cl *Loader) WriteDefaults(path string) error {
	if err := cl.SafeWriteConfigAs(path); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}
