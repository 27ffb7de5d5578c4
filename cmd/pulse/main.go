package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/pulse/internal/config"
	"github.com/leighmacdonald/pulse/internal/nav"
	"github.com/leighmacdonald/pulse/internal/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	tabName        string
	snapshotWidth  int
	snapshotHeight int
	rootCmd        = &cobra.Command{
		Use:   "pulse",
		Short: "Market intelligence dashboard",
		Long:  `pulse - A terminal dashboard for influencer, asset and news signals`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about pulse",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	snapshotCmd = &cobra.Command{
		Use:   "snapshot",
		Short: "Render a single frame to stdout",
		Long:  "Render a single dashboard frame without a terminal. Every section is shown.",
		Args:  cobra.NoArgs,
		RunE:  snapshot,
	}

	initConfigCmd = &cobra.Command{
		Use:   "init-config",
		Short: "Write the default config file",
		Long:  "Write the default config file. Existing files are left untouched.",
		Args:  cobra.NoArgs,
		RunE:  initConfig,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&tabName, "tab", "", "Initial tab: home, influencers, assets, news, alerts or market")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 160, "Frame width in columns")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", 48, "Frame height in rows")
	rootCmd.AddCommand(versionCmd, snapshotCmd, initConfigCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("pulse - Market Intelligence Dashboard\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)            //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)             //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)               //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)        //nolint:forbidigo
}

// readConfig loads the config and applies the --tab override.
func readConfig(loader *config.Loader) (config.Config, error) {
	conf, errConfig := loader.Read()
	if errConfig != nil {
		return conf, errors.Join(errConfig, errApp)
	}

	if err := applyTab(&conf, tabName); err != nil {
		return conf, err
	}

	return conf, nil
}

func applyTab(conf *config.Config, name string) error {
	if name == "" {
		return nil
	}

	tab, errTab := nav.ParseTab(name)
	if errTab != nil {
		return errors.Join(errTab, errApp)
	}

	conf.DefaultTab = tab
	conf.DefaultTabName = tab.String()

	return nil
}

// run is the main entry point of pulse.
func run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	loader := config.NewLoader(configUpdates, cfgFile)
	userConfig, errConfig := readConfig(loader)
	if errConfig != nil {
		return errConfig
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.LogLevel())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting pulse", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	if configPath := loader.Path(); configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			slog.Debug("Watching config", slog.String("path", configPath))
			loader.Watch(ctx)
		}
	}

	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if !interactive {
		slog.Warn("Stdout is not a terminal, revealing all sections immediately")
	}

	app := NewApp(configUpdates)

	return app.Run(ctx, ui.New(ctx, userConfig, ui.WithInteractive(interactive)))
}

func snapshot(cmd *cobra.Command, _ []string) error {
	if snapshotWidth <= 0 || snapshotHeight <= 0 {
		return fmt.Errorf("%w: snapshot size must be positive, got %dx%d", errApp, snapshotWidth, snapshotHeight)
	}

	userConfig, errConfig := readConfig(config.NewLoader(nil, cfgFile))
	if errConfig != nil {
		return errConfig
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), ui.Snapshot(userConfig, snapshotWidth, snapshotHeight)); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}

func initConfig(cmd *cobra.Command, _ []string) error {
	target := cfgFile
	if target == "" {
		target = config.Path(config.DefaultConfigName + ".yaml")
	}

	if err := config.NewLoader(nil, target).WriteDefaults(target); err != nil {
		return errors.Join(err, errApp)
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", target); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
