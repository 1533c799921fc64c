package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/sheetkit/internal/config"
)

var (
	version string
	cfg     config.Config
	logger  *slog.Logger
	logFile *os.File
)

// SetVersion sets the version string
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "sheetkit",
	Short: "Resizable modal sheets for terminal UIs",
	Long: `sheetkit - A modal sheet presentation layer and two-section scroll layout for Bubble Tea.

Run "sheetkit demo" for an interactive sheet, or "sheetkit layout" to inspect
how the two-section layout places its blocks.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default ./sheetkit.toml or ~/.config/sheetkit/sheetkit.toml)")
	pf.String("log-file", "", "write JSON logs to this file")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("metrics", "terminal", "metrics preset: terminal or points")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	cfg = c

	var w io.Writer = io.Discard
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}
	logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)
	return nil
}
