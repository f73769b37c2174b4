// Command spritegen renders the sprite assets from the command line.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-colorable"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"

	"github.com/gogpu/sprite"
)

var (
	cfgPath  string
	logLevel string
	logFile  string
	noColor  bool
	quiet    bool
)

var rootCmd = &cobra.Command{
	Use:          "spritegen",
	Short:        "spritegen renders procedural sprite assets as PNG files",
	Long:         `spritegen renders procedural sprite assets (radial glow sprites and stroked-curve icon masks) as PNG files.`,
	SilenceUsage: true,
	Version:      sprite.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging()
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML parameter file overriding the built-in defaults")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append JSON logs to this file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress and console logs")
}

// setupLogging wires the console and optional file handlers into a single
// logger shared with the sprite library.
func setupLogging() error {
	applyColorMode()

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}

	var handlers []slog.Handler
	if !quiet {
		handlers = append(handlers, slog.NewTextHandler(
			colorable.NewColorableStderr(),
			&slog.HandlerOptions{Level: level},
		))
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		// The file handler always records debug detail; the flag only
		// gates the console.
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	var logger *slog.Logger
	switch len(handlers) {
	case 0:
		sprite.SetLogger(nil)
		return nil
	case 1:
		logger = slog.New(handlers[0])
	default:
		logger = slog.New(slogmulti.Fanout(handlers...))
	}
	sprite.SetLogger(logger)
	return nil
}

// parseLevel maps a --log-level string to a slog level.
func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
