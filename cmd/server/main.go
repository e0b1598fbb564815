package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomrelay/internal/app"
	"github.com/vovakirdan/roomrelay/internal/config"
	"github.com/vovakirdan/roomrelay/internal/log"
)

type flags struct {
	configPath string
	logLevel   string
	addr       string
	staticDir  string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "roomrelay",
		Short:         "Real-time relay server for ephemeral voice and text rooms",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f)
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "path to config file (created with defaults when missing)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "log level override (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&f.addr, "addr", "", "HTTP listen address override")
	cmd.Flags().StringVar(&f.staticDir, "static-dir", "", "directory of the client bundle")

	return cmd
}

func run(parent context.Context, f flags) error {
	bootLogger := log.New(firstNonEmpty(f.logLevel, "info"), true)

	cfg, path, err := config.Load(bootLogger, f.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.UpdateFrom(config.Config{
		Addr:      f.addr,
		LogLevel:  f.logLevel,
		StaticDir: f.staticDir,
	})

	logger := log.New(cfg.LogLevel, cfg.Mode == "debug")
	logger.Info().Str("config", path).Str("addr", cfg.Addr).Str("static_dir", cfg.StaticDir).Msg("starting roomrelay")

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.New(&cfg, logger).Run(ctx); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
