// Package main is the entry point for clipdate. It parses flags with cobra,
// loads layered configuration, wires dependencies using samber/do v2, and
// runs the clipboard watcher and the optional ops HTTP server until
// SIGINT/SIGTERM or a fatal clipboard error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	adapthttp "github.com/jsamuelsen11/clipdate/internal/adapters/http"
	"github.com/jsamuelsen11/clipdate/internal/app"
	"github.com/jsamuelsen11/clipdate/internal/domain"
	"github.com/jsamuelsen11/clipdate/internal/platform/config"
	"github.com/jsamuelsen11/clipdate/internal/platform/logging"
)

const (
	defaultProfile      = "local"
	otelShutdownTimeout = 5 * time.Second
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// flags holds the raw command-line values. Only flags the user set are
// passed on as config overrides.
type flags struct {
	profile      string
	configDir    string
	interval     time.Duration
	inputLayout  string
	outputLayout string
	baseline     string
	logLevel     string
}

func newRootCommand() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "clipdate",
		Short: "Rewrite MM/DD/YY dates on the clipboard as MM/DD/YYYY",
		Long: `clipdate watches the system clipboard. When newly copied text is a
two-digit-year date such as 11/23/21, it replaces the clipboard contents
with the four-digit-year form 11/23/2021. Anything else is left alone.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), f, overrides(cmd.Flags(), f))
		},
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		profile = defaultProfile
	}

	fs := cmd.Flags()
	fs.StringVar(&f.profile, "profile", profile, "config profile to load (defaults to $APP_PROFILE)")
	fs.StringVar(&f.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	fs.DurationVar(&f.interval, "interval", app.DefaultInterval, "clipboard polling interval")
	fs.StringVar(&f.inputLayout, "input-layout", "01/02/06", "Go time layout that copied dates must match")
	fs.StringVar(&f.outputLayout, "output-layout", "01/02/2006", "Go time layout written back to the clipboard")
	fs.StringVar(&f.baseline, "baseline", string(app.BaselineFormatted), "baseline after a rewrite: formatted or original")
	fs.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	return cmd
}

// overrides maps explicitly set flags to their config keys.
func overrides(fs *pflag.FlagSet, f *flags) map[string]any {
	values := make(map[string]any)
	set := func(name, key string, v any) {
		if fs.Changed(name) {
			values[key] = v
		}
	}
	set("interval", "watch.interval", f.interval.String())
	set("input-layout", "watch.input_layout", f.inputLayout)
	set("output-layout", "watch.output_layout", f.outputLayout)
	set("baseline", "watch.baseline", f.baseline)
	set("log-level", "log.level", f.logLevel)
	return values
}

func run(ctx context.Context, f *flags, values map[string]any) error {
	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(f.profile,
		config.WithConfigDir(f.configDir),
		config.WithOverrides(values),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: loading config: %v\n", err)
		return err
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		logging.WithContentRedaction(cfg.Log.RedactContent),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		logger.Error("initializing telemetry failed", slog.Any("error", err))
		return err
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, otel.TracerProvider())
	registerDependencies(injector, cfg, logger)

	watcher, err := do.Invoke[*app.Watcher](injector)
	if err != nil {
		return fatal(logger, "init", err)
	}
	registerHealthChecks(injector)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(gctx)
	})

	if cfg.Server.Enabled {
		server, err := do.Invoke[*adapthttp.Server](injector)
		if err != nil {
			stop()
			_ = g.Wait()
			return fatal(logger, "init", err)
		}
		g.Go(func() error {
			return server.Run(gctx)
		})
	}

	if err := g.Wait(); err != nil {
		return fatal(logger, operation(err), err)
	}

	logger.Info("shutdown complete")
	return nil
}

// fatal logs an unrecoverable error with the failed operation.
func fatal(logger *slog.Logger, op string, err error) error {
	logger.Error("clipdate stopped", slog.String("operation", op), slog.Any("error", err))
	return err
}

// operation names the failed clipboard operation, if any.
func operation(err error) string {
	var cerr *domain.ClipboardError
	if errors.As(err, &cerr) {
		return cerr.Op
	}
	return "serve"
}
