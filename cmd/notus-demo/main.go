// Command notus-demo serves an interactive page that sends notifications
// through a server side surface and streams the result to the browser.
package main

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/notus"
	"github.com/dmitrymomot/notus/pkg/config"
	"github.com/dmitrymomot/notus/pkg/httpserver"
	"github.com/dmitrymomot/notus/pkg/logger"
	"github.com/dmitrymomot/notus/pkg/requestid"
)

//go:embed presets.yaml
var presetsYAML []byte

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithEnvironment(cfg.Env, "notus-demo"),
		logger.WithContextExtractors(requestid.LoggerExtractor),
	)
	logger.SetAsDefault(log)

	var defaults notus.EnvConfig
	if err := config.Load(&defaults, config.WithPrefix("NOTUS_")); err != nil {
		return fmt.Errorf("load notifier defaults: %w", err)
	}

	presets, err := notus.LoadPresets(bytes.NewReader(presetsYAML))
	if err != nil {
		return err
	}

	a, err := newApp(log, defaults, presets)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, a.routes())
}
