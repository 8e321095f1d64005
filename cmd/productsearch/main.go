package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

type CLI struct {
	TUI     TUICommand     `cmd:"tui" help:"Search for products interactively."`
	Search  SearchCommand  `cmd:"search" help:"Search for products and print the results."`
	Similar SimilarCommand `cmd:"similar" help:"Print products similar to a product."`
	Serve   ServeCommand   `cmd:"serve" help:"Start the product search web UI."`
	Fixture FixtureCommand `cmd:"fixture" help:"Start a search API that serves products from a YAML file."`
	Version VersionCommand `cmd:"version" help:"Print the version."`
}

func main() {
	// A .env file is optional, values in the environment take precedence.
	_ = godotenv.Load()

	var cli CLI
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	kctx := kong.Parse(&cli, kong.UsageOnError(), kong.BindTo(ctx, (*context.Context)(nil)))
	if err := kctx.Run(); err != nil {
		log := getLogger("error")
		log.Error("error", slog.Any("error", err))
		os.Exit(1)
	}
}

func getLogger(level string) *slog.Logger {
	return newLogger(os.Stderr, level)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	ll := slog.LevelInfo
	switch level {
	case "debug":
		ll = slog.LevelDebug
	case "info":
		ll = slog.LevelInfo
	case "warn":
		ll = slog.LevelWarn
	case "error":
		ll = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ll,
	}))
}
