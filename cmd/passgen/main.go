package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/passgen/passgen-go/internal/clipboard"
	"github.com/passgen/passgen-go/internal/command"
	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/display"
	"github.com/passgen/passgen-go/internal/handler"
	"github.com/passgen/passgen-go/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Debug("config loaded", "env", cfg.Env, "default_length", cfg.DefaultLength)

	d := display.New(os.Stdout, display.Options{
		Animate: cfg.Animate && term.IsTerminal(int(os.Stdout.Fd())),
		Version: command.Version,
	})

	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT)
	guard := handler.NewInterruptGuard(d)
	go guard.Watch(ctx, sigs, os.Exit)

	// Prompts read in raw mode, so Ctrl+C reaches them as a key instead of SIGINT.
	prompter := handler.NewPrompter(d, os.Stdin)
	prompter.OnInterrupt(func() {
		if guard.Interrupt() {
			os.Exit(1)
		}
	})

	app := &command.App{
		Config:    cfg,
		Service:   service.NewGeneratorService(),
		Display:   d,
		Clipboard: clipboard.NewSystem(),
		Prompter:  prompter,
	}

	code := app.Execute(os.Args[1:])
	cancel()
	os.Exit(code)
}
