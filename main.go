package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"roast/cmd"

	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	// .env is loaded by autoload; .env.local is optional.
	_ = godotenv.Load(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewCommand(version, os.Stdout).Run(ctx, os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
