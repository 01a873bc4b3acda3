package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/colegioprofesionales/colegio-cli/internal/client/cli"
	"github.com/colegioprofesionales/colegio-cli/internal/client/config"
	"github.com/colegioprofesionales/colegio-cli/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}
