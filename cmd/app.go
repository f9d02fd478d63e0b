package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"roast/internal/catalog"
	"roast/internal/config"
	"roast/internal/db"
	"roast/internal/kv"
	"roast/internal/model"
	"roast/internal/session"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// app is everything one run needs, wired from config and flags.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	session *session.Session

	database *sql.DB
	logFile  *os.File
}

// Close releases the database and log file.
func (a *app) Close() {
	if a.database != nil {
		if err := a.database.Close(); err != nil {
			a.logger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

func loadConfig(cmd *cli.Command) (*config.Config, error) {
	root := cmd.Root()

	dir, err := config.DefaultDir()
	if err != nil {
		return nil, err
	}
	cfg := config.NewDefaultConfig(dir)
	if err := config.Load(config.ExpandHome(root.String("config")), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if p := root.String("db"); p != "" {
		cfg.Storage.Path = config.ExpandHome(p)
	}
	if root.Bool("ephemeral") {
		cfg.Storage.Ephemeral = true
	}
	if paths := root.StringSlice("catalog"); len(paths) > 0 {
		cfg.Catalog.Paths = paths
	}
	if lvl := root.String("log-level"); lvl != "" {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", lvl, err)
		}
	}
	return cfg, cfg.Validate()
}

func openLog(path string) (io.Writer, *os.File) {
	if path == "" {
		return io.Discard, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return io.Discard, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return io.Discard, nil
	}
	return f, f
}

// setup loads config, then opens storage and the catalog in parallel.
// Storage that cannot be opened degrades to in-memory state for this run;
// a catalog that cannot be read fails startup.
func setup(ctx context.Context, cmd *cli.Command) (*app, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	w, logFile := openLog(cfg.App.LogFile)
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	})).With(slog.String("session_id", uuid.NewString()))

	logger.Info("Configuration loaded",
		slog.String("command", cmd.Name),
		slog.String("db_path", cfg.Storage.Path),
		slog.Bool("ephemeral", cfg.Storage.Ephemeral),
		slog.Any("catalog_paths", cfg.Catalog.Paths),
		slog.String("log_level", cfg.App.LogLevel.String()))

	a := &app{cfg: cfg, logger: logger, logFile: logFile}

	var (
		medium kv.Medium
		shops  []model.CoffeeShop
	)
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if cfg.Storage.Ephemeral {
			medium = kv.NewMemory()
			return nil
		}
		database, err := db.Open(cfg.Storage.Path)
		if err != nil {
			logger.Warn("storage unavailable, changes will not be saved",
				slog.String("db_path", cfg.Storage.Path),
				slog.String("error", err.Error()))
			medium = kv.Unavailable{Err: err}
			return nil
		}
		a.database = database
		medium = db.NewKV(database)
		return nil
	})

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		loaded, err := catalog.Load(cfg.Catalog.Paths)
		if err != nil {
			return err
		}
		shops = loaded
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("startup failed", slog.String("error", err.Error()))
		a.Close()
		return nil, err
	}

	a.session = session.New(shops, kv.New(medium, logger), logger)
	return a, nil
}
