package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/healthguard/internal/buildinfo"
	"github.com/dmitrijs2005/healthguard/internal/client/cli"
	"github.com/dmitrijs2005/healthguard/internal/client/config"
	"github.com/dmitrijs2005/healthguard/internal/directory"
	"github.com/dmitrijs2005/healthguard/internal/filex"
	"github.com/dmitrijs2005/healthguard/internal/logging"
	"github.com/dmitrijs2005/healthguard/internal/netx"
	"github.com/dmitrijs2005/healthguard/internal/notify"
	"github.com/dmitrijs2005/healthguard/internal/session"
	"github.com/dmitrijs2005/healthguard/internal/store"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return err
	}
	log := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if err := filex.EnsureParentDir(cfg.DatabasePath); err != nil {
		return err
	}
	db, err := store.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	dir, closeDir, err := openDirectory(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDir()

	var codec session.Codec = session.JSONCodec{}
	if cfg.SigningSecret != "" {
		codec = session.NewSignedCodec(cfg.SigningSecret)
	}

	if cfg.MetricsAddr != "" {
		ms, err := netx.ServeMetrics(ctx, cfg.MetricsAddr, log)
		if err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = ms.Shutdown(ctx)
		}()
	}

	bus := notify.NewBus(64)
	sessions := session.NewManager(dir, store.NewSQLiteRepository(db), log,
		session.WithCodec(codec),
		session.WithNotifier(bus),
		session.WithNavigator(bus),
	)

	app := cli.NewApp(cli.Deps{
		Sessions: sessions,
		Bus:      bus,
		Log:      log,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
	sessions.Restore(ctx)

	app.Run(ctx)
	return nil
}

// openDirectory returns the Postgres directory when a DSN is configured and
// the built-in one otherwise.
func openDirectory(ctx context.Context, cfg *config.Config, log logging.Logger) (directory.Directory, func(), error) {
	if cfg.DirectoryDSN == "" {
		log.Debug(ctx, "using built-in credential directory")
		return directory.Default(), func() {}, nil
	}

	pg, err := directory.OpenPostgres(ctx, cfg.DirectoryDSN, cfg.SeedDirectory)
	if err != nil {
		return nil, nil, err
	}
	log.Info(ctx, "using postgres credential directory", "seeded", cfg.SeedDirectory)
	return directory.NewPostgresDirectory(pg), func() { closeDB(ctx, pg, log) }, nil
}

func closeDB(ctx context.Context, db *sql.DB, log logging.Logger) {
	if err := db.Close(); err != nil {
		log.Warn(ctx, "close directory database", "error", err)
	}
}
