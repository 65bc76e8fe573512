package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/darabcement/portal/config"
	"github.com/darabcement/portal/internal/app"
	"github.com/darabcement/portal/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "enable debug mode")
	cfg      config.Config
	lg       *slog.Logger
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	ctx := context.Background()

	if err := db.RunMigrations(ctx, cfg.Database.URL); err != nil {
		exitOnError(err)
	}

	opt, err := pg.ParseURL(cfg.Database.URL)
	if err != nil {
		exitOnError(err)
	}
	if cfg.Database.PoolSize > 0 {
		opt.PoolSize = cfg.Database.PoolSize
	}
	if cfg.Database.MaxConnLifetime > 0 {
		opt.MaxConnAge = cfg.Database.MaxConnLifetime.Std()
	}

	dbConn := pg.Connect(opt)
	if err := dbConn.Ping(ctx); err != nil {
		dbConn.Close()
		exitOnError(err)
	}

	service, err := app.New(&cfg, dbConn, lg)
	if err != nil {
		dbConn.Close()
		exitOnError(err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx, cfg.App.Port)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
