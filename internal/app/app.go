package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/microcosm-cc/bluemonday"

	"github.com/darabcement/portal/config"
	"github.com/darabcement/portal/internal/content"
	"github.com/darabcement/portal/internal/db"
	"github.com/darabcement/portal/internal/rest"
	"github.com/darabcement/portal/internal/web"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	repo := db.New(dbConnect)

	renderer, err := web.NewRenderer(cfg.ContentAPI.AssetURL(), bluemonday.UGCPolicy())
	if err != nil {
		return nil, fmt.Errorf("init renderer: %w", err)
	}

	resolver := content.NewResolver(
		content.NewClient(cfg.ContentAPI, logger),
		cfg.ContentAPI.Limit(),
	)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(requestLogger(logger))
	e.StaticFS("/static", web.StaticFS())

	web.NewSiteHandler(resolver, logger).RegisterRoutes(e)

	auth := web.NewAuth(cfg.Admin, logger)
	auth.RegisterRoutes(e)

	admin := e.Group("/admin", auth.Middleware())
	web.NewAdminHandler(repo, logger).RegisterRoutes(admin)

	api := e.Group("/api", auth.Middleware())
	rest.NewBlogHandler(repo, logger).RegisterRoutes(api)

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   e,
		Config: cfg,
	}, nil
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			log.Info("HTTP request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.RealIP(),
			)

			return err
		}
	}
}
