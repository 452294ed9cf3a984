package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/scout/api/internal/bookmark"
	"github.com/scout/api/internal/cache"
	"github.com/scout/api/internal/config"
	"github.com/scout/api/internal/database"
	"github.com/scout/api/internal/handler"
	"github.com/scout/api/internal/linkup"
	"github.com/scout/api/internal/ratelimit"
	"github.com/scout/api/internal/server"
)

type App struct {
	Config     *config.Config
	DB         *database.DB
	QueryCache *cache.Cache
	Server     *server.Server
	Limiter    *ratelimit.Limiter
}

func New(cfg *config.Config) (*App, error) {
	// Open database
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Initialize the query cache and search client
	queryCache := cache.New(cfg.Cache.TTL, cfg.Cache.MaxEntries)
	searcher := linkup.NewClient(cfg.Search.BaseURL, cfg.Search.APIKey, cfg.Search.Timeout)

	// Initialize repositories
	savedRepo := bookmark.NewRepository(db.DB)

	h := handler.New(handler.Dependencies{
		Searcher: searcher,
		Cache:    queryCache,
		Saved:    savedRepo,
	})

	// Build rate limiter (nil if disabled)
	var limiter *ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimit.NewLimiter([]ratelimit.Rule{
			{Method: http.MethodGet, Path: "/api/events", Limit: cfg.RateLimit.Events.Limit, Window: cfg.RateLimit.Events.Window},
		})
	}

	router := server.NewRouter(h, limiter, cfg.Server.AllowedOrigins)

	tlsOpts := server.TLSOptions{
		Mode:     cfg.Server.TLS.Mode,
		CertFile: cfg.Server.TLS.CertFile,
		KeyFile:  cfg.Server.TLS.KeyFile,
		Domain:   cfg.Server.TLS.Auto.Domain,
		Email:    cfg.Server.TLS.Auto.Email,
		CacheDir: cfg.Server.TLS.Auto.CacheDir,
	}

	srv := server.New(cfg.Server.Host, cfg.Server.Port, router, tlsOpts)

	return &App{
		Config:     cfg,
		DB:         db,
		QueryCache: queryCache,
		Server:     srv,
		Limiter:    limiter,
	}, nil
}

func (a *App) Start(ctx context.Context) error {
	// Start query cache sweep
	go func() {
		ticker := time.NewTicker(a.Config.Cache.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := a.QueryCache.Sweep(); removed > 0 {
					slog.Debug("swept query cache", "removed", removed)
				}
			}
		}
	}()

	// Start rate limiter cleanup
	if a.Limiter != nil {
		go func() {
			ticker := time.NewTicker(10 * time.Minute)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					a.Limiter.Cleanup()
				}
			}
		}()
	}

	slog.Info("starting scout backend",
		"addr", a.Server.Addr(),
		"database", a.Config.Database.Path,
		"search_api", a.Config.Search.BaseURL,
		"tls", a.Server.TLSMode(),
	)

	return a.Server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Server.Shutdown(ctx); err != nil {
		return err
	}
	return a.DB.Close()
}
