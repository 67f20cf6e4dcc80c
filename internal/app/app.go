package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/lexidrill/lexidrill-backend/internal/adapter/provider/dispatch"
	"github.com/lexidrill/lexidrill-backend/internal/adapter/settingsfile"
	"github.com/lexidrill/lexidrill-backend/internal/config"
	practicesvc "github.com/lexidrill/lexidrill-backend/internal/service/practice"
	settingssvc "github.com/lexidrill/lexidrill-backend/internal/service/settings"
	"github.com/lexidrill/lexidrill-backend/internal/transport/middleware"
	"github.com/lexidrill/lexidrill-backend/internal/transport/rest"
)

// Run wires the application together and blocks until ctx is cancelled
// or the HTTP server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("app: load config: %w", err)
	}

	log := NewLogger(cfg.Log)
	log.Info("starting", "version", Version, "build_time", BuildTime)

	store := settingsfile.NewStore(cfg.Settings.Path, log)
	settingsService, err := settingssvc.NewService(log, store, cfg.DefaultSettings())
	if err != nil {
		return fmt.Errorf("app: init settings: %w", err)
	}

	dispatcher := dispatch.New(cfg.LLM.APIKey, log)
	practiceService := practicesvc.NewService(log, dispatcher, settingsService, cfg.Practice.GradeLevel)

	practiceHandler := rest.NewPracticeHandler(log, practiceService)
	settingsHandler := rest.NewSettingsHandler(log, settingsService)
	healthHandler := rest.NewHealthHandler(Version)

	var limit middleware.Middleware
	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
		defer limiter.Stop()
		limit = limiter.Limit()
	}

	mux := rest.NewRouter(practiceHandler, settingsHandler, healthHandler, limit)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(log),
		middleware.Logger(log),
		middleware.CORS(cfg.CORS),
	)(mux)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("app: http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("app: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
