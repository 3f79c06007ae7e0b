package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/1129kyoto/sitecontent/internal/cms"
	"github.com/1129kyoto/sitecontent/internal/config"
	http_controllers "github.com/1129kyoto/sitecontent/internal/http"
	"github.com/1129kyoto/sitecontent/internal/scheduler"
	"github.com/1129kyoto/sitecontent/internal/site"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// Serve runs the HTTP server until ctx is cancelled, then shuts it down
// within the configured timeout.
func Serve(ctx context.Context, handler http.Handler, cfg *config.Config, logger *zap.Logger, onShutdown ShutdownFunc) error {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			listenErr <- err
		}
		close(listenErr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down server", zap.Duration("timeout", timeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background work first so nothing refreshes mid-shutdown
	if onShutdown != nil {
		onShutdown(shutdownCtx)
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-listenErr

	logger.Info("server exiting")
	return nil
}

// Run serves the rendered site content until SIGINT or SIGTERM.
func Run(ctx context.Context, cfg *config.Config, version string, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("starting site content server", zap.String("version", version))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := cms.NewClient(cfg.CMS, logger)
	cache := site.NewCache(site.NewLoader(client, logger), logger)

	refresher := scheduler.NewContentRefreshScheduler(cache, cfg.Refresh.Schedule, logger)

	// An unreachable CMS at boot is not fatal: the scheduler retries and
	// content routes answer 503 until a load succeeds.
	if err := refresher.RunNow(ctx); err != nil {
		logger.Warn("initial content load failed", zap.Error(err))
	}

	if err := refresher.Start(ctx); err != nil {
		return err
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Content: cache,
		SiteURL: cfg.Site.URL,
		Version: version,
		Logger:  logger,
	})

	return Serve(ctx, router, cfg, logger, func(context.Context) {
		refresher.Stop()
	})
}
