package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "github.com/couchcryptid/stormwater-assessment/internal/adapter/http"
	"github.com/couchcryptid/stormwater-assessment/internal/config"
	"github.com/couchcryptid/stormwater-assessment/internal/domain"
	"github.com/couchcryptid/stormwater-assessment/internal/observability"
	"github.com/couchcryptid/stormwater-assessment/internal/render"
	"github.com/couchcryptid/stormwater-assessment/internal/session"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
)

const sweepInterval = time.Minute

func main() {
	ui := flag.Bool("ui", false, "open the page in an embedded window (webview builds only)")
	flag.Parse()

	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	cat, err := domain.LoadCatalogue(cfg.CataloguePath)
	if err != nil {
		logger.Error("failed to load catalogue", "path", cfg.CataloguePath, "error", err)
		os.Exit(1)
	}
	logger.Info("catalogue loaded", "features", len(cat.Features), "conditions", len(cat.Conditions))

	renderer, err := render.New()
	if err != nil {
		logger.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	sessions := session.NewManager(cat, cfg.SessionMaxCount, cfg.SessionIdleTimeout, clockwork.NewRealClock(), metrics, logger)

	srv := httpadapter.NewServer(cfg.HTTPAddr, httpadapter.Deps{
		Catalogue:    cat,
		Sessions:     sessions,
		Renderer:     renderer,
		Metrics:      metrics,
		Logger:       logger,
		CookieSecure: cfg.SessionCookieSecure,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	// Drop idle sessions in the background.
	go sessions.Run(ctx, sweepInterval)

	if *ui {
		// The window owns the process lifetime; closing it shuts down.
		if err := runUI(pageURL(cfg.HTTPAddr)); err != nil {
			logger.Error("embedded ui failed", "error", err)
		}
		stop()
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// pageURL turns a listen address into a URL the local window can open.
func pageURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + "/"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}
