package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"backend/internal/api"
	"backend/internal/config"
	"backend/internal/engine"
)

func main() {
	cfg := config.FromEnv()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	// The API goes live immediately; data routes answer 503 until the
	// first load finishes in the background.
	store := engine.NewStore(cfg.DataFile)
	h := api.NewHandler(store)
	h.RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		t0 := time.Now()
		if err := store.Load(); err != nil {
			log.Printf("initial load failed: %v", err)
			return
		}
		log.Printf("initial load complete in %v", time.Since(t0))

		if cfg.WatchData {
			if err := store.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("dataset watcher stopped: %v", err)
			}
		}
	}()

	go func() {
		log.Printf("server ready on %s (data loading in background from %s)", cfg.ListenAddr, cfg.DataFile)
		if err := e.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
