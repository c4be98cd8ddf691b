package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/qyinm/folio/config"
	"github.com/qyinm/folio/mcpsrv"
)

var version = "dev"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := mcpsrv.LoadConfig()
	if err != nil {
		logger.Error("load server config", "err", err)
		os.Exit(1)
	}
	appCfg, err := config.Load()
	if err != nil {
		logger.Error("load catalog config", "err", err)
		os.Exit(1)
	}

	source := appCfg.Source()
	server := mcpsrv.NewServer(source, version, &mcpsrv.ServerOptions{
		EnableSearch: cfg.EnableSearch,
		EnableAdmin:  cfg.EnableAdmin && cfg.APIKey != "",
		APIKey:       cfg.APIKey,
	})

	if mcpsrv.StartCacheJanitor(ctx, source, cfg.CacheClearInterval, logger) {
		logger.Info("cache janitor started", "interval", cfg.CacheClearInterval)
	}

	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mcpsrv.NewMux(server, cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("folio-mcp listening", "addr", httpServer.Addr, "version", version)
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
}
