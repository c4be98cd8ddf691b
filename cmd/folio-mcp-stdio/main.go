package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/folio/config"
	"github.com/qyinm/folio/mcpsrv"
)

var version = "dev"

func main() {
	// stdout carries the protocol; logs go to stderr.
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
		EnableAdmin:  cfg.EnableAdmin,
		APIKey:       cfg.APIKey,
	})

	mcpsrv.StartCacheJanitor(ctx, source, cfg.CacheClearInterval, logger)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logger.Error("stdio mcp server failed", "err", err)
		os.Exit(1)
	}
}
