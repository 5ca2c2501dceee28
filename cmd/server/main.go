// Package main - Entry point for the marketplace core server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"souq-core/adapters/catalog/hclcat"
	"souq-core/api"
	"souq-core/core/catalog"
	"souq-core/core/quote"
	"souq-core/internal/config"
	"souq-core/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	catalogDir := flag.String("catalog", "", "catalog directory (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	dir := cfg.Catalog.Dir
	if *catalogDir != "" {
		dir = *catalogDir
	}

	// An unreadable catalog dir is not fatal: the quote endpoint still
	// serves inline price_ranges requests.
	registry, err := hclcat.NewLoader(cfg.Catalog.DefaultCurrency).LoadDir(dir)
	if err != nil {
		logging.Warn("starting with empty catalog", zap.String("dir", dir), zap.Error(err))
		registry = catalog.NewRegistry()
	}

	engine := quote.NewEngine(registry, cfg.Catalog.DefaultCurrency)
	server := api.NewServer(version, registry, engine)

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	logging.Info("server listening",
		zap.String("addr", listen),
		zap.Int("products", registry.Len()),
		zap.String("version", version))

	if err := http.ListenAndServe(listen, server); err != nil {
		logging.Error("server exited", zap.Error(err))
		os.Exit(1)
	}
}
