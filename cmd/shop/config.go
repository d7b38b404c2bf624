package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pixil98/go-clicker/internal/shop"
)

type config struct {
	Addr            string        `env:"SHOP_ADDR"             envDefault:":7000"`
	ItemsPath       string        `env:"SHOP_ITEMS_PATH"`
	ShutdownTimeout time.Duration `env:"SHOP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

func loadConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// buildServer loads the catalog from ItemsPath, or the built-in items when
// none is configured.
func (c config) buildServer() (*shop.Server, error) {
	catalog := shop.DefaultCatalog()
	if c.ItemsPath != "" {
		var err error
		catalog, err = shop.LoadCatalog(c.ItemsPath)
		if err != nil {
			return nil, err
		}
	} else {
		slog.Info("no SHOP_ITEMS_PATH set, serving built-in items")
	}

	slog.Info("catalog ready", "items", catalog.Len())

	return shop.NewServer(c.Addr, shop.NewHandler(catalog), shop.WithShutdownTimeout(c.ShutdownTimeout)), nil
}
