package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-clicker/internal/catalog"
	"github.com/pixil98/go-clicker/internal/game"
	"github.com/pixil98/go-errors"
)

const defaultCatalogURL = "http://localhost:7000"

type CatalogConfig struct {
	URL     string `json:"url"`
	Timeout string `json:"timeout"`
}

func (c *CatalogConfig) validate() error {
	el := errors.NewErrorList()

	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			el.Add(fmt.Errorf("parsing catalog timeout: %w", err))
		} else if d <= 0 {
			el.Add(fmt.Errorf("catalog timeout must be positive"))
		}
	}

	if _, err := catalog.NewClient(c.url()); err != nil {
		el.Add(err)
	}

	return el.Err()
}

func (c *CatalogConfig) url() string {
	if c.URL == "" {
		return defaultCatalogURL
	}
	return c.URL
}

func (c *CatalogConfig) BuildLoader(g *game.Game) (*catalog.Loader, error) {
	var opts []catalog.ClientOpt
	if c.Timeout != "" {
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, fmt.Errorf("parsing catalog timeout: %w", err)
		}
		opts = append(opts, catalog.WithTimeout(d))
	}

	client, err := catalog.NewClient(c.url(), opts...)
	if err != nil {
		return nil, err
	}

	return catalog.NewLoader(client, g), nil
}
