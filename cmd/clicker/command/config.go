package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-clicker/internal/driver"
	"github.com/pixil98/go-errors"
)

const minTickInterval = 10 * time.Millisecond

type Config struct {
	TickInterval string           `json:"tick_interval"`
	Listeners    []ListenerConfig `json:"listeners"`
	Storage      StorageConfig    `json:"storage"`
	Catalog      CatalogConfig    `json:"catalog"`
	Nats         NatsConfig       `json:"nats"`
	Console      ConsoleConfig    `json:"console"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.TickInterval != "" {
		d, err := time.ParseDuration(c.TickInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing tick_interval: %w", err))
		} else if d < minTickInterval {
			el.Add(fmt.Errorf("tick_interval must be at least %s", minTickInterval))
		}
	}

	for i, l := range c.Listeners {
		err := l.validate()
		if err != nil {
			el.Add(fmt.Errorf("listener %d: %w", i, err))
		}
	}

	el.Add(c.Storage.validate())
	el.Add(c.Catalog.validate())
	el.Add(c.Nats.validate())
	el.Add(c.Console.validate())

	return el.Err()
}

// tickLength is the configured tick interval, or the driver default.
func (c *Config) tickLength() time.Duration {
	if c.TickInterval == "" {
		return driver.DefaultTickLength
	}
	d, err := time.ParseDuration(c.TickInterval)
	if err != nil {
		return driver.DefaultTickLength
	}
	return d
}
