package command

import (
	"fmt"
	"time"

	"github.com/pixil98/go-clicker/internal/game"
	"github.com/pixil98/go-clicker/internal/player"
	"github.com/pixil98/go-errors"
)

type ConsoleConfig struct {
	// WatchInterval throttles the live score lines of the watch command.
	WatchInterval string `json:"watch_interval"`
}

func (c *ConsoleConfig) validate() error {
	el := errors.NewErrorList()

	if c.WatchInterval != "" {
		_, err := time.ParseDuration(c.WatchInterval)
		if err != nil {
			el.Add(fmt.Errorf("parsing watch_interval: %w", err))
		}
	}

	return el.Err()
}

func (c *ConsoleConfig) BuildPlayerManager(g *game.Game, sub player.Subscriber) (*player.Manager, error) {
	var opts []player.ManagerOpt
	if c.WatchInterval != "" {
		d, err := time.ParseDuration(c.WatchInterval)
		if err != nil {
			return nil, fmt.Errorf("parsing watch_interval: %w", err)
		}
		opts = append(opts, player.WithWatchInterval(d))
	}

	return player.NewManager(g, sub, opts...), nil
}
