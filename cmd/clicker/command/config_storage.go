package command

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/pixil98/go-clicker/internal/game"
	"github.com/pixil98/go-clicker/internal/storage"
	"github.com/pixil98/go-errors"
)

type StorageConfig struct {
	// Path is the save directory. Without it the game is kept in memory only.
	Path           string `json:"path"`
	Slot           string `json:"slot"`
	SaveOnPurchase *bool  `json:"save_on_purchase,omitempty"`
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()

	if strings.ContainsAny(c.Slot, `/\`) || c.Slot == "." || c.Slot == ".." {
		el.Add(fmt.Errorf("storage slot %q must be a plain name", c.Slot))
	}

	return el.Err()
}

func (c *StorageConfig) slot() string {
	if c.Slot == "" {
		return game.DefaultSlot
	}
	return c.Slot
}

func (c *StorageConfig) saveOnPurchase() bool {
	if c.SaveOnPurchase == nil {
		return true
	}
	return *c.SaveOnPurchase
}

func (c *StorageConfig) BuildStorer() (storage.Storer[game.State], error) {
	if c.Path == "" {
		slog.Warn("no storage path configured, progress will not survive a restart")
		return storage.NewMemoryStore[game.State](), nil
	}

	s, err := storage.NewFileStore[game.State](c.Path)
	if err != nil {
		return nil, fmt.Errorf("creating save store: %w", err)
	}
	return s, nil
}
