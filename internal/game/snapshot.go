package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-clicker/internal/storage"
)

// DefaultSlot is the storage key the game is saved under.
const DefaultSlot = "gamestate"

// LoadState reads the saved game from slot. A missing or unreadable save
// falls back to DefaultState.
func LoadState(ctx context.Context, st storage.Storer[State], slot string) State {
	saved, err := st.Load(slot)
	if errors.Is(err, storage.ErrNotFound) {
		slog.InfoContext(ctx, "no saved game, starting a new one", "slot", slot)
		return DefaultState()
	}
	if err != nil {
		slog.WarnContext(ctx, "saved game is unreadable, starting a new one", "slot", slot, "error", err)
		return DefaultState()
	}

	if saved.OwnedItems == nil {
		saved.OwnedItems = []Item{}
	}
	if saved.AvailableItems == nil {
		saved.AvailableItems = []Item{}
	}

	slog.InfoContext(ctx, "loaded saved game", "slot", slot, "score", saved.CurrentScore, "owned", len(saved.OwnedItems))
	return saved
}

// SaveState writes the whole state to slot.
func SaveState(st storage.Storer[State], slot string, s State) error {
	if err := st.Save(slot, s); err != nil {
		return fmt.Errorf("saving %s: %w", slot, err)
	}
	return nil
}
