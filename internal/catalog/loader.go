package catalog

import (
	"context"
	"log/slog"

	"github.com/pixil98/go-clicker/internal/game"
)

// Fetcher returns the current list of purchasable items.
type Fetcher interface {
	FetchItems(ctx context.Context) ([]game.Item, error)
}

// Loader fills the game's catalog once at startup.
type Loader struct {
	fetcher Fetcher
	game    *game.Game
}

func NewLoader(f Fetcher, g *game.Game) *Loader {
	return &Loader{
		fetcher: f,
		game:    g,
	}
}

// Start loads the catalog and then waits for shutdown. A failed fetch is
// logged and leaves the catalog as it was.
func (l *Loader) Start(ctx context.Context) error {
	l.Load(ctx)

	<-ctx.Done()
	return nil
}

// Load fetches the items and hands them to the game. It reports whether the
// catalog was replaced.
func (l *Loader) Load(ctx context.Context) bool {
	items, err := l.fetcher.FetchItems(ctx)
	if err != nil {
		slog.WarnContext(ctx, "loading catalog", "error", err)
		return false
	}

	l.game.SetCatalog(ctx, items)
	slog.InfoContext(ctx, "catalog loaded", "items", len(items))
	return true
}
