package game

import "context"

// Game is what players and background workers act on. It decides which
// changes are saved.
type Game struct {
	store          *Store
	saveOnPurchase bool
}

type GameOpt func(*Game)

// WithSaveOnPurchase controls whether a purchase is saved immediately.
// Clicks and income are always saved.
func WithSaveOnPurchase(save bool) GameOpt {
	return func(g *Game) {
		g.saveOnPurchase = save
	}
}

func NewGame(store *Store, opts ...GameOpt) *Game {
	g := &Game{
		store:          store,
		saveOnPurchase: true,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Game) State() State {
	return g.store.State()
}

// Click adds one to the score.
func (g *Game) Click(ctx context.Context) State {
	st, _ := g.store.DispatchAndSave(ctx, Click())
	return st
}

// Buy purchases item and reports whether the purchase went through.
func (g *Game) Buy(ctx context.Context, item Item) (State, bool) {
	if g.saveOnPurchase {
		return g.store.DispatchAndSave(ctx, BuyItem{Item: item})
	}
	return g.store.Dispatch(ctx, BuyItem{Item: item})
}

// SetCatalog replaces what is for sale.
func (g *Game) SetCatalog(ctx context.Context, items []Item) State {
	st, _ := g.store.Dispatch(ctx, SetAvailableItems{Items: items})
	return st
}
