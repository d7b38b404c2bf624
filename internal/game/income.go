package game

import "context"

// Tick pays out one interval of passive income. The owned items are read
// from the store at the moment of the tick, so purchases made since the last
// tick are always counted. Nothing is dispatched when nothing is owned.
func (g *Game) Tick(ctx context.Context) error {
	st := g.store.State()
	if len(st.OwnedItems) == 0 {
		return nil
	}

	g.store.DispatchAndSave(ctx, IncrementScore{Amount: st.Income()})
	return nil
}
