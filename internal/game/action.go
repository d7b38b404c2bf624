package game

// Action is a request to change the game state. The set of actions is
// closed: only the types in this file implement it.
type Action interface {
	Name() string
	action()
}

// IncrementScore adds Amount to the score. Any amount is accepted,
// including fractional and negative ones.
type IncrementScore struct {
	Amount float64
}

func (IncrementScore) Name() string { return "increment_score" }
func (IncrementScore) action()      {}

// Click is the action for one manual click.
func Click() IncrementScore {
	return IncrementScore{Amount: 1}
}

// BuyItem spends Item.Price to add Item to the owned items. It does nothing
// when the price is more than the current score.
type BuyItem struct {
	Item Item
}

func (BuyItem) Name() string { return "buy_item" }
func (BuyItem) action()      {}

// SetAvailableItems replaces the catalog.
type SetAvailableItems struct {
	Items []Item
}

func (SetAvailableItems) Name() string { return "set_available_items" }
func (SetAvailableItems) action()      {}
