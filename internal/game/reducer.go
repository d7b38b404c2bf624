package game

// Reduce returns the state that results from applying a to s. It never
// modifies s.
func Reduce(s State, a Action) State {
	next, _ := reduce(s, a)
	return next
}

// reduce also reports whether the action changed anything.
func reduce(s State, a Action) (State, bool) {
	switch a := a.(type) {
	case IncrementScore:
		if a.Amount == 0 {
			return s.Clone(), false
		}
		next := s.Clone()
		next.CurrentScore += a.Amount
		return next, true

	case BuyItem:
		if !s.CanAfford(a.Item) {
			return s.Clone(), false
		}
		next := s.Clone()
		next.CurrentScore -= a.Item.Price
		next.OwnedItems = append(next.OwnedItems, a.Item)
		return next, true

	case SetAvailableItems:
		next := s.Clone()
		next.AvailableItems = cloneItems(a.Items)
		return next, true

	default:
		return s.Clone(), false
	}
}
