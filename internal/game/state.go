package game

import (
	"bytes"
	"encoding/json"
	"errors"
)

var errNoScore = errors.New("state has no currentScore")

// DefaultScore is the score a brand new game starts with.
const DefaultScore = 30

// State is the whole of a game: the score, what has been bought, and what
// is for sale.
type State struct {
	CurrentScore   float64 `json:"currentScore"`
	OwnedItems     []Item  `json:"ownedItems"`
	AvailableItems []Item  `json:"availableItems"`
}

// DefaultState returns the state a game starts from when nothing was saved.
func DefaultState() State {
	return State{
		CurrentScore:   DefaultScore,
		OwnedItems:     []Item{},
		AvailableItems: []Item{},
	}
}

// UnmarshalJSON rejects a null or score-less state instead of decoding it
// into a zero score.
func (s *State) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return errNoScore
	}

	var raw struct {
		CurrentScore   *float64 `json:"currentScore"`
		OwnedItems     []Item   `json:"ownedItems"`
		AvailableItems []Item   `json:"availableItems"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.CurrentScore == nil {
		return errNoScore
	}

	*s = State{
		CurrentScore:   *raw.CurrentScore,
		OwnedItems:     raw.OwnedItems,
		AvailableItems: raw.AvailableItems,
	}
	return nil
}

// Clone returns a copy of s that shares no backing arrays with it.
func (s State) Clone() State {
	s.OwnedItems = cloneItems(s.OwnedItems)
	s.AvailableItems = cloneItems(s.AvailableItems)
	return s
}

// Income is the score produced per tick by everything owned.
func (s State) Income() float64 {
	var total float64
	for _, item := range s.OwnedItems {
		total += item.IncomeRate
	}
	return total
}

func (s State) CanAfford(item Item) bool {
	return item.Price <= s.CurrentScore
}

// FindAvailable looks up a catalog item by name, ignoring case.
func (s State) FindAvailable(name string) (Item, bool) {
	for _, item := range s.AvailableItems {
		if item.Is(name) {
			return item, true
		}
	}
	return Item{}, false
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
