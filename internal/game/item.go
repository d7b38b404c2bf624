package game

import "strings"

// Item is a purchasable upgrade. Items are values and are never modified
// after they are defined.
type Item struct {
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	IncomeRate float64 `json:"incomeRate"`
}

// Is reports whether name refers to this item, ignoring case.
func (i Item) Is(name string) bool {
	return strings.EqualFold(i.Name, strings.TrimSpace(name))
}
