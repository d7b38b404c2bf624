package shop

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Item is the definition of something the shop sells, as stored in an
// asset file.
type Item struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	LinesPerMillisecond float64 `json:"lines_per_millisecond"`
}

func (i *Item) Validate() error {
	if i == nil {
		return fmt.Errorf("spec is required")
	}

	el := errors.NewErrorList()

	if i.ID <= 0 {
		el.Add(fmt.Errorf("item id must be a positive integer"))
	}
	if i.Name == "" {
		el.Add(fmt.Errorf("item name is required"))
	}
	if i.Price < 0 {
		el.Add(fmt.Errorf("item price must not be negative"))
	}
	if i.LinesPerMillisecond < 0 {
		el.Add(fmt.Errorf("item lines_per_millisecond must not be negative"))
	}

	return el.Err()
}

// Listing is the wire form of an item served by the shop endpoint.
type Listing struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	LinesPerMillisecond float64 `json:"linesPerMillisecond"`
}

func (i *Item) Listing() Listing {
	return Listing{
		ID:                  i.ID,
		Name:                i.Name,
		Price:               i.Price,
		LinesPerMillisecond: i.LinesPerMillisecond,
	}
}
