package shop

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pixil98/go-clicker/internal/storage"
	"github.com/pixil98/go-errors"
)

// Catalog is the fixed list of items the shop sells, ordered by id.
type Catalog struct {
	items []Item
}

// NewCatalog builds a catalog from loaded item assets. Item ids and names
// must be unique.
func NewCatalog(items map[storage.Identifier]*Item) (*Catalog, error) {
	el := errors.NewErrorList()

	ids := map[int]storage.Identifier{}
	names := map[string]storage.Identifier{}
	c := &Catalog{}

	for key, item := range items {
		if other, ok := ids[item.ID]; ok {
			el.Add(fmt.Errorf("%s: id %d already used by %s", key, item.ID, other))
			continue
		}
		if other, ok := names[strings.ToLower(item.Name)]; ok {
			el.Add(fmt.Errorf("%s: name %q already used by %s", key, item.Name, other))
			continue
		}
		ids[item.ID] = key
		names[strings.ToLower(item.Name)] = key
		c.items = append(c.items, *item)
	}

	if err := el.Err(); err != nil {
		return nil, err
	}

	slices.SortFunc(c.items, func(a, b Item) int {
		return a.ID - b.ID
	})

	return c, nil
}

// DefaultCatalog is served when no item assets are configured.
func DefaultCatalog() *Catalog {
	return &Catalog{
		items: []Item{
			{ID: 1, Name: "Bash", Price: 10, LinesPerMillisecond: 0.1},
			{ID: 2, Name: "Git", Price: 100, LinesPerMillisecond: 1.2},
			{ID: 3, Name: "Javascript", Price: 10000, LinesPerMillisecond: 14},
			{ID: 4, Name: "React", Price: 50000, LinesPerMillisecond: 75},
			{ID: 5, Name: "Vim", Price: 1000000, LinesPerMillisecond: 10000},
		},
	}
}

// LoadCatalog reads every item asset under path.
func LoadCatalog(path string) (*Catalog, error) {
	st, err := storage.NewAssetStore[*Item](path)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	return NewCatalog(st.GetAll())
}

func (c *Catalog) Listings() []Listing {
	out := make([]Listing, 0, len(c.items))
	for i := range c.items {
		out = append(out, c.items[i].Listing())
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.items)
}
