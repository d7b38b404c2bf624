package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pixil98/go-clicker/internal/game"
)

const (
	DefaultTimeout = 10 * time.Second
	itemsPath      = "/api/shop/items"
)

// shopItem is the shape the shop endpoint serves.
type shopItem struct {
	ID                  int     `json:"id"`
	Name                string  `json:"name"`
	Price               float64 `json:"price"`
	LinesPerMillisecond float64 `json:"linesPerMillisecond"`
}

func (i shopItem) item() game.Item {
	return game.Item{
		Name:       i.Name,
		Price:      i.Price,
		IncomeRate: i.LinesPerMillisecond,
	}
}

// Client fetches the list of purchasable items from a shop endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, opts ...ClientOpt) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("catalog url %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FetchItems requests the catalog once. There is no retry.
func (c *Client) FetchItems(ctx context.Context) ([]game.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+itemsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", itemsPath, err)
	}

	// Ignoring close error - the body has been fully consumed or abandoned
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var listed []shopItem
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		return nil, fmt.Errorf("decoding items: %w", err)
	}

	items := make([]game.Item, 0, len(listed))
	for _, l := range listed {
		items = append(items, l.item())
	}

	return items, nil
}
