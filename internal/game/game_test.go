package game

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/pixil98/go-clicker/internal/storage"
	"github.com/pixil98/go-testutil"
)

func newTestGame(t *testing.T, initial State, opts ...GameOpt) (*Game, *storage.MemoryStore[State]) {
	t.Helper()

	saves := storage.NewMemoryStore[State]()
	store := NewStore(initial, WithStorage(saves, DefaultSlot))
	return NewGame(store, opts...), saves
}

func TestGame_Click(t *testing.T) {
	g, saves := newTestGame(t, DefaultState())

	st := g.Click(context.Background())
	testutil.AssertEqual(t, "score", st.CurrentScore, 31.0)

	saved, err := saves.Load(DefaultSlot)
	if err != nil {
		t.Fatalf("expected click to be saved: %v", err)
	}
	testutil.AssertEqual(t, "saved score", saved.CurrentScore, 31.0)
}

func TestGame_Buy(t *testing.T) {
	tests := map[string]struct {
		saveOnPurchase bool
		item           Item
		expBought      bool
		expScore       float64
		expSaved       bool
	}{
		"bought and saved": {
			saveOnPurchase: true,
			item:           bash,
			expBought:      true,
			expScore:       20,
			expSaved:       true,
		},
		"bought without saving": {
			saveOnPurchase: false,
			item:           bash,
			expBought:      true,
			expScore:       20,
		},
		"cannot afford": {
			saveOnPurchase: true,
			item:           vim,
			expScore:       30,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, saves := newTestGame(t, DefaultState(), WithSaveOnPurchase(tt.saveOnPurchase))

			st, bought := g.Buy(context.Background(), tt.item)

			testutil.AssertEqual(t, "bought", bought, tt.expBought)
			testutil.AssertEqual(t, "score", st.CurrentScore, tt.expScore)

			_, err := saves.Load(DefaultSlot)
			testutil.AssertEqual(t, "saved", err == nil, tt.expSaved)
		})
	}
}

func TestGame_SetCatalog(t *testing.T) {
	g, saves := newTestGame(t, DefaultState())

	st := g.SetCatalog(context.Background(), []Item{bash, git, vim})

	testutil.AssertEqual(t, "available", len(st.AvailableItems), 3)
	if _, err := saves.Load(DefaultSlot); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("catalog load should not be saved, got %v", err)
	}
}

func TestGame_Tick(t *testing.T) {
	tests := map[string]struct {
		owned    []Item
		expScore float64
		expSaved bool
	}{
		"nothing owned is a no-op": {
			owned:    []Item{},
			expScore: 30,
		},
		"sum of owned items": {
			owned:    []Item{{Name: "Git", Price: 100, IncomeRate: 0.5}, {Name: "React", Price: 50000, IncomeRate: 75}},
			expScore: 105.5,
			expSaved: true,
		},
		"owned items that earn nothing": {
			owned:    []Item{{Name: "Notepad"}},
			expScore: 30,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g, saves := newTestGame(t, State{CurrentScore: 30, OwnedItems: tt.owned})
			pub := &recordingPublisher{}
			g.store.pub = pub

			if err := g.Tick(context.Background()); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			testutil.AssertEqual(t, "score", g.State().CurrentScore, tt.expScore)
			testutil.AssertEqual(t, "published", len(pub.events) == 1, tt.expSaved)

			_, err := saves.Load(DefaultSlot)
			testutil.AssertEqual(t, "saved", err == nil, tt.expSaved)
		})
	}
}

func TestGame_TickSeesNewPurchases(t *testing.T) {
	ctx := context.Background()
	g, _ := newTestGame(t, State{CurrentScore: 200})
	tool := Item{Name: "Git", Price: 100, IncomeRate: 1.5}
	shell := Item{Name: "Bash", Price: 10, IncomeRate: 0.25}

	if err := g.Tick(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "score before buying", g.State().CurrentScore, 200.0)

	g.Buy(ctx, tool)
	if err := g.Tick(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "score after one tick", g.State().CurrentScore, 101.5)

	g.Buy(ctx, shell)
	if err := g.Tick(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := State{
		CurrentScore:   93.25,
		OwnedItems:     []Item{tool, shell},
		AvailableItems: []Item{},
	}
	got := g.State()
	got.AvailableItems = []Item{}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, expected %+v", got, want)
	}
}
