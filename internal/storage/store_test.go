package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pixil98/go-testutil"
)

type record struct {
	Score float64  `json:"score"`
	Tags  []string `json:"tags"`
}

func TestNewFileStore(t *testing.T) {
	tests := map[string]struct {
		path   func(t *testing.T) string
		expErr string
	}{
		"existing directory": {
			path: func(t *testing.T) string { return t.TempDir() },
		},
		"missing directory is created": {
			path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "saves", "nested") },
		},
		"path is a file": {
			path: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "file")
				if err := os.WriteFile(p, nil, 0644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
				return p
			},
			expErr: "is not a directory",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := tt.path(t)
			store, err := NewFileStore[record](path)

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertEqual(t, "path", store.path, path)

			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				t.Errorf("expected directory at %s", path)
			}
		})
	}
}

func TestFileStore_SaveLoad(t *testing.T) {
	store, err := NewFileStore[record](t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	want := record{Score: 12.5, Tags: []string{"a", "b"}}
	if err := store.Save("gamestate", want); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load("gamestate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, expected %+v", got, want)
	}

	if _, err := os.Stat(store.filePath("gamestate") + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected temp file to be renamed away")
	}
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	store, err := NewFileStore[record](t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	if err := store.Save("gamestate", record{Score: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save("gamestate", record{Score: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load("gamestate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "score", got.Score, 2.0)
}

func TestFileStore_LoadErrors(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore[record](dir)
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	_, err = store.Load("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"score":`), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	_, err = store.Load("broken")
	testutil.AssertErrorContains(t, err, "unmarshalling broken")
}

func TestFileStore_filePath(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewFileStore[record](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}

	testutil.AssertEqual(t, "file path", store.filePath("gamestate"), filepath.Join(tmpDir, "gamestate.json"))
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore[record]()

	_, err := store.Load("gamestate")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	saved := record{Score: 3, Tags: []string{"x"}}
	if err := store.Save("gamestate", saved); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// mutating the saved value must not leak into the store
	saved.Tags[0] = "changed"

	got, err := store.Load("gamestate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, record{Score: 3, Tags: []string{"x"}}) {
		t.Errorf("got %+v", got)
	}

	store.SetRaw("gamestate", []byte("not json"))
	_, err = store.Load("gamestate")
	testutil.AssertErrorContains(t, err, "unmarshalling gamestate")
}
