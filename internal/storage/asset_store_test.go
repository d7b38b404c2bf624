package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
)

func writeAsset(t *testing.T, dir string, file string, a Asset[*stubSpec]) {
	t.Helper()

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("failed to marshal test asset: %v", err)
	}
	err = os.WriteFile(filepath.Join(dir, file), data, 0644)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
}

func TestNewAssetStore(t *testing.T) {
	tmpDir := t.TempDir()

	writeAsset(t, tmpDir, "bash.json", Asset[*stubSpec]{Version: 1, Identifier: "bash", Spec: &stubSpec{Name: "Bash", Value: 1}})
	writeAsset(t, tmpDir, "git.json", Asset[*stubSpec]{Version: 1, Identifier: "git", Spec: &stubSpec{Name: "Git", Value: 2}})

	store, err := NewAssetStore[*stubSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "record count", len(store.GetAll()), 2)

	bash := store.Get("bash")
	if bash == nil {
		t.Fatal("expected bash to be loaded")
	}
	testutil.AssertEqual(t, "bash name", bash.Name, "Bash")
	testutil.AssertEqual(t, "bash value", bash.Value, 1)

	if store.Get("emacs") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestNewAssetStore_Errors(t *testing.T) {
	tests := map[string]struct {
		setup  func(t *testing.T, dir string)
		expErr string
	}{
		"invalid json": {
			setup: func(t *testing.T, dir string) {
				err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{invalid json`), 0644)
				if err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			},
			expErr: "unmarshalling asset",
		},
		"validation failure": {
			setup: func(t *testing.T, dir string) {
				writeAsset(t, dir, "bash.json", Asset[*stubSpec]{Identifier: "bash", Spec: &stubSpec{}})
			},
			expErr: "version must be set",
		},
		"duplicate key across directories": {
			setup: func(t *testing.T, dir string) {
				sub := filepath.Join(dir, "more")
				if err := os.Mkdir(sub, 0755); err != nil {
					t.Fatalf("failed to create subdir: %v", err)
				}
				a := Asset[*stubSpec]{Version: 1, Identifier: "vim", Spec: &stubSpec{}}
				writeAsset(t, dir, "vim.json", a)
				writeAsset(t, sub, "vim-again.json", a)
			},
			expErr: "duplicate key detected: vim",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			tmpDir := t.TempDir()
			tt.setup(t, tmpDir)

			_, err := NewAssetStore[*stubSpec](tmpDir)
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestNewAssetStore_MissingDirectory(t *testing.T) {
	_, err := NewAssetStore[*stubSpec]("/nonexistent/path/that/does/not/exist")
	if err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestNewAssetStore_IgnoresNonJSONFiles(t *testing.T) {
	tmpDir := t.TempDir()

	writeAsset(t, tmpDir, "bash.json", Asset[*stubSpec]{Version: 1, Identifier: "bash", Spec: &stubSpec{}})
	if err := os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("ignore me"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	store, err := NewAssetStore[*stubSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "record count", len(store.GetAll()), 1)
}

func TestAssetStore_GetAllReturnsCopy(t *testing.T) {
	tmpDir := t.TempDir()
	writeAsset(t, tmpDir, "bash.json", Asset[*stubSpec]{Version: 1, Identifier: "bash", Spec: &stubSpec{}})

	store, err := NewAssetStore[*stubSpec](tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := store.GetAll()
	delete(all, "bash")

	testutil.AssertEqual(t, "record count", len(store.GetAll()), 1)
}
