package shop

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func TestServer_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := NewServer("127.0.0.1:0", NewHandler(DefaultCatalog()), WithShutdownTimeout(time.Second))

	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx)
	}()

	var addr string
	select {
	case a := <-srv.Ready():
		addr = a.String()
	case err := <-done:
		t.Fatalf("server exited early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for server")
	}

	resp, err := http.Get("http://" + addr + ItemsPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var listed []Listing
	if err := json.NewDecoder(resp.Body).Decode(&listed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "status", resp.StatusCode, http.StatusOK)
	testutil.AssertEqual(t, "items", len(listed), 5)

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for shutdown")
	}
}

func TestServer_StartBadAddr(t *testing.T) {
	srv := NewServer("not-an-address", NewHandler(DefaultCatalog()))

	err := srv.Start(context.Background())
	testutil.AssertErrorContains(t, err, "listening on not-an-address")
}
