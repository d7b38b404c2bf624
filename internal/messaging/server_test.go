package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pixil98/go-testutil"
)

func startServer(t *testing.T) *NatsServer {
	t.Helper()

	s, err := NewNatsServer(WithStartTimeout(5 * time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("stopping nats server: %v", err)
		}
	})

	deadline := time.After(5 * time.Second)
	for {
		if err := s.Flush(); err == nil {
			return s
		}
		select {
		case <-deadline:
			t.Fatal("nats server did not start")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestNewNatsServer_Options(t *testing.T) {
	s, err := NewNatsServer(WithHost("0.0.0.0"), WithPort(4333), WithStartTimeout(time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "host", s.host, "0.0.0.0")
	testutil.AssertEqual(t, "port", s.port, 4333)
	testutil.AssertEqual(t, "timeout", s.startupTimeout, time.Second)
}

func TestNatsServer_NotStarted(t *testing.T) {
	s, err := NewNatsServer()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Publish("clicker.state", []byte("{}")); !errors.Is(err, ErrNotStarted) {
		t.Errorf("publish: expected ErrNotStarted, got %v", err)
	}
	if _, err := s.Subscribe("clicker.state", func([]byte) {}); !errors.Is(err, ErrNotStarted) {
		t.Errorf("subscribe: expected ErrNotStarted, got %v", err)
	}
}

func TestNatsServer_PublishSubscribe(t *testing.T) {
	s := startServer(t)

	received := make(chan string, 4)
	unsubscribe, err := s.Subscribe("clicker.state", func(data []byte) {
		received <- string(data)
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Publish("clicker.state", []byte("first")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case msg := <-received:
		testutil.AssertEqual(t, "message", msg, "first")
	case <-time.After(5 * time.Second):
		t.Fatal("message never arrived")
	}

	unsubscribe()
	if err := s.Publish("clicker.state", []byte("second")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case msg := <-received:
		t.Errorf("received %q after unsubscribing", msg)
	case <-time.After(50 * time.Millisecond):
	}
}
