package player

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/pixil98/go-clicker/internal/game"
)

// Manager starts a Session for every player connection.
type Manager struct {
	game          *game.Game
	sub           Subscriber
	watchInterval time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

type ManagerOpt func(*Manager)

// WithWatchInterval sets the least time between two watch lines.
func WithWatchInterval(d time.Duration) ManagerOpt {
	return func(m *Manager) {
		m.watchInterval = d
	}
}

func NewManager(g *game.Game, sub Subscriber, opts ...ManagerOpt) *Manager {
	m := &Manager{
		game:          g,
		sub:           sub,
		watchInterval: DefaultWatchInterval,
		sessions:      map[string]*Session{},
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// RunSession plays a session on conn and returns when it ends.
func (m *Manager) RunSession(ctx context.Context, conn io.ReadWriter) error {
	s := newSession(conn, m.game, m.sub, m.watchInterval)

	m.mu.Lock()
	m.sessions[s.Id()] = s
	count := len(m.sessions)
	m.mu.Unlock()

	slog.InfoContext(ctx, "session started", "session", s.Id(), "active", count)

	defer func() {
		m.mu.Lock()
		delete(m.sessions, s.Id())
		m.mu.Unlock()
		slog.InfoContext(ctx, "session ended", "session", s.Id())
	}()

	return s.Play(ctx)
}

// ActiveSessions is the number of sessions currently playing.
func (m *Manager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.sessions)
}
