package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pixil98/go-clicker/internal/game"
)

const (
	welcomeBanner = "Welcome to git-clicker!\nType 'help' for a list of commands."

	// DefaultWatchInterval is the least time between two watch lines.
	DefaultWatchInterval = time.Second
)

// Subscriber provides the ability to subscribe to message subjects
type Subscriber interface {
	Subscribe(subject string, handler func(data []byte)) (unsubscribe func(), err error)
}

// Session is one player connected to the game.
type Session struct {
	id   string
	conn io.ReadWriter
	game *game.Game
	sub  Subscriber

	watchInterval time.Duration
	msgs          chan string

	mu          sync.Mutex
	unsubscribe func()
	lastWatch   time.Time

	quit bool
}

func newSession(conn io.ReadWriter, g *game.Game, sub Subscriber, watchInterval time.Duration) *Session {
	return &Session{
		id:            uuid.New().String(),
		conn:          conn,
		game:          g,
		sub:           sub,
		watchInterval: watchInterval,
		msgs:          make(chan string, 8),
	}
}

func (s *Session) Id() string {
	return s.id
}

// Play runs the session until the player quits, the connection is lost, or
// ctx is cancelled.
func (s *Session) Play(ctx context.Context) error {
	defer s.unwatch()

	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.conn)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		inputErrChan <- scanner.Err()
		close(inputChan)
	}()

	score, err := renderScore(s.game.State())
	if err != nil {
		return err
	}
	if err := s.writeLine(welcomeBanner + "\n\n" + score); err != nil {
		return err
	}
	if err := s.prompt(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg := <-s.msgs:
			if err := s.writeLine("\n" + msg); err != nil {
				return err
			}
			if err := s.prompt(); err != nil {
				return err
			}

		case line, ok := <-inputChan:
			if !ok {
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			out, err := s.exec(ctx, line)
			if err != nil {
				var userErr *UserError
				if !errors.As(err, &userErr) {
					return fmt.Errorf("command execution failed: %w", err)
				}
				out = userErr.Message
			}

			if out != "" {
				if err := s.writeLine(out); err != nil {
					return err
				}
			}

			if s.quit {
				return nil
			}

			if err := s.prompt(); err != nil {
				return err
			}
		}
	}
}

// exec runs one line of input. An empty line counts as a click.
func (s *Session) exec(ctx context.Context, line string) (string, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		parts = []string{"code"}
	}

	cmd, ok := findCommand(parts[0])
	if !ok {
		return "", NewUserError(fmt.Sprintf("Unknown command %q. Type 'help' for a list of commands.", parts[0]))
	}

	return cmd.run(ctx, s, parts[1:])
}

// watch subscribes the session to state events. Watching again replaces
// the previous subscription.
func (s *Session) watch() error {
	if s.sub == nil {
		return NewUserError("Watching is not available right now.")
	}

	s.unwatch()

	unsubscribe, err := s.sub.Subscribe(game.StateSubject, s.onStateEvent)
	if err != nil {
		slog.Warn("subscribing to state events", "session", s.id, "error", err)
		return NewUserError("Watching is not available right now.")
	}

	s.mu.Lock()
	s.unsubscribe = unsubscribe
	s.mu.Unlock()

	return nil
}

// unwatch cancels the current subscription, reporting whether there was one.
func (s *Session) unwatch() bool {
	s.mu.Lock()
	unsubscribe := s.unsubscribe
	s.unsubscribe = nil
	s.mu.Unlock()

	if unsubscribe == nil {
		return false
	}
	unsubscribe()
	return true
}

func (s *Session) onStateEvent(data []byte) {
	ev, err := game.DecodeEvent(data)
	if err != nil {
		slog.Warn("dropping state event", "session", s.id, "error", err)
		return
	}

	s.mu.Lock()
	if s.unsubscribe == nil || ev.At.Sub(s.lastWatch) < s.watchInterval {
		s.mu.Unlock()
		return
	}
	s.lastWatch = ev.At
	s.mu.Unlock()

	msg, err := renderScore(ev.State)
	if err != nil {
		slog.Warn("rendering state event", "session", s.id, "error", err)
		return
	}

	// Never block the subscription; a slow player just misses updates.
	select {
	case s.msgs <- msg:
	default:
	}
}

func (s *Session) prompt() error {
	_, err := s.conn.Write([]byte("> "))
	return err
}

func (s *Session) writeLine(msg string) error {
	_, err := s.conn.Write([]byte(msg + "\n\n"))
	return err
}
