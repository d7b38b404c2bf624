package listener

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"

	"golang.org/x/crypto/ssh"
)

type SshListener struct {
	port    uint16
	cm      *ConnectionManager
	hostKey ssh.Signer

	ready  chan net.Addr
	active atomic.Int64
}

type SshListenerOpt func(*SshListener)

// WithHostKey sets the key the server identifies itself with. Without it
// an ephemeral key is generated on Start.
func WithHostKey(key ssh.Signer) SshListenerOpt {
	return func(l *SshListener) {
		l.hostKey = key
	}
}

func NewSshListener(port uint16, cm *ConnectionManager, opts ...SshListenerOpt) *SshListener {
	l := &SshListener{
		port:  port,
		cm:    cm,
		ready: make(chan net.Addr, 1),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Ready yields the bound address once the listener accepts connections.
func (l *SshListener) Ready() <-chan net.Addr {
	return l.ready
}

func (l *SshListener) Start(ctx context.Context) error {
	if l.hostKey == nil {
		slog.WarnContext(ctx, "no host key configured for ssh listener, generating ephemeral key", "port", l.port)
		key, err := EphemeralHostKey()
		if err != nil {
			return err
		}
		l.hostKey = key
	}

	// Players are anonymous; there is only one game to join.
	config := &ssh.ServerConfig{
		NoClientAuth: true,
	}
	config.AddHostKey(l.hostKey)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", l.port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", l.port, err)
	}

	slog.InfoContext(ctx, "listening for ssh", "addr", listener.Addr().String())
	select {
	case l.ready <- listener.Addr():
	default:
	}

	connCtx, cancelConns := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	// Close the listener when the parent context is canceled
	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			// Check if shutdown was requested
			select {
			case <-ctx.Done():
				cancelConns()
				wg.Wait()
				return nil
			default:
			}
			slog.ErrorContext(ctx, "accepting ssh connection", "error", err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			l.handleConnection(connCtx, conn, config)
		}()
	}
}

func (l *SshListener) handleConnection(ctx context.Context, conn net.Conn, config *ssh.ServerConfig) {
	l.active.Add(1)
	defer l.active.Add(-1)
	defer conn.Close()

	sshConn, chans, reqs, err := ssh.NewServerConn(conn, config)
	if err != nil {
		slog.ErrorContext(ctx, "ssh handshake", "remote", conn.RemoteAddr(), "error", err)
		return
	}
	defer sshConn.Close()

	slog.InfoContext(ctx, "ssh connection established", "remote", conn.RemoteAddr(), "client", string(sshConn.ClientVersion()))

	// Closing the connection on shutdown ends the channel loop below.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			sshConn.Close()
		case <-done:
		}
	}()

	go ssh.DiscardRequests(reqs)

	for newChan := range chans {
		if newChan.ChannelType() != "session" {
			newChan.Reject(ssh.UnknownChannelType, "unknown channel type")
			continue
		}

		ch, requests, err := newChan.Accept()
		if err != nil {
			slog.ErrorContext(ctx, "accepting ssh channel", "error", err)
			continue
		}

		shellReady, gone := serveChannelRequests(requests)

		// Clients don't forward input until their shell request is answered.
		select {
		case <-shellReady:
		case <-gone:
			ch.Close()
			continue
		case <-ctx.Done():
			ch.Close()
			continue
		}

		l.cm.AcceptConnection(ctx, newCRLFReadWriter(ch))
		ch.Close()
	}
}

// serveChannelRequests answers requests on a session channel. shellReady
// closes on the first shell request and gone closes once the client stops
// sending requests. Only one shell is started per channel.
func serveChannelRequests(in <-chan *ssh.Request) (shellReady, gone <-chan struct{}) {
	ready := make(chan struct{})
	closed := make(chan struct{})

	go func() {
		defer close(closed)

		started := false
		for req := range in {
			switch {
			case req.Type == "shell" && !started:
				started = true
				req.Reply(true, nil)
				close(ready)
			default:
				// pty-req is refused too, so the client keeps local echo and
				// line buffering.
				req.Reply(false, nil)
			}
		}
	}()

	return ready, closed
}
