package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/tomz197/herojump/internal/config"
	"github.com/tomz197/herojump/internal/draw"
	"github.com/tomz197/herojump/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := config.NewLogger(os.Stderr)

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("SSH config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	tuning, err := config.FromEnv()
	if err != nil {
		logger.Fatal("invalid tuning", "err", err)
	}

	// Every connection plays its own session. Nothing is shared between players.
	games := &gameHandler{logger: logger, tuning: tuning}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			games.middleware,
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("Starting SSH server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("Shutting down server...", "players", games.active())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameHandler runs one game per SSH session.
type gameHandler struct {
	logger *log.Logger
	tuning config.Tuning

	mu      sync.Mutex
	players int
}

func (g *gameHandler) middleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		logger := g.logger.With("session", uuid.NewString(), "user", sess.User())
		logger.Info("New game session", "terminal", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height, "players", g.join(1))
		defer func() {
			logger.Info("Session ended", "players", g.join(-1))
		}()

		// Create a terminal size tracker that updates on window changes
		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)

		// Listen for window size changes in a goroutine
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		renderer := newRenderer(sess, newSessionEnv(pty.Term, sess.Environ()))

		err := loop.Run(bufio.NewReader(sess), sess, loop.Options{
			TermSizeFunc:         sizeTracker.getSize,
			Tuning:               g.tuning,
			Logger:               logger,
			Renderer:             renderer,
			InactivityWarn:       loop.InactivityWarn,
			InactivityDisconnect: loop.InactivityDisconnect,
		})
		if err != nil {
			logger.Error("Game error", "err", err)
		}

		next(sess)
	}
}

// join adjusts the player count by delta and returns the new count.
func (g *gameHandler) join(delta int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.players += delta
	return g.players
}

func (g *gameHandler) active() int {
	return g.join(0)
}

// newRenderer builds a renderer for w whose colour profile is detected from
// the client's environment. The session is not a local TTY, so the check is
// forced rather than probed.
func newRenderer(w io.Writer, env sessionEnv) *lipgloss.Renderer {
	return lipgloss.NewRenderer(w,
		termenv.WithEnvironment(env),
		termenv.WithUnsafe(),
		termenv.WithColorCache(true),
	)
}

// sessionEnv exposes an SSH client's environment to termenv.
type sessionEnv []string

// newSessionEnv combines the variables the client sent with the PTY's TERM,
// which takes precedence.
func newSessionEnv(term string, environ []string) sessionEnv {
	return append(sessionEnv(slices.Clone(environ)), "TERM="+term)
}

func (e sessionEnv) Environ() []string {
	return e
}

// Getenv returns the last value set for key.
func (e sessionEnv) Getenv(key string) string {
	for _, kv := range slices.Backward(e) {
		if v, ok := strings.CutPrefix(kv, key+"="); ok {
			return v
		}
	}
	return ""
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
