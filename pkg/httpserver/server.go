package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

type config struct {
	addr            string
	readTimeout     time.Duration
	headerTimeout   time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	server          *http.Server
	logger          *slog.Logger
	startHooks      []func(*slog.Logger)
	stopHooks       []func(*slog.Logger)
	closers         []io.Closer
}

func defaultConfig() *config {
	return &config{
		addr:            ":8080",
		headerTimeout:   10 * time.Second,
		shutdownTimeout: 5 * time.Second,
	}
}

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	cfg    *config
	srv    *http.Server
	ln     net.Listener
	once   sync.Once
	mu     sync.Mutex
	closed bool
	ready  chan struct{}
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.Discard()
	}
	cfg.logger = cfg.logger.With(logger.Component("httpserver"))
	return &Server{cfg: cfg, ready: make(chan struct{})}
}

// Run listens on the configured address, serves handler and blocks until ctx
// is cancelled, SIGINT or SIGTERM arrives, or Shutdown is called.
// It returns ErrStart wrapped with the underlying error if the server fails to start.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}

	cfg := s.cfg
	srv := cfg.server
	if srv == nil {
		srv = &http.Server{}
	}
	if srv.Addr == "" {
		srv.Addr = cfg.addr
	}
	fillTimeout(&srv.ReadTimeout, cfg.readTimeout)
	fillTimeout(&srv.ReadHeaderTimeout, cfg.headerTimeout)
	fillTimeout(&srv.WriteTimeout, cfg.writeTimeout)
	fillTimeout(&srv.IdleTimeout, cfg.idleTimeout)
	srv.Handler = handler

	// request contexts end when shutdown starts, so event streams return
	// instead of holding Shutdown until its deadline
	baseCtx, cancelBase := context.WithCancel(context.Background())
	if srv.BaseContext == nil {
		srv.BaseContext = func(net.Listener) context.Context { return baseCtx }
	}
	srv.RegisterOnShutdown(cancelBase)

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		s.mu.Unlock()
		cancelBase()
		return errors.Join(ErrStart, err)
	}
	s.srv = srv
	s.ln = ln
	s.mu.Unlock()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()

	cfg.logger.InfoContext(ctx, "http server listening", slog.String("addr", ln.Addr().String()))
	for _, h := range cfg.startHooks {
		h(cfg.logger)
	}
	close(s.ready)

	var runErr, shutdownErr error
	select {
	case <-ctx.Done():
		shutdownErr = s.Shutdown(context.Background())
		runErr = <-errCh
	case sig := <-stop:
		cfg.logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownErr = s.Shutdown(context.Background())
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return shutdownErr
}

// Addr returns the address the server listens on, or "" before Run has
// bound its listener. It is useful with ":0".
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return ""
	}
	return s.ln.Addr().String()
}

// Ready is closed once Run has bound its listener.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown stops the server gracefully, then closes the registered closers.
// It is safe for repeated calls.
// Errors from http.Server.Shutdown and the closers are wrapped with ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	s.once.Do(func() {
		s.mu.Lock()
		srv := s.srv
		s.mu.Unlock()
		if srv == nil {
			return
		}

		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs = append(errs, err)
		}
		for _, c := range s.cfg.closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		for _, h := range s.cfg.stopHooks {
			h(s.cfg.logger)
		}
		s.cfg.logger.Info("http server stopped", logger.Errors(errs...))

		s.mu.Lock()
		s.closed = true
		s.mu.Unlock()
	})

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrShutdown}, errs...)...)
	}
	return nil
}

// fillTimeout sets *dst to d unless the caller's server already set it.
func fillTimeout(dst *time.Duration, d time.Duration) {
	if *dst == 0 && d > 0 {
		*dst = d
	}
}
