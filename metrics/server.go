package metrics

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const (
	defaultReadTimeout       = time.Minute
	defaultReadHeaderTimeout = time.Minute
	defaultPort              = 8081
)

type Server struct {
	mu                sync.Mutex
	srv               *http.Server
	listener          net.Listener
	reg               *prometheus.Registry
	log               zerolog.Logger
	enabled           bool
	opts              promhttp.HandlerOpts
	host              string
	port              int
	path              string
	isRunning         bool
	readTimeout       time.Duration
	readHeaderTimeout time.Duration
}

func defaultServer() *Server {
	return &Server{
		enabled:               true,
		log:                   zerolog.Nop(),
		reg:                   prometheus.NewRegistry(),
		opts:                  promhttp.HandlerOpts{},
		port:                  defaultPort,
		path:                  "/metrics",
		readTimeout:       defaultReadTimeout,
		readHeaderTimeout: defaultReadHeaderTimeout,
	}
}

func NewServer(opts ...Option) *Server {
	s := defaultServer()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Path() string {
	if s.path == "" {
		return "/metrics"
	}
	return s.path
}

// Addr is the address the server listens on, or "" when it is not running.
// With port 0 this is the only way to learn the chosen port.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Start binds the listener and serves the registry in the background.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled {
		return ErrMetricsDisabled
	}

	if s.srv != nil && s.isRunning {
		return ErrMetricsRunning
	}

	mux := http.NewServeMux()
	mux.Handle(s.Path(), promhttp.HandlerFor(s.reg, s.opts))

	listener, err := net.Listen("tcp", fmt.Sprintf("%s:%d", s.host, s.port))
	if err != nil {
		return fmt.Errorf("failed to listen for metrics: %w", err)
	}

	s.listener = listener
	s.srv = &http.Server{
		Handler:           mux,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readHeaderTimeout,
	}

	s.log.Info().
		Str("addr", listener.Addr().String()).
		Str("path", s.Path()).
		Msg("starting metrics server")

	go func(srv *http.Server) {
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("metrics server stopped")
		}
	}(s.srv)

	s.isRunning = true
	return nil
}

func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return ErrMetricsDisabled
	}

	if s.srv == nil || !s.isRunning {
		return ErrMetricsNotRunning
	}

	if err := s.srv.Close(); err != nil {
		return err
	}

	s.isRunning = false
	s.listener = nil
	return nil
}

func (s *Server) Registry() *prometheus.Registry {
	return s.reg
}

func (s *Server) Register(instrumentation *Instrumentation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range instrumentation.Collectors() {
		if err := s.reg.Register(c); err != nil {
			return fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return nil
}

// StartMetricsServer registers instrumentation, records version and starts serving.
func StartMetricsServer(config Config, instrumentation *Instrumentation, logger zerolog.Logger, version string) (*Server, error) {
	metricsSvr := NewServer(WithLogger(logger), WithConfig(config))
	if err := metricsSvr.Register(instrumentation); err != nil {
		logger.Err(err).Msg("failed to start metrics server")
		return nil, err
	}

	if v, ok := instrumentation.GaugeVecs[InstrumentationTypeVersion]; ok {
		v.With(prometheus.Labels{"version": version}).Set(1)
	}
	if err := metricsSvr.Start(); err != nil {
		logger.Err(err).Msg("failed to start metrics server")
		return nil, err
	}

	return metricsSvr, nil
}
