package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/amivoice-web/internal/config"
	"github.com/MKhiriev/amivoice-web/internal/handler"
	"github.com/MKhiriev/amivoice-web/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("Error running server")
		return err
	}

	return nil
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) error {
	if err := s.httpServer.Listen(); err != nil {
		return err
	}

	s.logger.Info().Str("address", s.httpServer.Addr()).Msg("Launching HTTP server")

	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.RunServer()
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	if err := <-served; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
