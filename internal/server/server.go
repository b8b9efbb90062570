package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/microfund/go-microfund/internal/config"
	myHTTP "github.com/microfund/go-microfund/internal/handler/http"
	"github.com/microfund/go-microfund/internal/logger"
)

type server struct {
	httpServer  *httpServer
	httpHandler *myHTTP.Handler
	logger      *logger.Logger
}

func NewServer(handler *myHTTP.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer:  newHTTPServer(handler.Init(), cfg, logger),
		httpHandler: handler,
		logger:      logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()

	// stop handler background goroutines (rate limiter cleanup)
	s.httpHandler.Close()
}
