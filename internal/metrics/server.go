package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alejoacosta74/binance-stream/internal/logger"
)

// Server exposes the recorder's metrics over HTTP.
type Server struct {
	server *http.Server
	logger *logger.Logger
	done   chan struct{}
}

// NewServer creates a metrics server for the given registry, serving
// /metrics and a trivial /health endpoint.
func NewServer(addr string, registry *prometheus.Registry) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return &Server{
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
		logger: logger.WithField("component", "metrics_server"),
		done:   make(chan struct{}),
	}
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("Shutting down metrics server")
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Errorf("Error shutting down metrics server: %v", err)
		}
		close(s.done)
	}()

	if err := s.server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	<-s.done
	s.logger.Info("Metrics server shutdown complete")
	return nil
}
