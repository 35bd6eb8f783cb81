// Package netx serves the process metrics over HTTP.
package netx

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/healthguard/internal/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsHandler exposes the default Prometheus registry at /metrics.
func MetricsHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

// MetricsServer is a running metrics endpoint.
type MetricsServer struct {
	srv  *http.Server
	addr net.Addr
	done chan struct{}
}

// ServeMetrics listens on addr and serves MetricsHandler in the background.
func ServeMetrics(ctx context.Context, addr string, log logging.Logger) (*MetricsServer, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	s := &MetricsServer{
		srv: &http.Server{
			Handler:           MetricsHandler(),
			ReadHeaderTimeout: 5 * time.Second,
		},
		addr: ln.Addr(),
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.done)
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "metrics server stopped", "error", err)
		}
	}()

	log.Info(ctx, "serving metrics", "addr", s.addr.String())
	return s, nil
}

// Addr is the address the server listens on.
func (s *MetricsServer) Addr() string {
	return s.addr.String()
}

// Shutdown stops the server and waits for the serve loop to exit.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	err := s.srv.Shutdown(ctx)
	<-s.done
	return err
}
