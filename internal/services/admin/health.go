package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/louisbranch/storeadmin/internal/platform/timeouts"
	"github.com/louisbranch/storeadmin/internal/services/admin/cache"
)

// HealthService is the service name reported by the health endpoint in
// addition to the overall ("") status.
const HealthService = "storeadmin.admin"

// healthServer serves the gRPC health protocol. It reports SERVING while the
// remote store endpoint answers.
type healthServer struct {
	grpcServer *grpc.Server
	status     *health.Server
	probe      cache.StoreClient
	interval   time.Duration
}

func newHealthServer(probe cache.StoreClient) *healthServer {
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	status := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, status)
	setServing(status, healthpb.HealthCheckResponse_NOT_SERVING)
	return &healthServer{
		grpcServer: grpcServer,
		status:     status,
		probe:      probe,
		interval:   timeouts.HealthProbe,
	}
}

func setServing(status *health.Server, value healthpb.HealthCheckResponse_ServingStatus) {
	status.SetServingStatus("", value)
	status.SetServingStatus(HealthService, value)
}

// check probes the remote API once and records the result.
func (s *healthServer) check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, timeouts.APIRequest)
	defer cancel()
	if _, err := s.probe.GetStore(ctx); err != nil {
		setServing(s.status, healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}
	setServing(s.status, healthpb.HealthCheckResponse_SERVING)
	return nil
}

// watch probes until ctx ends, logging only status transitions.
func (s *healthServer) watch(ctx context.Context) {
	healthy := true
	for {
		err := s.check(ctx)
		switch {
		case err != nil && healthy:
			log.Printf("remote api unhealthy: %v", err)
			healthy = false
		case err == nil && !healthy:
			log.Printf("remote api healthy")
			healthy = true
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.interval):
		}
	}
}

// serve listens on addr and probes the remote API until ctx ends.
func (s *healthServer) serve(ctx context.Context, addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen health on %s: %w", addr, err)
	}
	log.Printf("health server listening on %s", listener.Addr())

	go s.watch(ctx)
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.status.Shutdown()
		s.grpcServer.GracefulStop()
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve health: %w", err)
	}
}

func (s *healthServer) stop() {
	s.grpcServer.Stop()
}
