package grpc

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogrpc "google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	initialHealthBackoff = 200 * time.Millisecond
	maxHealthBackoff     = time.Second
)

// WaitForHealth polls the health of service on conn until it reports SERVING
// or ctx ends. logf, when set, is called each time the observed state
// changes. A timeout error names the last state seen.
func WaitForHealth(ctx context.Context, conn gogrpc.ClientConnInterface, service string, logf func(string, ...any)) error {
	if conn == nil {
		return errors.New("gRPC connection is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	client := grpc_health_v1.NewHealthClient(conn)
	backoff := initialHealthBackoff
	last := "no response"
	for {
		callCtx, cancel := context.WithTimeout(ctx, maxHealthBackoff)
		resp, err := client.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: service})
		cancel()
		if err != nil && ctx.Err() != nil {
			return fmt.Errorf("wait for gRPC health (last: %s): %w", last, ctx.Err())
		}

		observed := ""
		switch {
		case err != nil:
			observed = err.Error()
		case resp.GetStatus() == grpc_health_v1.HealthCheckResponse_SERVING:
			if logf != nil {
				logf("gRPC health of %q is SERVING", service)
			}
			return nil
		default:
			observed = "status " + resp.GetStatus().String()
		}
		if observed != last && logf != nil {
			logf("waiting for gRPC health of %q: %s", service, observed)
		}
		last = observed

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for gRPC health (last: %s): %w", last, ctx.Err())
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxHealthBackoff)
	}
}
