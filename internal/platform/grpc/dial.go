// Package grpc holds gRPC client helpers shared by commands.
package grpc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// ProbeStage describes where a probe failed.
type ProbeStage string

const (
	// ProbeStageConnect indicates the client could not be created.
	ProbeStageConnect ProbeStage = "connect"
	// ProbeStageHealth indicates the health check never reported SERVING.
	ProbeStageHealth ProbeStage = "health"
)

// ProbeError wraps probe failures with a stage indicator.
type ProbeError struct {
	Addr  string
	Stage ProbeStage
	Err   error
}

// Error implements the error interface.
func (e *ProbeError) Error() string {
	if e == nil {
		return "gRPC probe error"
	}
	return fmt.Sprintf("gRPC %s probe of %s: %v", e.Stage, e.Addr, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProbeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultClientDialOptions returns plaintext dial options with OTel client
// instrumentation.
func DefaultClientDialOptions() []gogrpc.DialOption {
	return []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	}
}

// Probe connects to addr and waits up to timeout for service to report
// SERVING. A zero timeout waits until ctx ends.
func Probe(ctx context.Context, addr string, service string, timeout time.Duration, logf func(string, ...any), opts ...gogrpc.DialOption) error {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return &ProbeError{Stage: ProbeStageConnect, Err: fmt.Errorf("address is required")}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if len(opts) == 0 {
		opts = DefaultClientDialOptions()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	conn, err := gogrpc.NewClient(addr, opts...)
	if err != nil {
		return &ProbeError{Addr: addr, Stage: ProbeStageConnect, Err: err}
	}
	defer conn.Close()

	if err := WaitForHealth(ctx, conn, service, logf); err != nil {
		return &ProbeError{Addr: addr, Stage: ProbeStageHealth, Err: err}
	}
	return nil
}
