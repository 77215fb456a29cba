// Package timeouts collects the durations that bound network calls, server
// lifecycles and operator state.
package timeouts

import "time"

const (
	// APIRequest caps a single call to the remote commerce API.
	APIRequest = 10 * time.Second
	// HealthProbe is the interval between remote API health probes.
	HealthProbe = 15 * time.Second
	// GRPCDial caps how long the -probe mode waits for a SERVING answer.
	GRPCDial = 2 * time.Second
	// ReadHeader limits how long the HTTP server waits for request headers.
	ReadHeader = 5 * time.Second
	// Shutdown bounds graceful server shutdown and the telemetry flush.
	Shutdown = 5 * time.Second
	// OperatorSession is how long an idle operator session keeps its table
	// state.
	OperatorSession = 12 * time.Hour
)
