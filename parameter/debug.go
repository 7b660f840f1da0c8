package parameter

import "time"

// Logging
const (
	LogDir        = "logs"
	LogFileName   = "gamefeel.log"
	MaxLogSizeMB  = 10
	MaxLogBackups = 3
	LogLevel      = "info"
	LogFormat     = "console"
)

// Debug HTTP
const (
	// DebugMetricsNamespace prefixes all Prometheus metric names
	DebugMetricsNamespace = "gamefeel"
)

// Debug Server
const (
	// DebugRequestRate limits debug HTTP requests per second across all clients
	DebugRequestRate  = 20.0
	DebugRequestBurst = 40

	// DebugStreamInterval is the websocket snapshot push period
	DebugStreamInterval = 100 * time.Millisecond

	// DebugShutdownTimeout bounds graceful server shutdown
	DebugShutdownTimeout = 2 * time.Second
)
