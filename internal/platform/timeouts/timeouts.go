// Package timeouts defines shared timeout constants.
package timeouts

import "time"

// TelemetryShutdown bounds how long a command waits for spans to flush
// before exiting.
const TelemetryShutdown = 5 * time.Second
