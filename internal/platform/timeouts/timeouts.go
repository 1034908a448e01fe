// Package timeouts defines shared timeout constants used across the handbook.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// DemoFetch caps one outbound call to the public demo API.
const DemoFetch = 5 * time.Second
