// internal/app/system/timeouts/timeouts.go

// Package timeouts provides centralized timeout values for handler
// operations, used with context.WithTimeout around database and
// rendering calls.
//
// Guidelines:
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and writes
//   - Medium: list queries, multi-document writes
//   - Long: exports and other whole-collection scans
package timeouts

import "time"

const (
	ping   = 2 * time.Second
	short  = 5 * time.Second
	medium = 10 * time.Second
	long   = 30 * time.Second
)

// Ping returns the timeout for health checks.
func Ping() time.Duration { return ping }

// Short returns the timeout for single-document operations.
func Short() time.Duration { return short }

// Medium returns the timeout for list queries and multi-document writes.
func Medium() time.Duration { return medium }

// Long returns the timeout for whole-collection exports.
func Long() time.Duration { return long }
