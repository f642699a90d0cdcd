// internal/app/system/limits/limits.go
package limits

import "time"

// Request body size limits.
const (
	// MaxJSONBody bounds API request bodies. An institution with its
	// director, auxiliaries and classrooms is a few KB.
	MaxJSONBody = 1 << 20 // 1 MB
)

// Write rate limit defaults, per client IP. Writes are limited because most
// of them call the user service.
const (
	DefaultWriteRate   = 60
	DefaultWriteWindow = time.Minute
)
