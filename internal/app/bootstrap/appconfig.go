// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers ports, TLS, logging and request limits.
// Everything specific to institutionhub lives here and is passed to the
// lifecycle hooks.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI            string        // e.g. mongodb://localhost:27017
	MongoDatabase       string        // database holding institutions and classrooms
	MongoConnectTimeout time.Duration // bound on connect + initial ping

	// Remote user service
	UserServiceURL     string        // base URL of the users resource, e.g. http://localhost:8081/api/v1/users
	UserServiceTimeout time.Duration // per-call HTTP client timeout

	// Per-IP limit on API writes; 0 disables
	WriteRateLimit  int
	WriteRateWindow time.Duration

	CORSAllowedOrigins []string

	// Handler deadlines (see system/timeouts)
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
