package config

import "time"

const (
	Version = "1.0.0"

	EnvironmentProduction  = "production"
	EnvironmentDevelopment = "development"

	DefaultMongoURL         = "mongodb://localhost:27017"
	DefaultDatabaseName     = "dreamshoots"
	DefaultMongoConnTimeout = 10 * time.Second

	DefaultEnvironment = EnvironmentDevelopment
	DefaultPort        = "8000"
	DefaultLogLevel    = "info"

	DefaultAdminToken  = "ds-secret-token"
	DefaultFrontendURL = "http://localhost:3000"

	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultBookingListLimit = 1000
	DefaultReelListLimit    = 100

	DefaultKafkaEventsTopic  = "dreamshoots.events"
	DefaultKafkaBatchTimeout = 10 * time.Millisecond

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	// CORS preflight cache duration, in seconds.
	DefaultCORSMaxAge = 600
)

// DefaultCORSOrigins are always allowed alongside any configured origins.
var DefaultCORSOrigins = []string{
	"https://www.dreamshoots.in",
	"https://dreamshootsapp-production.up.railway.app",
	"http://localhost:3000",
	"http://localhost:8000",
}
