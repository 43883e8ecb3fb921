package config

const (
	EnvMongoURL         = "MONGO_URL"
	EnvDatabaseName     = "DB_NAME"
	EnvMongoConnTimeout = "MONGO_CONN_TIMEOUT"

	EnvEnvironment = "ENVIRONMENT"
	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"

	EnvAdminToken  = "ADMIN_TOKEN"
	EnvFrontendURL = "FRONTEND_URL"
	EnvCORSOrigins = "CORS_ORIGINS"

	EnvRateLimitRequests = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow   = "RATE_LIMIT_WINDOW"

	EnvRequestTimeout = "REQUEST_TIMEOUT"
	EnvMaxRequestSize = "MAX_REQUEST_SIZE"

	EnvBookingListLimit = "BOOKING_LIST_LIMIT"
	EnvReelListLimit    = "REEL_LIST_LIMIT"

	EnvKafkaBrokers      = "KAFKA_BROKERS"
	EnvKafkaEventsTopic  = "KAFKA_EVENTS_TOPIC"
	EnvKafkaBatchTimeout = "KAFKA_BATCH_TIMEOUT"

	EnvReadTimeout     = "READ_TIMEOUT"
	EnvWriteTimeout    = "WRITE_TIMEOUT"
	EnvIdleTimeout     = "IDLE_TIMEOUT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)
