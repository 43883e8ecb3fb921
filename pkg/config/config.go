package config

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"dreamshoots/pkg/client"
	"dreamshoots/pkg/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURL         string
	DatabaseName     string
	MongoConnTimeout time.Duration

	Environment string
	Port        string

	AdminToken  string
	FrontendURL string

	// CORSOrigins is the effective allow-list; empty means wildcard mode
	// (non-production with no explicit origins configured).
	CORSOrigins          []string
	CORSAllowCredentials bool

	RateLimitRequests int
	RateLimitWindow   time.Duration

	RequestTimeout time.Duration
	MaxRequestSize int

	BookingListLimit int
	ReelListLimit    int

	KafkaBrokers      []string
	KafkaEventsTopic  string
	KafkaBatchTimeout time.Duration

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	Log    *logger.Logger
	Client *client.Client
}

func Load(serviceName string) *Config {
	// Missing .env is fine; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg := &Config{
		MongoURL:         getEnvStr(EnvMongoURL, DefaultMongoURL),
		DatabaseName:     getEnvStr(EnvDatabaseName, DefaultDatabaseName),
		MongoConnTimeout: getEnvDuration(EnvMongoConnTimeout, DefaultMongoConnTimeout),

		Environment: getEnvStr(EnvEnvironment, DefaultEnvironment),
		Port:        getEnvStr(EnvPort, DefaultPort),

		AdminToken:  sanitizeToken(getEnvStr(EnvAdminToken, DefaultAdminToken)),
		FrontendURL: getEnvStr(EnvFrontendURL, DefaultFrontendURL),

		RateLimitRequests: getEnvNum(EnvRateLimitRequests, DefaultRateLimitRequests),
		RateLimitWindow:   getEnvDuration(EnvRateLimitWindow, DefaultRateLimitWindow),

		RequestTimeout: getEnvDuration(EnvRequestTimeout, DefaultRequestTimeout),
		MaxRequestSize: getEnvNum(EnvMaxRequestSize, DefaultMaxRequestSize),

		BookingListLimit: getEnvNum(EnvBookingListLimit, DefaultBookingListLimit),
		ReelListLimit:    getEnvNum(EnvReelListLimit, DefaultReelListLimit),

		KafkaBrokers:      getEnvList(EnvKafkaBrokers),
		KafkaEventsTopic:  getEnvStr(EnvKafkaEventsTopic, DefaultKafkaEventsTopic),
		KafkaBatchTimeout: getEnvDuration(EnvKafkaBatchTimeout, DefaultKafkaBatchTimeout),

		ReadTimeout:     getEnvDuration(EnvReadTimeout, DefaultReadTimeout),
		WriteTimeout:    getEnvDuration(EnvWriteTimeout, DefaultWriteTimeout),
		IdleTimeout:     getEnvDuration(EnvIdleTimeout, DefaultIdleTimeout),
		ShutdownTimeout: getEnvDuration(EnvShutdownTimeout, DefaultShutdownTimeout),

		Log: logger.New(logger.Config{
			Level:     getEnvStr(EnvLogLevel, DefaultLogLevel),
			Format:    logger.JSON,
			AddSource: true,
			Service:   serviceName,
		}),
		Client: client.NewClient(),
	}

	cfg.resolveCORS(getEnvList(EnvCORSOrigins))

	if err := cfg.Validate(); err != nil {
		cfg.Log.Fatal(err.Error())
	}
	cfg.LogConfiguration()
	return cfg
}

func (cfg *Config) IsProduction() bool {
	return cfg.Environment == EnvironmentProduction
}

func (cfg *Config) SetMongo() {
	cfg.Client.SetMongo(cfg.Log, cfg.MongoURL, cfg.MongoConnTimeout)
}

func (cfg *Config) GracefulShutdown() {
	cfg.Client.GracefulShutdown(cfg.Log)
}

// resolveCORS builds the effective origin allow-list: the hard-coded defaults,
// the frontend origin, and any configured extras. When nothing was configured
// explicitly and the deployment is not production, the list collapses to
// wildcard mode and credentials are disallowed.
func (cfg *Config) resolveCORS(extraOrigins []string) {
	origins := slices.Clone(DefaultCORSOrigins)
	if cfg.FrontendURL != "" && !slices.Contains(origins, cfg.FrontendURL) {
		origins = append(origins, cfg.FrontendURL)
	}
	for _, origin := range extraOrigins {
		if origin != "" && !slices.Contains(origins, origin) {
			origins = append(origins, origin)
		}
	}

	if len(extraOrigins) == 0 && !cfg.IsProduction() {
		cfg.CORSOrigins = nil
		cfg.CORSAllowCredentials = false
		return
	}

	cfg.CORSOrigins = origins
	cfg.CORSAllowCredentials = true
}

func (cfg *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(cfg.Port); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("Port must be between 1 and 65535, got: %s", cfg.Port))
	}

	if cfg.MongoURL == "" {
		errs = append(errs, "MongoURL cannot be empty")
	} else if !regexp.MustCompile(`^mongodb(\+srv)?://`).MatchString(cfg.MongoURL) {
		errs = append(errs, fmt.Sprintf("MongoURL must start with 'mongodb://' or 'mongodb+srv://', got: %s", redactMongoURL(cfg.MongoURL)))
	}

	if cfg.DatabaseName == "" {
		errs = append(errs, "DatabaseName cannot be empty")
	}

	if cfg.IsProduction() && cfg.AdminToken == "" {
		errs = append(errs, "AdminToken cannot be empty in production")
	}

	if cfg.MongoConnTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("MongoConnTimeout must be positive, got: %s", cfg.MongoConnTimeout))
	}
	if cfg.RateLimitRequests <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitRequests must be positive, got: %d", cfg.RateLimitRequests))
	}
	if cfg.RateLimitWindow <= 0 {
		errs = append(errs, fmt.Sprintf("RateLimitWindow must be positive, got: %s", cfg.RateLimitWindow))
	}
	if cfg.RequestTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("RequestTimeout must be positive, got: %s", cfg.RequestTimeout))
	}
	if cfg.MaxRequestSize <= 0 {
		errs = append(errs, fmt.Sprintf("MaxRequestSize must be positive, got: %d", cfg.MaxRequestSize))
	}
	if cfg.BookingListLimit <= 0 {
		errs = append(errs, fmt.Sprintf("BookingListLimit must be positive, got: %d", cfg.BookingListLimit))
	}
	if cfg.ReelListLimit <= 0 {
		errs = append(errs, fmt.Sprintf("ReelListLimit must be positive, got: %d", cfg.ReelListLimit))
	}
	if cfg.ReadTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ReadTimeout must be positive, got: %s", cfg.ReadTimeout))
	}
	if cfg.WriteTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("WriteTimeout must be positive, got: %s", cfg.WriteTimeout))
	}
	if cfg.IdleTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("IdleTimeout must be positive, got: %s", cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Sprintf("ShutdownTimeout must be positive, got: %s", cfg.ShutdownTimeout))
	}

	if len(errs) > 0 {
		errMsg := "Configuration validation failed:\n"
		for i, e := range errs {
			errMsg += fmt.Sprintf("  %d. %s\n", i+1, e)
		}
		return fmt.Errorf("%s", errMsg)
	}

	return nil
}

// LogConfiguration logs the effective configuration. Secrets are never logged
// raw; the admin token is reported as a length only.
func (cfg *Config) LogConfiguration() {
	corsMode := "allow-list"
	if len(cfg.CORSOrigins) == 0 {
		corsMode = "wildcard"
	}

	cfg.Log.Info("Configuration loaded successfully",
		"mongo_url", redactMongoURL(cfg.MongoURL),
		"database", cfg.DatabaseName,
		"mongo_conn_timeout", cfg.MongoConnTimeout,
		"environment", cfg.Environment,
		"port", cfg.Port,
		"admin_token_len", len(cfg.AdminToken),
		"frontend_url", cfg.FrontendURL,
		"cors_mode", corsMode,
		"cors_origins", cfg.CORSOrigins,
		"cors_allow_credentials", cfg.CORSAllowCredentials,
		"rate_limit_requests", cfg.RateLimitRequests,
		"rate_limit_window", cfg.RateLimitWindow,
		"request_timeout", cfg.RequestTimeout,
		"max_request_size", cfg.MaxRequestSize,
		"booking_list_limit", cfg.BookingListLimit,
		"reel_list_limit", cfg.ReelListLimit,
		"kafka_enabled", len(cfg.KafkaBrokers) > 0,
		"kafka_events_topic", cfg.KafkaEventsTopic,
		"read_timeout", cfg.ReadTimeout,
		"write_timeout", cfg.WriteTimeout,
		"idle_timeout", cfg.IdleTimeout,
		"shutdown_timeout", cfg.ShutdownTimeout,
	)
}

// sanitizeToken strips surrounding whitespace and quote characters that sneak
// in when the secret is pasted into deployment env editors.
func sanitizeToken(token string) string {
	return strings.Trim(strings.TrimSpace(token), `"'`)
}

func redactMongoURL(uri string) string {
	credentialRegex := regexp.MustCompile(`(mongodb(\+srv)?://)[^:]+:[^@]+@`)
	return credentialRegex.ReplaceAllString(uri, "${1}***:***@")
}

func getEnvStr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvNum(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
