package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dreamshoots/pkg/config"
	"dreamshoots/pkg/contracts"
	"dreamshoots/pkg/kafka"
	"dreamshoots/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type Application struct {
	cfg            *config.Config
	server         *http.Server
	rateLimiter    *middleware.PhoneRateLimiter
	producer       *kafka.Producer
	healthHandler  http.Handler
	appHTTPHandler http.Handler
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp composes the two handler chains: probes get minimal middleware, the
// API surface gets the full hygiene stack, then both mount on one server.
func (a *Application) SetApp(healthHandler contracts.Handler, apiHandlers ...contracts.Handler) {
	a.setHealthHandler(healthHandler)
	a.setAPIHandler(apiHandlers...)
	a.setAppServer()
}

// SetProducer registers the event producer for closing during shutdown.
func (a *Application) SetProducer(producer *kafka.Producer) {
	a.producer = producer
}

func (a *Application) setHealthHandler(healthHandler contracts.Handler) {
	healthRouter := httprouter.New()
	healthHandler.RegisterRoutes(healthRouter)

	var h http.Handler = healthRouter
	h = middleware.RequestLogging(a.cfg.Log)(h)
	h = middleware.Recovery(a.cfg.Log)(h)
	a.healthHandler = h

	a.cfg.Log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAPIHandler(apiHandlers ...contracts.Handler) {
	apiRouter := httprouter.New()
	for _, handler := range apiHandlers {
		handler.RegisterRoutes(apiRouter)
	}

	a.rateLimiter = middleware.NewPhoneRateLimiter(
		a.cfg.RateLimitRequests,
		a.cfg.RateLimitWindow,
		middleware.BookingPhoneExtractor,
		a.cfg.Log,
	)

	var h http.Handler = apiRouter
	h = middleware.RequestTimeout(a.cfg.RequestTimeout)(h)
	h = middleware.PhoneRateLimit(a.rateLimiter)(h)
	h = middleware.ContentTypeValidation(a.cfg.Log)(h)
	h = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(h)
	h = middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:   a.cfg.CORSOrigins,
		AllowCredentials: a.cfg.CORSAllowCredentials,
		MaxAge:           config.DefaultCORSMaxAge,
	}, a.cfg.Log)(h)
	h = middleware.RequestLogging(a.cfg.Log)(h)
	h = middleware.Recovery(a.cfg.Log)(h)
	a.appHTTPHandler = h

	a.cfg.Log.Info("API endpoints configured with full middleware stack")
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHTTPHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.cfg.Log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr, "environment", a.cfg.Environment)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	a.rateLimiter.Stop()

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.cfg.Log.Error("Failed to close event producer", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.GracefulShutdown()

	a.cfg.Log.Info("Server stopped gracefully")
}
