package handler

import (
	"context"
	"net/http"
	"time"

	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo"
)

type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment,omitempty"`
	Version     string `json:"version,omitempty"`
	Database    string `json:"database,omitempty"`
}

type HealthHandler struct {
	environment string
	version     string
	mongoClient *mongo.Client
	log         *logger.Logger
}

func NewHealthHandler(environment, version string, mongoClient *mongo.Client, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		environment: environment,
		version:     version,
		mongoClient: mongoClient,
		log:         log,
	}
}

// Health is a pure liveness signal; it deliberately performs no store access
// so a struggling database cannot fail the probe.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:      "healthy",
		Environment: h.environment,
		Version:     h.version,
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "error", err)
	}
}

// Ready reports whether the store round-trip works.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.mongoClient.Ping(ctx, nil); err != nil {
		h.log.Error("Database health check failed", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unavailable",
			Database: "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:   "ready",
		Database: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
