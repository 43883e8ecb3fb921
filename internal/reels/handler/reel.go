package handler

import (
	"encoding/json"
	"net/http"

	"dreamshoots/internal/reels/service"
	apperrors "dreamshoots/pkg/errors"
	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"
	"dreamshoots/pkg/middleware"
	"dreamshoots/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type ReelHandler struct {
	service service.ReelService
	guard   *middleware.AdminGuard
	log     *logger.Logger
}

func NewReelHandler(service service.ReelService, guard *middleware.AdminGuard, log *logger.Logger) *ReelHandler {
	return &ReelHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

// GetAll serves the public gallery.
func (h *ReelHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	reels, err := h.service.GetAll(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reels); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "error", err)
	}
}

func (h *ReelHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input model.ReelInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	reel, err := h.service.Create(r.Context(), &input)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, reel); err != nil {
		h.log.Error("failed to write success response", "handler", "Create", "error", err)
	}
}

func (h *ReelHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteMessage(w, "Reel deleted"); err != nil {
		h.log.Error("failed to write message response", "handler", "Delete", "error", err)
	}
}

func (h *ReelHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/reels", h.GetAll)
	router.POST("/api/reels", h.guard.Protect(h.Create))
	router.DELETE("/api/reels/:id", h.guard.Protect(h.Delete))
}
