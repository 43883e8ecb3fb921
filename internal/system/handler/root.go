package handler

import (
	"net/http"

	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const serviceMessage = "Dream Shoots API"

// RootHandler serves the public service-identity endpoint under the API prefix.
type RootHandler struct {
	log *logger.Logger
}

func NewRootHandler(log *logger.Logger) *RootHandler {
	return &RootHandler{log: log}
}

func (h *RootHandler) Root(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteMessage(w, serviceMessage); err != nil {
		h.log.Error("failed to write message response", "handler", "Root", "error", err)
	}
}

func (h *RootHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api", h.Root)
	router.GET("/api/", h.Root)
}
