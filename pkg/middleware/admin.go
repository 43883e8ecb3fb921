package middleware

import (
	"crypto/subtle"
	"net/http"

	apperrors "dreamshoots/pkg/errors"
	httputil "dreamshoots/pkg/http"
	"dreamshoots/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const AdminTokenHeader = "X-Admin-Token"

// AdminGuard authorizes admin-only operations via the shared-secret header.
// Outside production every request passes, so local development needs no token.
type AdminGuard struct {
	production bool
	token      string
	log        *logger.Logger
}

func NewAdminGuard(production bool, token string, log *logger.Logger) *AdminGuard {
	return &AdminGuard{
		production: production,
		token:      token,
		log:        log,
	}
}

// Protect wraps a route handler with the admin token check.
func (g *AdminGuard) Protect(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if err := g.Authorize(r); err != nil {
			_ = httputil.WriteError(w, err)
			return
		}
		next(w, r, ps)
	}
}

// Authorize checks the request credential. The raw tokens are never logged,
// only their lengths.
func (g *AdminGuard) Authorize(r *http.Request) error {
	if !g.production {
		return nil
	}

	received := r.Header.Get(AdminTokenHeader)
	if received == "" {
		g.log.Warn("Missing admin token header",
			"request_id", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
		)
		return apperrors.Unauthorized("Unauthorized: Missing token")
	}

	if subtle.ConstantTimeCompare([]byte(received), []byte(g.token)) != 1 {
		g.log.Warn("Admin token mismatch",
			"request_id", RequestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"received_len", len(received),
			"expected_len", len(g.token),
		)
		return apperrors.Unauthorized("Unauthorized: Token mismatch")
	}

	return nil
}
