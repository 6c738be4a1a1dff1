package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// withTimeout cancels the request context after the configured request
// timeout. Store calls observe the cancellation; chi answers 504 when the
// deadline passes before the handler wrote anything.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	if h.requestTimeout <= 0 {
		return next
	}

	return middleware.Timeout(h.requestTimeout)(next)
}
