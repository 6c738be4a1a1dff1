// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-green-pledge/internal/logger"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers a known path with an unregistered method with 405 Method Not
// Allowed. CheckHTTPMethod answers with 404 Not Found instead, so callers
// using an unsupported method cannot tell the route exists. Chi propagates
// the handler to every sub-router mounted with Route.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("unsupported method")
	w.WriteHeader(http.StatusNotFound)
}
