// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// methodNotAllowed is registered as the router's MethodNotAllowed handler
// via [chi.Mux.MethodNotAllowed].
//
// Chi's default behaviour is to respond with HTTP 405 Method Not Allowed
// whenever a request path matches a registered route but the HTTP method
// is not handled. This handler overrides that behaviour and answers with the
// regular 404 JSON body, hiding the existence of the route from callers
// that use an unsupported method. HEAD requests never reach it because
// middleware.GetHead routes them to the GET handlers.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, fmt.Errorf("%w: %s %s", ErrMethodNotAllowed, r.Method, r.URL.Path))
}
