package testutil

import (
	"net/http"

	"hostelgate/pkg/requestcontext"
)

// WithSession puts an authenticated identity on the request context, as
// RequireSession would.
func WithSession(req *http.Request, sessionID, username, role string) *http.Request {
	return req.WithContext(requestcontext.WithSession(req.Context(), sessionID, username, role))
}

// WithBearer sets the Authorization header.
func WithBearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
