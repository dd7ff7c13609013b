// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package httpauth

import (
	"context"
	"net/http"

	"github.com/samber/oops"

	"github.com/holomush/gatekeeper/internal/auth"
)

// SessionCookieName is the cookie carrying the session identifier.
const SessionCookieName = "session_id"

// CookieAuth resolves requests through a session cookie instead of an
// Authorization header. Extraction and resolution both fail closed.
type CookieAuth struct {
	sessions *auth.SessionService
}

// NewCookieAuth creates a cookie-based authorization scheme on top of
// the session service.
func NewCookieAuth(sessions *auth.SessionService) (*CookieAuth, error) {
	if sessions == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("session service is required")
	}
	return &CookieAuth{sessions: sessions}, nil
}

// AuthorizationHeader returns the request's Authorization header value.
// Cookie auth never reads it, but the scheme contract still exposes it.
func (c *CookieAuth) AuthorizationHeader(r *http.Request) string {
	return authorizationHeader(r)
}

// SessionCookie returns the session cookie's value, or "" when the
// request carries none.
func (c *CookieAuth) SessionCookie(r *http.Request) string {
	if r == nil {
		return ""
	}
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// CurrentUser resolves the session cookie to a user, or nil.
func (c *CookieAuth) CurrentUser(ctx context.Context, r *http.Request) *auth.User {
	sessionID := c.SessionCookie(r)
	if sessionID == "" {
		return nil
	}
	return c.sessions.Resolve(ctx, sessionID)
}

var _ Authenticator = (*CookieAuth)(nil)
