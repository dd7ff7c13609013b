// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package httpauth

import (
	"context"
	"net/http"

	"github.com/holomush/gatekeeper/internal/auth"
)

// Authenticator is the capability shared by every authorization scheme:
// extract the raw credential material from a request, and resolve the
// request to a user. New schemes implement this interface; callers never
// change.
//
// CurrentUser returns nil for "no identity" - it never distinguishes
// malformed credentials, unknown users, and wrong passwords.
type Authenticator interface {
	// AuthorizationHeader returns the request's Authorization header
	// value, or "" when absent.
	AuthorizationHeader(r *http.Request) string

	// CurrentUser resolves the request's credentials to a user, or nil.
	CurrentUser(ctx context.Context, r *http.Request) *auth.User
}

// authorizationHeader is the shared header extraction used by all schemes.
func authorizationHeader(r *http.Request) string {
	if r == nil {
		return ""
	}
	return r.Header.Get("Authorization")
}

// NoAuth is the null scheme: it reads headers like any other scheme but
// never yields an identity. It backs deployments where the gate excludes
// every path.
type NoAuth struct{}

// AuthorizationHeader returns the request's Authorization header value.
func (NoAuth) AuthorizationHeader(r *http.Request) string {
	return authorizationHeader(r)
}

// CurrentUser always returns nil.
func (NoAuth) CurrentUser(context.Context, *http.Request) *auth.User {
	return nil
}

// Compile-time interface check.
var _ Authenticator = NoAuth{}
