// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package httpauth

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/samber/oops"

	"github.com/holomush/gatekeeper/internal/auth"
)

// basicPrefix is the scheme marker an Authorization header must carry
// for Basic extraction to apply.
const basicPrefix = "Basic "

// BasicAuth resolves requests carrying RFC 7617 Basic credentials.
// Each stage of the pipeline is exposed as its own function so tests
// and other schemes can reuse the parsing without a store.
type BasicAuth struct {
	store  auth.UserStore
	hasher auth.PasswordHasher
}

// NewBasicAuth creates a Basic authorization scheme backed by the given
// store and hasher.
func NewBasicAuth(store auth.UserStore, hasher auth.PasswordHasher) (*BasicAuth, error) {
	if store == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("user store is required")
	}
	if hasher == nil {
		return nil, oops.Code("AUTH_NIL_DEPENDENCY").Errorf("password hasher is required")
	}
	return &BasicAuth{store: store, hasher: hasher}, nil
}

// AuthorizationHeader returns the request's Authorization header value.
func (b *BasicAuth) AuthorizationHeader(r *http.Request) string {
	return authorizationHeader(r)
}

// ExtractEncoded strips the "Basic " scheme marker from a header value
// and returns the base64 payload. The prefix match is exact: no extra
// whitespace, no case folding. An empty payload after the marker is
// still a valid extraction.
func ExtractEncoded(header string) (string, bool) {
	if !strings.HasPrefix(header, basicPrefix) {
		return "", false
	}
	return header[len(basicPrefix):], true
}

// DecodeCredentials decodes a base64 payload into the "user:password"
// form. Payloads that are not valid standard base64, or whose decoded
// bytes are not valid UTF-8, yield no credentials.
func DecodeCredentials(encoded string) (string, bool) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(raw) {
		return "", false
	}
	return string(raw), true
}

// SplitCredentials splits decoded credentials on the first colon. The
// password keeps any further colons; an empty username is legal. Input
// without a colon yields no credentials.
func SplitCredentials(decoded string) (string, string, bool) {
	email, password, ok := strings.Cut(decoded, ":")
	if !ok {
		return "", "", false
	}
	return email, password, true
}

// ResolveUser looks up the user by email and verifies the password.
// Unknown users, store failures, and wrong passwords all collapse to
// nil so callers leak nothing about which check failed.
func (b *BasicAuth) ResolveUser(ctx context.Context, email, password string) *auth.User {
	user, err := b.store.GetByEmail(ctx, email)
	if err != nil {
		return nil
	}
	if !b.hasher.Verify(user.HashedPassword, password) {
		return nil
	}
	return user
}

// CurrentUser runs the full Basic pipeline: header, scheme marker,
// base64 decode, credential split, lookup, verify. Any failed stage
// short-circuits to nil.
func (b *BasicAuth) CurrentUser(ctx context.Context, r *http.Request) *auth.User {
	encoded, ok := ExtractEncoded(b.AuthorizationHeader(r))
	if !ok {
		return nil
	}
	decoded, ok := DecodeCredentials(encoded)
	if !ok {
		return nil
	}
	email, password, ok := SplitCredentials(decoded)
	if !ok {
		return nil
	}
	return b.ResolveUser(ctx, email, password)
}

var _ Authenticator = (*BasicAuth)(nil)
