// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package httpauth contains the HTTP-facing authorization front-ends: the
// path-exclusion gate deciding whether a request needs authentication at
// all, and the Authenticator variants (NoAuth, BasicAuth, CookieAuth) that
// resolve a request to a user.
//
// The package never grants access on ambiguous input: every parsing stage
// and lookup fails closed, returning "no identity" rather than an error the
// caller could mishandle.
package httpauth
