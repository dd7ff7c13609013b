// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package httpauth

import "strings"

// WildcardMarker is the suffix that turns an excluded path into a prefix
// rule: "/api/v1/users/*" exempts every path under "/api/v1/users/".
const WildcardMarker = "*"

// RequiresAuth reports whether the given request path needs authentication,
// given the configured exclusion list. Rules are evaluated in order, first
// match wins:
//
//  1. An empty path requires auth (fail safe).
//  2. An empty exclusion list requires auth.
//  3. A path exactly equal to an entry is exempt.
//  4. For each entry: the entry being a prefix of the path, the path being
//     a prefix of the entry, or the entry carrying a trailing WildcardMarker
//     whose stem prefixes the path, all exempt.
//  5. Otherwise auth is required.
//
// Rule 4's "path is a prefix of the entry" direction exempts a shorter
// incoming path under a longer configured entry. That is deliberate policy,
// kept as configured deployments depend on it; do not "fix" it here without
// a policy review.
//
// Matching is case-sensitive with no normalization; callers wanting
// trailing-slash collapsing must normalize upstream.
func RequiresAuth(path string, excludedPaths []string) bool {
	if path == "" {
		return true
	}
	if len(excludedPaths) == 0 {
		return true
	}

	for _, excluded := range excludedPaths {
		if path == excluded {
			return false
		}
	}

	for _, excluded := range excludedPaths {
		switch {
		case strings.HasPrefix(excluded, path), strings.HasPrefix(path, excluded):
			return false
		case strings.HasSuffix(excluded, WildcardMarker) &&
			strings.HasPrefix(path, strings.TrimSuffix(excluded, WildcardMarker)):
			return false
		}
	}

	return true
}
