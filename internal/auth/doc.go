// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package auth provides the authentication and session-lifecycle core for
// Gatekeeper.
//
// # Domain Types
//
// User is the account record. It is owned by a UserStore implementation
// (Postgres or in-memory); services reference users by value and mutate them
// through the store's explicit update methods only.
//
// # Services
//
// Service types coordinate domain operations:
//   - SessionService - registration, credential checks, session tokens
//   - PasswordResetService - reset-token issuance and redemption
//
// Services are created with New*Service constructors that validate
// dependencies. Both depend on a PasswordHasher and a UserStore; neither
// holds state between calls, so a single instance is shared across requests.
package auth
