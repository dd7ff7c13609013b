// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/samber/oops"
)

// TokenBytes is the entropy of a session or reset token: 128 bits, encoded
// to 32 hex characters.
const TokenBytes = 16

// GenerateToken creates an unpredictable opaque token. Tokens are stored
// verbatim on the user record and looked up by exact value, so the only
// requirement is entropy, not a parseable structure.
func GenerateToken() (string, error) {
	b := make([]byte, TokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", oops.Code("AUTH_TOKEN_GENERATE_FAILED").
			With("operation", "crypto/rand.Read").
			With("requested_bytes", TokenBytes).
			Wrap(err)
	}
	return hex.EncodeToString(b), nil
}
