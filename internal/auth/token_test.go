// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/gatekeeper/internal/auth"
)

func TestGenerateToken_Format(t *testing.T) {
	token, err := auth.GenerateToken()
	require.NoError(t, err)

	assert.Len(t, token, auth.TokenBytes*2)
	_, err = hex.DecodeString(token)
	assert.NoError(t, err, "token must be lowercase hex")
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 64 {
		token, err := auth.GenerateToken()
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup, "token %q generated twice", token)
		seen[token] = struct{}{}
	}
}
