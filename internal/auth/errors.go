// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import "errors"

// ErrNotFound is returned when a requested user or token does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when registration collides with an existing
// email address.
var ErrAlreadyExists = errors.New("already exists")

// ErrInvalidInput is returned when a required field is empty.
var ErrInvalidInput = errors.New("invalid input")
