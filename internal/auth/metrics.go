// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Status constants for auth operation metrics.
const (
	StatusSuccess       = "success"
	StatusInvalid       = "invalid"
	StatusNotFound      = "not_found"
	StatusAlreadyExists = "already_exists"
	StatusError         = "error"
)

// Registrations counts registration attempts by outcome.
// Use RegisterMetrics to register this with a Prometheus registry.
var Registrations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gatekeeper_registrations_total",
		Help: "Total number of registration attempts",
	},
	[]string{"status"},
)

// LoginAttempts counts credential checks by outcome. The "invalid" status
// covers both unknown users and wrong passwords; the two are deliberately
// not distinguished anywhere, metrics included.
var LoginAttempts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gatekeeper_login_attempts_total",
		Help: "Total number of login credential checks",
	},
	[]string{"status"},
)

// SessionsCreated counts issued session tokens.
var SessionsCreated = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "gatekeeper_sessions_created_total",
		Help: "Total number of session tokens issued",
	},
)

// SessionsDestroyed counts destroyed sessions.
var SessionsDestroyed = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "gatekeeper_sessions_destroyed_total",
		Help: "Total number of sessions destroyed",
	},
)

// ResetTokensIssued counts reset-token issuances by outcome.
var ResetTokensIssued = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gatekeeper_reset_tokens_issued_total",
		Help: "Total number of password-reset tokens issued",
	},
	[]string{"status"},
)

// ResetRedemptions counts reset-token redemptions by outcome.
var ResetRedemptions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "gatekeeper_reset_redemptions_total",
		Help: "Total number of password-reset redemptions",
	},
	[]string{"status"},
)

// RegisterMetrics registers auth package metrics with the given Prometheus
// registry. Call once at startup. Panics if registration fails (following
// prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		Registrations,
		LoginAttempts,
		SessionsCreated,
		SessionsDestroyed,
		ResetTokensIssued,
		ResetRedemptions,
	)
}

// RecordRegistration increments the registration counter.
func RecordRegistration(status string) {
	Registrations.WithLabelValues(status).Inc()
}

// RecordLogin increments the login-attempt counter.
func RecordLogin(status string) {
	LoginAttempts.WithLabelValues(status).Inc()
}

// RecordSessionCreated increments the sessions-created counter.
func RecordSessionCreated() {
	SessionsCreated.Inc()
}

// RecordSessionDestroyed increments the sessions-destroyed counter.
func RecordSessionDestroyed() {
	SessionsDestroyed.Inc()
}

// RecordResetIssued increments the reset-token issuance counter.
func RecordResetIssued(status string) {
	ResetTokensIssued.WithLabelValues(status).Inc()
}

// RecordResetRedeemed increments the reset redemption counter.
func RecordResetRedeemed(status string) {
	ResetRedemptions.WithLabelValues(status).Inc()
}
