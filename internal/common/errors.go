// Package common defines shared constants and sentinel errors used across
// the server, the terminal client and the presentation engine. Callers should
// use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors.
	ErrorValidation         = errors.New("validation error")
	ErrorUnknownUpgradeKind = errors.New("unknown upgrade kind")

	// Upgrades can only be purchased by entertainers.
	ErrorNotEntertainer = errors.New("upgrades are available to entertainers only")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Hosted backend rejected the request.
	ErrorBackend = errors.New("backend error")
)
