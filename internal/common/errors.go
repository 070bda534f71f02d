// Package common defines shared sentinel errors used across Memoria layers.
// Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors, expected in normal flow
	// (failed login, duplicate registration).
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Post-level errors (caption update on a missing post id).
	ErrorPostNotFound = errors.New("post not found")

	// Storage-level errors. ErrorDecode means the stored value is present but
	// does not parse as the expected shape; it is fatal for that key and must
	// never be papered over with an empty default.
	ErrorStorage = errors.New("storage failure")
	ErrorDecode  = errors.New("malformed stored record")

	// Validation errors (empty email/password at registration).
	ErrorInvalidInput = errors.New("invalid input")
)
