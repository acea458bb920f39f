package core

import "errors"

// Sentinel errors shared across the tool layer. Callers match with errors.Is
// and map them to short user-facing messages.
var (
	// ErrToolNotFound indicates a lookup for a name no enabled category provides
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolExists indicates a registration collision on a tool name
	ErrToolExists = errors.New("tool already exists")

	// ErrInvalidInput indicates tool input that failed validation
	ErrInvalidInput = errors.New("invalid tool input")

	// ErrCredentialMissing indicates a required credential environment variable is unset
	ErrCredentialMissing = errors.New("credential not set")

	// ErrRemoteCall indicates a network or remote API failure
	ErrRemoteCall = errors.New("remote call failed")

	// ErrNotFound indicates a lookup miss inside a tool's own state
	ErrNotFound = errors.New("entry not found")
)
