package registrar

import "errors"

// Typed registration failures. Register validates and fails fast before any
// write, so every error except ErrPersistence means the artifacts on disk
// were not touched.
var (
	// ErrInvalidName indicates a name that is not a usable tool identifier
	ErrInvalidName = errors.New("invalid tool name")

	// ErrDuplicateName indicates the name is already taken by a registered
	// or built-in tool
	ErrDuplicateName = errors.New("tool name already registered")

	// ErrMalformedURL indicates an API URL the host cannot be derived from
	ErrMalformedURL = errors.New("malformed API URL")

	// ErrPersistence indicates an I/O failure writing the definition or the
	// roster manifest
	ErrPersistence = errors.New("failed to persist tool definition")
)
