package registry

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrUnknownBackend reports an enable/disable call for a name that was
	// never registered. This is a configuration error and fails loudly.
	ErrUnknownBackend = errors.New("unknown backend")
)
