package cmdline

import "slices"

// CheckForValues returns `value` if it's one of `allowed` and an ErrValueNotAllowed error otherwise.
// It's intended for handlers that validate tokens themselves; Parse reports such an error as
// ErrInvalidValue keeping ErrValueNotAllowed in the chain.
func CheckForValues(value string, allowed ...string) (string, error) {
	if !slices.Contains(allowed, value) {
		return "", valueNotAllowedError(value, allowed)
	}
	return value, nil
}
