package repository

import "errors"

// Sentinel errors returned by repository implementations so callers can
// branch with errors.Is without depending on the storage driver.
var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
)
