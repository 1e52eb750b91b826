package repository

import "errors"

// Sentinel errors returned by repositories. Simple absence is a normal
// outcome and must be distinguishable from infrastructure failures; callers
// branch with errors.Is instead of inspecting driver errors.
var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already in use")
)
