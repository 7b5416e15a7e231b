package services

import "errors"

// Sentinel errors dispatched with errors.Is at the handler boundary.
// Handlers own the mapping to HTTP status codes; services never see
// status codes.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrInvalidRole        = errors.New("role must be 'hr' or 'guest'")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrJobRoleNotFound    = errors.New("job role not found")
)
