package service

import "errors"

var (
	// ErrNameTaken indicates a signup name collides case-insensitively with
	// an existing user.
	ErrNameTaken = errors.New("a user with that name already exists")
	// ErrInvalidRole indicates a signup named a role outside the known set.
	ErrInvalidRole = errors.New("unknown role")
	// ErrNoSession indicates an action that requires an active session was
	// invoked without one.
	ErrNoSession = errors.New("no active session")
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")
)
