package service

import "errors"

// Sentinel errors handlers map to HTTP statuses
var (
	// ErrNotFound marks lookups of absent entities (404).
	ErrNotFound = errors.New("resource not found")
	// ErrImageRequired marks creates missing their mandatory image (400).
	ErrImageRequired = errors.New("image file is required")
	// ErrInvalidCredentials covers both unknown email and wrong password
	// so the login response never reveals which one failed (401).
	ErrInvalidCredentials = errors.New("invalid email or password")
)
