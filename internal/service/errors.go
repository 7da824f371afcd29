package service

import "errors"

// Sentinel errors returned by the services. Handlers translate these into the
// REST error contract; anything else is an internal failure.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)
