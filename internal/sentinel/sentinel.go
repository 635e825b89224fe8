package sentinel

import "errors"

// Sentinel dependency errors. Stores return these (optionally wrapped) so
// services translate them into domain errors exactly once.
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used")
	ErrExpired     = errors.New("expired")
)
