package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrInteractionNotFound = errors.New("interaction not found")
)
