package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrEmbeddingMismatch = errors.New("embedding dimension mismatch")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)
