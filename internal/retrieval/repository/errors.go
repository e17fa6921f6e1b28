package repository

import "errors"

var (
	ErrEmptyQuery        = errors.New("empty query")
	ErrEmbeddingMismatch = errors.New("embedding count does not match input")
)
