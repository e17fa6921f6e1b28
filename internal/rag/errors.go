package rag

import "errors"

var (
	ErrEmptyQuery    = errors.New("query is required")
	ErrEmptyDocument = errors.New("document text is required")
	ErrEmptySource   = errors.New("document source is required")
)
