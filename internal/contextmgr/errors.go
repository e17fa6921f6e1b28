package contextmgr

import "errors"

var (
	ErrEmptyQuery   = errors.New("query is required")
	ErrEmptyContent = errors.New("attached document content is required")
)
