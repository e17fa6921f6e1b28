package repository

import "errors"

var (
	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrUnsupportedFilter = errors.New("unsupported filter value")
	ErrInvalidFilterKey  = errors.New("invalid filter key")
)
