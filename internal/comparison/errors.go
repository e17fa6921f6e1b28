package comparison

import "errors"

var (
	ErrNoCountries   = errors.New("at least one country is required")
	ErrInvalidDomain = errors.New("invalid comparison domain")
)
