package strategy

import "errors"

var (
	ErrEmptyCompany = errors.New("company name is required")
	ErrNoCountries  = errors.New("at least one target country is required")
)
