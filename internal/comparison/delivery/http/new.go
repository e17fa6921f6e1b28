package http

import (
	"hr-assistant/internal/comparison"
	"hr-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc comparison.UseCase
}

// New creates a new HTTP handler for country comparisons.
func New(l log.Logger, uc comparison.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
