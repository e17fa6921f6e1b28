package http

import (
	"hr-assistant/internal/rag"
	"hr-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc rag.UseCase
}

// New creates a new HTTP handler for question answering and ingestion.
func New(l log.Logger, uc rag.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
