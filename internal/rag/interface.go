package rag

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Answer retrieves context, routes to a model and answers with source attribution.
	Answer(ctx context.Context, input AnswerInput) (AnswerOutput, error)
	// Analyze grades query complexity and suggests how many chunks to retrieve.
	Analyze(ctx context.Context, query string) (Analysis, error)
	// Ingest splits a document into chunks and stores them in the retrieval backend.
	Ingest(ctx context.Context, input IngestInput) (IngestOutput, error)
}
