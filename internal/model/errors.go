package model

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every layer.
var (
	// ErrNotFound is returned when a context or cache id is unknown.
	ErrNotFound = errors.New("not found")

	// ErrNotInitialized is returned when a model variant has no live handle yet.
	ErrNotInitialized = errors.New("model not initialized")

	// ErrMalformedModelOutput is returned when a JSON-producing model step replies with text
	// that does not decode into the expected structure. Callers always swallow it.
	ErrMalformedModelOutput = errors.New("malformed model output")
)

// Upstream sources.
const (
	SourceRetrieval = "retrieval"
	SourceLLM       = "llm"
	SourceKnowledge = "knowledge_graph"
)

// UpstreamError wraps any failure raised by the retrieval backend, an LLM backend or the knowledge graph.
type UpstreamError struct {
	Source string
	Err    error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s: %v", e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// Upstream wraps err as an UpstreamError. It returns nil for a nil err and
// does not double-wrap.
func Upstream(source string, err error) error {
	if err == nil {
		return nil
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return err
	}
	return &UpstreamError{Source: source, Err: err}
}

// IsUpstream reports whether err came from an external collaborator.
func IsUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue)
}
