package contextmgr

import "hr-assistant/internal/model"

// --- UseCase Inputs ---

type CreateInput struct {
	Query       string
	ContextType string
	// Metadata seeds the global context.
	Metadata map[string]any
	// TopK overrides the configured retrieval depth when positive.
	TopK int
}

type UpdateInput struct {
	// Global is merged into the global context, last write wins.
	Global    map[string]any
	Documents []AttachedDocument
}

// AttachedDocument becomes a secondary window. A nil RelevanceScore means DefaultAttachedRelevance.
type AttachedDocument struct {
	Content        string
	Metadata       map[string]any
	RelevanceScore *float64
	Source         string
}

// --- UseCase Outputs ---

type CreateOutput struct {
	ID      string
	Context model.ModelContext
}

// Summary counts windows per tier. SourceNames lists primary then secondary sources.
type Summary struct {
	PrimarySources    int      `json:"primary_sources"`
	SecondarySources  int      `json:"secondary_sources"`
	TotalTokens       int      `json:"total_tokens"`
	GlobalContextKeys []string `json:"global_context_keys"`
	SourceNames       []string `json:"source_names"`
}
