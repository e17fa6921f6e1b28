package model

import (
	"encoding/json"
	"maps"
	"unicode/utf8"
)

// DefaultMaxContextLength bounds primary+secondary content, in characters.
const DefaultMaxContextLength = 4096

// ContextWindow is a single scored, sourced snippet of retrieved text.
type ContextWindow struct {
	Content        string         `json:"content"`
	Metadata       map[string]any `json:"metadata"`
	RelevanceScore float64        `json:"relevance_score"`
	Source         string         `json:"source"`
	Timestamp      string         `json:"timestamp"`
}

// ModelContext is a bounded two-tier context window plus free-form global context.
type ModelContext struct {
	Primary          []ContextWindow `json:"primary_context"`
	Secondary        []ContextWindow `json:"secondary_context"`
	Global           map[string]any  `json:"global_context"`
	MaxContextLength int             `json:"max_context_length"`
}

// NewModelContext returns an empty context with the given limit (default when <= 0).
func NewModelContext(maxLen int) ModelContext {
	if maxLen <= 0 {
		maxLen = DefaultMaxContextLength
	}
	return ModelContext{
		Primary:          []ContextWindow{},
		Secondary:        []ContextWindow{},
		Global:           map[string]any{},
		MaxContextLength: maxLen,
	}
}

// ContentLength is the total character count of primary and secondary content.
func (c ModelContext) ContentLength() int {
	n := 0
	for _, w := range c.Primary {
		n += utf8.RuneCountInString(w.Content)
	}
	for _, w := range c.Secondary {
		n += utf8.RuneCountInString(w.Content)
	}
	return n
}

// SerializedLength is the total character count of every primary and secondary
// window encoded as JSON, metadata included. Routing measures context with it.
func (c ModelContext) SerializedLength() int {
	n := 0
	for _, ws := range [][]ContextWindow{c.Primary, c.Secondary} {
		for _, w := range ws {
			b, err := json.Marshal(w)
			if err != nil {
				// Unencodable metadata still counts its content.
				n += utf8.RuneCountInString(w.Content)
				continue
			}
			n += utf8.RuneCount(b)
		}
	}
	return n
}

// Clone returns a deep-enough copy: slices and top-level maps are not shared.
func (c ModelContext) Clone() ModelContext {
	out := ModelContext{
		Primary:          cloneWindows(c.Primary),
		Secondary:        cloneWindows(c.Secondary),
		Global:           maps.Clone(c.Global),
		MaxContextLength: c.MaxContextLength,
	}
	if out.Global == nil {
		out.Global = map[string]any{}
	}
	return out
}

func cloneWindows(ws []ContextWindow) []ContextWindow {
	out := make([]ContextWindow, len(ws))
	for i, w := range ws {
		w.Metadata = maps.Clone(w.Metadata)
		out[i] = w
	}
	return out
}

// Document is the unit stored in and returned by the retrieval backend.
type Document struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// ScoredDocument is a similarity search hit.
type ScoredDocument struct {
	Document
	Score float64 `json:"score"`
}
