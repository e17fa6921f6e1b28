package rag

import (
	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
)

// --- UseCase Inputs ---

type AnswerInput struct {
	Query       string
	ContextType string
	TaskType    string
}

type IngestInput struct {
	Text    string
	Source  string
	DocType string
}

// --- UseCase Outputs ---

// Source is a primary window cited by an answer.
type Source struct {
	Content   string  `json:"content"`
	Source    string  `json:"source"`
	Relevance float64 `json:"relevance"`
}

type AnswerOutput struct {
	Answer    string
	ModelID   model.ModelID
	Sources   []Source
	ContextID string
	Summary   contextmgr.Summary
	Analysis  Analysis
}

// QueryComplexity grades how much retrieved material a question needs.
type QueryComplexity string

const (
	ComplexitySimple   QueryComplexity = "simple"
	ComplexityModerate QueryComplexity = "moderate"
	ComplexityComplex  QueryComplexity = "complex"
	ComplexityExpert   QueryComplexity = "expert"
)

// Analysis is the outcome of grading a query.
type Analysis struct {
	Complexity      QueryComplexity `json:"complexity"`
	SuggestedChunks int             `json:"suggested_chunks"`
	Topics          []string        `json:"topics"`
	Keywords        []string        `json:"keywords"`
	Confidence      float64         `json:"confidence_score"`
	Reasoning       string          `json:"reasoning"`
}

type IngestOutput struct {
	Chunks int
}
