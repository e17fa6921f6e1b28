package model

import "time"

// Complexity is the heuristic task complexity.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// Ordinal maps complexity onto [0,1] so similarity can be compared numerically.
func (c Complexity) Ordinal() float64 {
	switch c {
	case ComplexityHigh:
		return 1
	case ComplexityMedium:
		return 0.5
	default:
		return 0
	}
}

// TaskFeatures are the per-query features used for routing.
type TaskFeatures struct {
	QueryLength int        `json:"query_length"`
	Complexity  Complexity `json:"complexity"`
	TaskType    string     `json:"task_type"`
}

// RoutingDecision is one entry of the router's bounded history.
type RoutingDecision struct {
	Timestamp     time.Time    `json:"timestamp"`
	Query         string       `json:"query"`
	TaskType      string       `json:"task_type"`
	SelectedModel ModelID      `json:"selected_model"`
	Features      TaskFeatures `json:"features"`
}
