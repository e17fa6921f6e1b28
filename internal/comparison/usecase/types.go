package usecase

import "hr-assistant/internal/model"

// legalReply is the JSON a model returns for one law category.
type legalReply struct {
	Summary        string                `json:"summary"`
	KeyDifferences []model.KeyDifference `json:"key_differences"`
	Scores         map[string]float64    `json:"scores"`
}

// cacheKey is fingerprinted into the comparison cache key.
type cacheKey struct {
	Countries []string `json:"countries"`
	Domains   []string `json:"domains"`
	Focus     any      `json:"focus"`
}
