package openai

import (
	"fmt"
	"net/http"
)

const (
	DefaultModel          = "gpt-4o"
	DefaultEmbeddingModel = "text-embedding-3-small"
)

// Config holds client configuration. EmbeddingDimensions 0 keeps the model default.
type Config struct {
	APIKey              string
	BaseURL             string
	Model               string
	EmbeddingModel      string
	EmbeddingDimensions int
	HTTPClient          *http.Client
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.EmbeddingModel == "" {
		c.EmbeddingModel = DefaultEmbeddingModel
	}
	return nil
}

type Message struct {
	Role    string
	Content string
}

type ChatRequest struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
	Model       string
}

type ChatResponse struct {
	Text  string
	Model string
	Usage Usage
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
