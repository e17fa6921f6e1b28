package llmprovider

import (
	"context"
	"strings"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "qwen", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request is a normalized text generation request. Model, when set, overrides the provider default.
type Request struct {
	System      string
	Messages    []Message
	Temperature float64
	MaxTokens   int
	Model       string
}

// Message is one conversation turn.
type Message struct {
	Role    string
	Content string
}

// Prompt builds a single-turn user request.
func Prompt(text string) *Request {
	return &Request{Messages: []Message{{Role: RoleUser, Content: text}}}
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

func (r *Request) validate() error {
	if r == nil || len(r.Messages) == 0 {
		return ErrInvalidRequest
	}
	for _, m := range r.Messages {
		if strings.TrimSpace(m.Content) != "" {
			return nil
		}
	}
	return ErrInvalidRequest
}
