package openai

import "context"

// IOpenAI covers chat completion and embeddings against any OpenAI-compatible endpoint.
type IOpenAI interface {
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
}

// New creates a client. BaseURL may point at an OpenAI-compatible gateway.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
