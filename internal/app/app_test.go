package app

import (
	"testing"

	"hr-assistant/config"
	"hr-assistant/pkg/log"
)

func TestNewEmbedder(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.EmbeddingConfig
		wantErr bool
	}{
		{"voyage default", config.EmbeddingConfig{APIKey: "k"}, false},
		{"voyage explicit", config.EmbeddingConfig{Provider: "Voyage", APIKey: "k"}, false},
		{"openai", config.EmbeddingConfig{Provider: "openai", APIKey: "k", Dimensions: 1024}, false},
		{"missing key", config.EmbeddingConfig{Provider: "voyage"}, true},
		{"unknown", config.EmbeddingConfig{Provider: "cohere", APIKey: "k"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEmbedder(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && e == nil {
				t.Fatal("nil embedder")
			}
		})
	}
}

func TestOpenKnowledge(t *testing.T) {
	cfg := &config.Config{Knowledge: config.KnowledgeConfig{DSN: ":memory:"}}
	db, repo, err := OpenKnowledge(cfg, log.NewNop())
	if err != nil {
		t.Fatalf("OpenKnowledge: %v", err)
	}
	defer db.Close()
	if repo == nil {
		t.Fatal("nil repository")
	}
}
