package docs

import (
	"encoding/json"
	"testing"
)

func TestReadDoc(t *testing.T) {
	var doc struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("doc is not valid JSON: %v", err)
	}
	if doc.Swagger != "2.0" {
		t.Errorf("swagger = %q", doc.Swagger)
	}
	for _, p := range []string{"/api/v1/rag/query", "/api/v1/contexts/{id}/summary", "/api/v1/models", "/api/v1/models/health", "/api/v1/rag/analyze"} {
		if _, ok := doc.Paths[p]; !ok {
			t.Errorf("missing path %s", p)
		}
	}
}
