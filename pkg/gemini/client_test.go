package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-assistant/pkg/gemini"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}
}

func TestGenerateContent(t *testing.T) {
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotBody = map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		contents := gotBody["contents"].([]any)
		first := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"]
		if first == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "台灣"}, {"text": "勞基法"}]}}],
			"usageMetadata": {"promptTokenCount": 5, "candidatesTokenCount": 3, "totalTokenCount": 8}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			System:      "你是HR顧問",
			Messages:    []gemini.Message{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}},
			Temperature: 0.7,
			MaxTokens:   100,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "台灣勞基法" {
			t.Errorf("text = %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 8 || resp.Model != "gemini-test" {
			t.Errorf("unexpected response meta: %+v", resp)
		}
		if _, ok := gotBody["systemInstruction"]; !ok {
			t.Error("system instruction not sent")
		}
		second := gotBody["contents"].([]any)[1].(map[string]any)
		if second["role"] != "model" {
			t.Errorf("assistant role should map to model, got %v", second["role"])
		}
		gen := gotBody["generationConfig"].(map[string]any)
		if gen["maxOutputTokens"].(float64) != 100 {
			t.Errorf("generation config = %v", gen)
		}
	})

	t.Run("server error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Message{{Role: "user", Content: "cause_500"}},
		})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
	})
}
