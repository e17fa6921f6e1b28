package voyage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-assistant/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Provided API key is invalid."}`))
			return
		}

		var req struct {
			Input []string `json:"input"`
			Model string   `json:"model"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if req.Input[0] == "short" {
			w.Write([]byte(`{"data":[]}`))
			return
		}

		w.Write([]byte(`{
			"object": "list",
			"data": [
				{"embedding": [0.4, 0.5], "index": 1},
				{"embedding": [0.1, 0.2], "index": 0}
			],
			"model": "` + req.Model + `"
		}`))
	}))
	defer ts.Close()

	ctx := context.Background()
	client, err := voyage.New(voyage.Config{APIKey: "test-voyage-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatal(err)
	}

	t.Run("Success keeps input order", func(t *testing.T) {
		vecs, err := client.Embed(ctx, []string{"勞基法", "特休"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if vecs[0][0] != 0.1 || vecs[1][0] != 0.4 {
			t.Errorf("unexpected vectors: %v", vecs)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		if _, err := client.Embed(ctx, nil); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("Count mismatch", func(t *testing.T) {
		if _, err := client.Embed(ctx, []string{"short"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("Server error", func(t *testing.T) {
		if _, err := client.Embed(ctx, []string{"cause_500"}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("Bad key surfaces detail", func(t *testing.T) {
		bad, _ := voyage.New(voyage.Config{APIKey: "wrong", BaseURL: ts.URL})
		_, err := bad.Embed(ctx, []string{"x"})
		if err == nil || !strings.Contains(err.Error(), "invalid") {
			t.Fatalf("expected detail in error, got %v", err)
		}
	})

	t.Run("Missing key", func(t *testing.T) {
		if _, err := voyage.New(voyage.Config{}); err == nil {
			t.Fatal("expected error")
		}
	})
}
