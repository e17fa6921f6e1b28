package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestBot(t *testing.T) {
	var (
		mu    sync.Mutex
		texts []string
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/setWebhook"):
			var req setWebhookRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.SecretToken == "" {
				w.Write([]byte(`{"ok":false,"error_code":400,"description":"secret required"}`))
				return
			}
			w.Write([]byte(`{"ok":true}`))
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var req sendMessageRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.ChatID == 0 {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok":false,"error_code":400,"description":"chat not found"}`))
				return
			}
			mu.Lock()
			texts = append(texts, req.Text)
			mu.Unlock()
			w.Write([]byte(`{"ok":true}`))
		case strings.HasSuffix(r.URL.Path, "/sendChatAction"):
			w.Write([]byte(`{"ok":true}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"ok":false,"error_code":404,"description":"Not Found"}`))
		}
	}))
	defer ts.Close()

	bot := NewBot("token")
	bot.SetAPIURL(ts.URL + "/bottoken")
	ctx := context.Background()

	t.Run("SetWebhook", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook/telegram", "s3cret"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := bot.SetWebhook(ctx, "https://example.com", ""); err == nil || !strings.Contains(err.Error(), "secret required") {
			t.Fatalf("expected API description in error, got %v", err)
		}
	})

	t.Run("SendMessage splits long text", func(t *testing.T) {
		long := strings.Repeat("勞", MaxMessageLength+10)
		if err := bot.SendMessage(ctx, 42, long); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		mu.Lock()
		defer mu.Unlock()
		if len(texts) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(texts))
		}
		if utf8.RuneCountInString(texts[0]) != MaxMessageLength || utf8.RuneCountInString(texts[1]) != 10 {
			t.Errorf("unexpected split sizes")
		}
	})

	t.Run("SendMessage error", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 0, "hi"); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("SendTyping", func(t *testing.T) {
		if err := bot.SendTyping(ctx, 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSplitMessagePrefersNewlines(t *testing.T) {
	text := strings.Repeat("a", 8) + "\n" + strings.Repeat("b", 5)
	parts := SplitMessage(text, 10)
	if len(parts) != 2 || parts[0] != strings.Repeat("a", 8)+"\n" || parts[1] != "bbbbb" {
		t.Errorf("got %q", parts)
	}
	if got := SplitMessage("short", 10); len(got) != 1 {
		t.Errorf("got %q", got)
	}
}
