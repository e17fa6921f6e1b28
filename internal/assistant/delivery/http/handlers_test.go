package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/assistant"
	"hr-assistant/internal/model"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/response"
)

type fakeUseCase struct {
	err     error
	cleared []string
}

func (f *fakeUseCase) Generate(_ context.Context, in assistant.GenerateInput) (assistant.GenerateOutput, error) {
	if f.err != nil {
		return assistant.GenerateOutput{}, f.err
	}
	return assistant.GenerateOutput{Response: "ok", ModelID: model.ModelFast}, nil
}

func (f *fakeUseCase) History(_ context.Context, contextType string) []assistant.Turn {
	if contextType == "legal" {
		return []assistant.Turn{{Query: "q", Response: "a"}}
	}
	return nil
}

func (f *fakeUseCase) ClearHistory(_ context.Context, contextType string) {
	f.cleared = append(f.cleared, contextType)
}

func serve(uc assistant.UseCase, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/assistant"), New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestAssistantRoutes(t *testing.T) {
	tests := []struct {
		name   string
		uc     *fakeUseCase
		method string
		path   string
		body   string
		want   int
	}{
		{"chat", &fakeUseCase{}, http.MethodPost, "/api/v1/assistant/chat", `{"query":"hi"}`, http.StatusOK},
		{"chat missing query", &fakeUseCase{}, http.MethodPost, "/api/v1/assistant/chat", `{"context_type":"x"}`, http.StatusBadRequest},
		{"chat upstream", &fakeUseCase{err: model.Upstream(model.SourceLLM, context.DeadlineExceeded)}, http.MethodPost, "/api/v1/assistant/chat", `{"query":"hi"}`, http.StatusBadGateway},
		{"history", &fakeUseCase{}, http.MethodGet, "/api/v1/assistant/history/legal", "", http.StatusOK},
		{"clear", &fakeUseCase{}, http.MethodDelete, "/api/v1/assistant/history?type=legal", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := serve(tt.uc, tt.method, tt.path, tt.body)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}

	t.Run("empty history is an array", func(t *testing.T) {
		_, resp := serve(&fakeUseCase{}, http.MethodGet, "/api/v1/assistant/history/tax", "")
		data, _ := resp.Data.(map[string]any)
		if turns, ok := data["turns"].([]any); !ok || len(turns) != 0 {
			t.Errorf("unexpected data %v", resp.Data)
		}
	})

	t.Run("clear without type clears all", func(t *testing.T) {
		uc := &fakeUseCase{}
		serve(uc, http.MethodDelete, "/api/v1/assistant/history", "")
		if len(uc.cleared) != 1 || uc.cleared[0] != "" {
			t.Errorf("unexpected clears %v", uc.cleared)
		}
	})
}
