package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-assistant/config"
	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/middleware"
	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	mrUC "hr-assistant/internal/modelregistry/usecase"
	"hr-assistant/internal/router"
	"hr-assistant/pkg/log"
)

type stubHandle struct{ id model.ModelID }

func (h stubHandle) ID() model.ModelID { return h.id }
func (h stubHandle) Predict(context.Context, string) (string, error) {
	return "ok", nil
}
func (h stubHandle) Generate(_ context.Context, prompts []string) ([]string, error) {
	return make([]string, len(prompts)), nil
}

type stubContexts struct{}

func (stubContexts) CreateContext(context.Context, contextmgr.CreateInput) (contextmgr.CreateOutput, error) {
	return contextmgr.CreateOutput{}, nil
}
func (stubContexts) UpdateContext(context.Context, string, contextmgr.UpdateInput) (model.ModelContext, error) {
	return model.ModelContext{}, model.ErrNotFound
}
func (stubContexts) GetContext(context.Context, string) (model.ModelContext, error) {
	return model.ModelContext{}, model.ErrNotFound
}
func (stubContexts) GetSummary(context.Context, string) (contextmgr.Summary, error) {
	return contextmgr.Summary{}, model.ErrNotFound
}
func (stubContexts) ClearContext(context.Context, string) {}
func (stubContexts) ClearAll(context.Context)             {}

func newServer(t *testing.T, initialise bool) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	registry := mrUC.New(modelregistry.Options{
		Factory: func(id model.ModelID, _ model.ModelConfig) (modelregistry.Handle, error) {
			return stubHandle{id: id}, nil
		},
	}, l)
	if initialise {
		if err := registry.InitializeAll(context.Background()); err != nil {
			t.Fatalf("InitializeAll: %v", err)
		}
	}
	srv, err := New(l, Config{
		Logger:     l,
		Port:       8080,
		Mode:       "test",
		Middleware: middleware.New(l, config.RateLimitConfig{}),
		Contexts:   stubContexts{},
		Models:     registry,
		Router:     router.New(registry, router.Options{}, l),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv
}

func serve(srv *HTTPServer, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newServer(t, false)
	for _, path := range []string{"/health", "/live"} {
		if w := serve(srv, http.MethodGet, path, ""); w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
	}
	if w := serve(srv, http.MethodGet, "/ready", ""); w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /ready before init = %d, want 503", w.Code)
	}

	srv = newServer(t, true)
	if w := serve(srv, http.MethodGet, "/ready", ""); w.Code != http.StatusOK {
		t.Errorf("GET /ready after init = %d, want 200", w.Code)
	}
}

func TestDomainRoutes(t *testing.T) {
	srv := newServer(t, true)

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/api/v1/models", "", http.StatusOK},
		{http.MethodGet, "/api/v1/models/health", "", http.StatusOK},
		{http.MethodGet, "/api/v1/routes/stats", "", http.StatusOK},
		{http.MethodPost, "/api/v1/routes", `{"query":"日本的勞動法規","task_type":"general"}`, http.StatusOK},
		{http.MethodGet, "/api/v1/contexts/missing", "", http.StatusNotFound},
		// Optional domains are not mounted when their use case is nil.
		{http.MethodPost, "/api/v1/rag/query", `{"query":"x"}`, http.StatusNotFound},
		{http.MethodPost, "/api/v1/comparisons", `{"country_ids":["TW"]}`, http.StatusNotFound},
		{http.MethodPost, "/webhook/telegram", `{}`, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			if w := serve(srv, tt.method, tt.path, tt.body); w.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestModelHealthRoute(t *testing.T) {
	srv := newServer(t, true)
	w := serve(srv, http.MethodGet, "/api/v1/models/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Healthy int `json:"healthy"`
			Total   int `json:"total"`
			Models  []struct {
				Model  string `json:"model"`
				Status string `json:"status"`
			} `json:"models"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Data.Total != len(model.AllModels) || resp.Data.Healthy != resp.Data.Total {
		t.Errorf("unexpected health summary %+v", resp.Data)
	}
	if resp.Data.Models[0].Model != model.AllModels[0].String() || resp.Data.Models[0].Status != "healthy" {
		t.Errorf("unexpected first entry %+v", resp.Data.Models[0])
	}
}

func TestNewValidates(t *testing.T) {
	l := log.NewNop()
	if _, err := New(l, Config{Logger: l, Mode: "test"}); err == nil {
		t.Fatal("expected error for missing port")
	}
	if _, err := New(l, Config{Logger: l, Mode: "test", Port: 8080}); err == nil {
		t.Fatal("expected error for missing dependencies")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newServer(t, false)
	srv.port = 0
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
