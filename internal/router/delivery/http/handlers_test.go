package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/internal/router"
	routerHTTP "hr-assistant/internal/router/delivery/http"
	"hr-assistant/pkg/log"
	"hr-assistant/pkg/response"
)

type selector struct{}

func (selector) SelectBest(taskType string, n int) model.ModelID {
	return modelregistry.SelectBest(taskType, n)
}

type contexts map[string]model.ModelContext

func (c contexts) GetContext(_ context.Context, id string) (model.ModelContext, error) {
	mc, ok := c[id]
	if !ok {
		return model.ModelContext{}, model.ErrNotFound
	}
	return mc, nil
}

func TestRouteHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	long := model.NewModelContext(0)
	long.Primary = []model.ContextWindow{{Content: strings.Repeat("法", 3500)}}

	r := router.New(selector{}, router.Options{}, log.NewNop())
	engine := gin.New()
	routerHTTP.RegisterRoutes(engine.Group("/api/v1/routes"), routerHTTP.New(log.NewNop(), r, contexts{"legal_1": long}))

	do := func(method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(w, req)
		var resp response.Resp
		json.Unmarshal(w.Body.Bytes(), &resp)
		return w, resp
	}

	t.Run("route with stored context", func(t *testing.T) {
		w, resp := do(http.MethodPost, "/api/v1/routes", `{"query":"是否違法","task_type":"legal","context_id":"legal_1"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := resp.Data.(map[string]any)
		if data["model"] != string(model.ModelLongContext) {
			t.Errorf("unexpected model %v", data["model"])
		}
	})

	t.Run("unknown context", func(t *testing.T) {
		w, _ := do(http.MethodPost, "/api/v1/routes", `{"query":"q","context_id":"nope"}`)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("performance update", func(t *testing.T) {
		w, _ := do(http.MethodPut, "/api/v1/routes/performance/fast", `{"metrics":{"performance_score":0.7}}`)
		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", w.Code)
		}
		w, _ = do(http.MethodPut, "/api/v1/routes/performance/gpt-9", `{"metrics":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stats", func(t *testing.T) {
		w, resp := do(http.MethodGet, "/api/v1/routes/stats", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		data := resp.Data.(map[string]any)
		if data["total_routes"] != float64(1) {
			t.Errorf("unexpected stats %v", data)
		}
	})
}
