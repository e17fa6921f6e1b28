package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hr-assistant/internal/model"
	"hr-assistant/internal/strategy"
	"hr-assistant/pkg/log"
)

type fakeUseCase struct {
	input   strategy.GenerateInput
	err     error
	cleared bool
}

func (f *fakeUseCase) Generate(_ context.Context, in strategy.GenerateInput) (*model.EmploymentStrategy, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &model.EmploymentStrategy{
		ID:                  "id-1",
		CompanyName:         in.CompanyName,
		TargetCountries:     in.TargetCountries,
		RecommendedModels:   map[string]string{"TW": strategy.FallbackEmploymentModel},
		ImplementationSteps: strategy.FallbackSteps(),
	}, nil
}

func (f *fakeUseCase) ClearCache(context.Context) { f.cleared = true }

func serve(uc strategy.UseCase, method, path, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/strategies"), New(log.NewNop(), uc))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestStrategyRoutes(t *testing.T) {
	const body = `{"company_name":"Acme","target_countries":["TW"],"requirements":{"headcount":3}}`

	tests := []struct {
		name        string
		uc          *fakeUseCase
		path        string
		body        string
		wantCode    int
		wantContain string
	}{
		{"json", &fakeUseCase{}, "/api/v1/strategies", body, http.StatusOK, `"strategy_id":"id-1"`},
		{"markdown", &fakeUseCase{}, "/api/v1/strategies?format=markdown", body, http.StatusOK, "# Acme 聘用策略"},
		{"html", &fakeUseCase{}, "/api/v1/strategies?format=html", body, http.StatusOK, "<ol>"},
		{"missing company", &fakeUseCase{}, "/api/v1/strategies", `{"target_countries":["TW"]}`, http.StatusBadRequest, ""},
		{"upstream", &fakeUseCase{err: model.Upstream(model.SourceKnowledge, context.Canceled)}, "/api/v1/strategies", body, http.StatusBadGateway, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.uc, http.MethodPost, tt.path, tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tt.wantContain) {
				t.Errorf("body missing %q: %s", tt.wantContain, w.Body.String())
			}
		})
	}

	t.Run("clear cache", func(t *testing.T) {
		uc := &fakeUseCase{}
		if w := serve(uc, http.MethodDelete, "/api/v1/strategies/cache", ""); w.Code != http.StatusOK || !uc.cleared {
			t.Errorf("expected cache cleared, got %d", w.Code)
		}
	})
}
