package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
)

// CheckHealth reports every known variant in table order. Variants without a handle
// are not_initialized; the rest get one prompt each under the health timeout.
func (uc *implUseCase) CheckHealth(ctx context.Context) []modelregistry.HealthStatus {
	out := make([]modelregistry.HealthStatus, len(model.AllModels))

	var g errgroup.Group
	for i, id := range model.AllModels {
		h, err := uc.Get(ctx, id)
		if err != nil {
			out[i] = modelregistry.HealthStatus{Model: id, Status: modelregistry.HealthNotInitialized, LastCheck: uc.now()}
			continue
		}
		g.Go(func() error {
			out[i] = uc.checkOne(ctx, h)
			return nil
		})
	}
	g.Wait()

	healthy := 0
	for _, s := range out {
		if s.Status == modelregistry.HealthHealthy {
			healthy++
		}
	}
	uc.l.Infof(ctx, "modelregistry.CheckHealth: %d/%d variants healthy", healthy, len(out))
	return out
}

func (uc *implUseCase) checkOne(ctx context.Context, h modelregistry.Handle) modelregistry.HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	start := time.Now()
	_, err := h.Predict(ctx, modelregistry.HealthPrompt)
	s := modelregistry.HealthStatus{
		Model:        h.ID(),
		Status:       modelregistry.HealthHealthy,
		ResponseTime: time.Since(start),
		LastCheck:    uc.now(),
	}
	if err != nil {
		uc.l.Warnf(ctx, "modelregistry.CheckHealth: %s: %v", h.ID(), err)
		s.Status = modelregistry.HealthUnhealthy
		s.Error = err.Error()
	}
	return s
}
