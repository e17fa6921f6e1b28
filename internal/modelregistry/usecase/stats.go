package usecase

import (
	"context"
	"time"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
)

// instrumentedHandle records call statistics for the wrapped handle.
type instrumentedHandle struct {
	inner  modelregistry.Handle
	record func(id model.ModelID, elapsed time.Duration, err error)
}

func (h *instrumentedHandle) ID() model.ModelID { return h.inner.ID() }

func (h *instrumentedHandle) Predict(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	out, err := h.inner.Predict(ctx, prompt)
	h.record(h.inner.ID(), time.Since(start), err)
	return out, err
}

func (h *instrumentedHandle) Generate(ctx context.Context, prompts []string) ([]string, error) {
	start := time.Now()
	out, err := h.inner.Generate(ctx, prompts)
	h.record(h.inner.ID(), time.Since(start), err)
	return out, err
}

func (uc *implUseCase) record(id model.ModelID, elapsed time.Duration, err error) {
	uc.statsMu.Lock()
	defer uc.statsMu.Unlock()
	s, ok := uc.stats[id]
	if !ok {
		s = &statsEntry{}
		uc.stats[id] = s
	}
	s.calls++
	if err != nil {
		s.errors++
	}
	s.total += elapsed
	s.lastUsed = uc.now()
}

func (uc *implUseCase) Stats(id model.ModelID) modelregistry.Stats {
	uc.statsMu.Lock()
	defer uc.statsMu.Unlock()
	s, ok := uc.stats[id]
	if !ok || s.calls == 0 {
		return modelregistry.Stats{}
	}
	return modelregistry.Stats{
		Calls:      s.calls,
		Errors:     s.errors,
		AvgLatency: s.total / time.Duration(s.calls),
		LastUsed:   s.lastUsed,
	}
}
