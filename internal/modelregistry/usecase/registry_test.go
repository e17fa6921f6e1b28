package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/internal/modelregistry/usecase"
	"hr-assistant/pkg/log"
)

type fakeHandle struct {
	id   model.ModelID
	cfg  model.ModelConfig
	err  error
	text string
}

func (h *fakeHandle) ID() model.ModelID { return h.id }

func (h *fakeHandle) Predict(_ context.Context, prompt string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return h.text + prompt, nil
}

func (h *fakeHandle) Generate(ctx context.Context, prompts []string) ([]string, error) {
	var out []string
	for _, p := range prompts {
		s, err := h.Predict(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeFactory struct {
	mu     sync.Mutex
	failOn map[model.ModelID]bool
	built  []model.ModelID
}

func (f *fakeFactory) build(id model.ModelID, cfg model.ModelConfig) (modelregistry.Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn[id] {
		return nil, errors.New("provider unavailable")
	}
	f.built = append(f.built, id)
	return &fakeHandle{id: id, cfg: cfg, text: string(id) + ":"}, nil
}

func TestInitializeAll(t *testing.T) {
	ctx := context.Background()

	t.Run("builds every variant", func(t *testing.T) {
		ff := &fakeFactory{}
		reg := usecase.New(modelregistry.Options{Factory: ff.build}, log.NewNop())
		if err := reg.InitializeAll(ctx); err != nil {
			t.Fatalf("InitializeAll: %v", err)
		}
		for _, id := range model.AllModels {
			if !reg.Initialized(id) {
				t.Errorf("%s not initialized", id)
			}
		}
		h, err := reg.Get(ctx, "")
		if err != nil || h.ID() != model.ModelFast {
			t.Errorf("expected default fast handle, got %v, %v", h, err)
		}
	})

	t.Run("failure installs nothing", func(t *testing.T) {
		ff := &fakeFactory{}
		reg := usecase.New(modelregistry.Options{Factory: ff.build}, log.NewNop())
		if err := reg.InitializeAll(ctx); err != nil {
			t.Fatalf("InitializeAll: %v", err)
		}
		before, _ := reg.Get(ctx, model.ModelHighCapability)

		ff.failOn = map[model.ModelID]bool{model.ModelLongContext: true}
		err := reg.InitializeAll(ctx)
		if !model.IsUpstream(err) {
			t.Fatalf("expected upstream error, got %v", err)
		}
		after, _ := reg.Get(ctx, model.ModelHighCapability)
		if before != after {
			t.Error("handles were replaced by a failed initialization")
		}
	})

	t.Run("first failure leaves registry empty", func(t *testing.T) {
		ff := &fakeFactory{failOn: map[model.ModelID]bool{model.ModelCustom: true}}
		reg := usecase.New(modelregistry.Options{Factory: ff.build}, log.NewNop())
		if err := reg.InitializeAll(ctx); err == nil {
			t.Fatal("expected error")
		}
		if _, err := reg.Get(ctx, model.ModelFast); !errors.Is(err, model.ErrNotInitialized) {
			t.Errorf("expected ErrNotInitialized, got %v", err)
		}
	})
}

func TestGetNotInitialized(t *testing.T) {
	ff := &fakeFactory{}
	reg := usecase.New(modelregistry.Options{
		Factory:  ff.build,
		Variants: []model.ModelID{model.ModelFast},
	}, log.NewNop())
	if err := reg.InitializeAll(context.Background()); err != nil {
		t.Fatalf("InitializeAll: %v", err)
	}
	_, err := reg.Get(context.Background(), model.ModelLongContext)
	if !errors.Is(err, model.ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestUpdateConfig(t *testing.T) {
	ctx := context.Background()
	ff := &fakeFactory{}
	reg := usecase.New(modelregistry.Options{Factory: ff.build}, log.NewNop())

	t.Run("config only before initialization", func(t *testing.T) {
		cfg := model.ModelConfig{Temperature: 0.2, MaxTokens: 500}
		if err := reg.UpdateConfig(ctx, model.ModelFast, cfg); err != nil {
			t.Fatalf("UpdateConfig: %v", err)
		}
		got, _ := reg.Config(model.ModelFast)
		if got.Temperature != 0.2 || got.MaxTokens != 500 {
			t.Errorf("unexpected config %+v", got)
		}
		if len(ff.built) != 0 {
			t.Errorf("no handle should be built, got %v", ff.built)
		}
	})

	if err := reg.InitializeAll(ctx); err != nil {
		t.Fatalf("InitializeAll: %v", err)
	}

	t.Run("rebuilds existing handle", func(t *testing.T) {
		old, _ := reg.Get(ctx, model.ModelHighCapability)
		if err := reg.UpdateConfig(ctx, model.ModelHighCapability, model.ModelConfig{Temperature: 0.1, MaxTokens: 100}); err != nil {
			t.Fatalf("UpdateConfig: %v", err)
		}
		h, _ := reg.Get(ctx, model.ModelHighCapability)
		if h == old {
			t.Error("expected a rebuilt handle")
		}
	})

	t.Run("rebuild failure restores old state", func(t *testing.T) {
		oldHandle, _ := reg.Get(ctx, model.ModelLongContext)
		oldCfg, _ := reg.Config(model.ModelLongContext)

		ff.failOn = map[model.ModelID]bool{model.ModelLongContext: true}
		defer func() { ff.failOn = nil }()

		err := reg.UpdateConfig(ctx, model.ModelLongContext, model.ModelConfig{Temperature: 0.9, MaxTokens: 8000})
		if !model.IsUpstream(err) {
			t.Fatalf("expected upstream error, got %v", err)
		}
		h, _ := reg.Get(ctx, model.ModelLongContext)
		cfg, _ := reg.Config(model.ModelLongContext)
		if h != oldHandle || cfg.MaxTokens != oldCfg.MaxTokens {
			t.Errorf("state not restored: cfg=%+v", cfg)
		}
	})

	t.Run("unknown variant", func(t *testing.T) {
		err := reg.UpdateConfig(ctx, "gpt-5", model.ModelConfig{})
		if !errors.Is(err, modelregistry.ErrUnknownModel) {
			t.Errorf("expected ErrUnknownModel, got %v", err)
		}
	})

	t.Run("configs are copies", func(t *testing.T) {
		all := reg.Configs()
		all[model.ModelFast] = model.ModelConfig{MaxTokens: 1}
		got, _ := reg.Config(model.ModelFast)
		if got.MaxTokens == 1 {
			t.Error("Configs leaked internal map")
		}
	})
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	reg := usecase.New(modelregistry.Options{
		Factory: func(id model.ModelID, cfg model.ModelConfig) (modelregistry.Handle, error) {
			if id == model.ModelCustom {
				return &fakeHandle{id: id, err: errors.New("boom")}, nil
			}
			return &fakeHandle{id: id}, nil
		},
		Now: func() time.Time { return now },
	}, log.NewNop())
	if err := reg.InitializeAll(ctx); err != nil {
		t.Fatalf("InitializeAll: %v", err)
	}

	fast, _ := reg.Get(ctx, model.ModelFast)
	fast.Predict(ctx, "a")
	fast.Generate(ctx, []string{"b", "c"})
	custom, _ := reg.Get(ctx, model.ModelCustom)
	custom.Predict(ctx, "d")

	s := reg.Stats(model.ModelFast)
	if s.Calls != 2 || s.Errors != 0 || !s.LastUsed.Equal(now) {
		t.Errorf("unexpected fast stats %+v", s)
	}
	if s := reg.Stats(model.ModelCustom); s.Calls != 1 || s.Errors != 1 {
		t.Errorf("unexpected custom stats %+v", s)
	}
	if s := reg.Stats(model.ModelLongContext); s.Calls != 0 {
		t.Errorf("unused model should have zero stats, got %+v", s)
	}
}

func TestSelectBest(t *testing.T) {
	tests := []struct {
		task   string
		length int
		want   model.ModelID
	}{
		{"legal", 3001, model.ModelLongContext},
		{"legal", 3000, model.ModelFast},
		{"creative", 10, model.ModelHighCapability},
		{"creative", 5000, model.ModelHighCapability},
		{"general", 9000, model.ModelFast},
		{"", 0, model.ModelFast},
	}
	for _, tt := range tests {
		if got := modelregistry.SelectBest(tt.task, tt.length); got != tt.want {
			t.Errorf("SelectBest(%q, %d) = %s, want %s", tt.task, tt.length, got, tt.want)
		}
	}
}
