package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"hr-assistant/internal/assistant"
	"hr-assistant/internal/assistant/usecase"
	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/internal/rag"
	"hr-assistant/pkg/log"
)

type fakeRAG struct {
	err error
}

func (f *fakeRAG) Answer(_ context.Context, in rag.AnswerInput) (rag.AnswerOutput, error) {
	if f.err != nil {
		return rag.AnswerOutput{}, f.err
	}
	return rag.AnswerOutput{
		Answer:  "RAG: " + in.Query,
		ModelID: model.ModelLongContext,
		Sources: []rag.Source{{Content: "c", Source: "s", Relevance: 0.8}},
		Summary: contextmgr.Summary{PrimarySources: 1, TotalTokens: 1},
	}, nil
}

func (f *fakeRAG) Analyze(context.Context, string) (rag.Analysis, error) {
	return rag.Analysis{}, nil
}

func (f *fakeRAG) Ingest(context.Context, rag.IngestInput) (rag.IngestOutput, error) {
	return rag.IngestOutput{}, nil
}

type fakeHandle struct {
	prompts []string
	err     error
}

func (h *fakeHandle) ID() model.ModelID { return model.ModelLongContext }
func (h *fakeHandle) Predict(_ context.Context, prompt string) (string, error) {
	h.prompts = append(h.prompts, prompt)
	return fmt.Sprintf("reply %d", len(h.prompts)), h.err
}
func (h *fakeHandle) Generate(context.Context, []string) ([]string, error) { return nil, nil }

type fakeModels struct {
	handle *fakeHandle
	asked  []model.ModelID
}

func (f *fakeModels) Get(_ context.Context, id model.ModelID) (modelregistry.Handle, error) {
	f.asked = append(f.asked, id)
	return f.handle, nil
}

var fixedNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newUC(r *fakeRAG) (assistant.UseCase, *fakeModels) {
	models := &fakeModels{handle: &fakeHandle{}}
	return usecase.New(r, models, usecase.Options{Now: func() time.Time { return fixedNow }}, log.NewNop()), models
}

func TestGenerate(t *testing.T) {
	uc, models := newUC(&fakeRAG{})
	ctx := context.Background()

	out, err := uc.Generate(ctx, assistant.GenerateInput{
		Query:       "試用期多久？",
		ContextType: "legal",
		TaskContext: map[string]any{"country": "TW"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if out.Response != "reply 1" || out.ModelID != model.ModelLongContext {
		t.Errorf("unexpected output %+v", out)
	}
	if !out.ContextUsed.TaskContext || out.ContextUsed.HistoryLength != 0 || out.ContextUsed.RAGSummary.TotalTokens != 1 {
		t.Errorf("unexpected context used %+v", out.ContextUsed)
	}
	if len(models.asked) != 1 || models.asked[0] != model.ModelLongContext {
		t.Errorf("expected the routed model, got %v", models.asked)
	}
	prompt := models.handle.prompts[0]
	for _, want := range []string{"RAG: 試用期多久？", "country: TW", "當前問題：試用期多久？"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	history := uc.History(ctx, "legal")
	if len(history) != 1 || history[0].Query != "試用期多久？" || !history[0].Timestamp.Equal(fixedNow) {
		t.Errorf("unexpected history %+v", history)
	}
}

func TestGenerateHistoryWindow(t *testing.T) {
	uc, models := newUC(&fakeRAG{})
	ctx := context.Background()

	for i := range 12 {
		out, err := uc.Generate(ctx, assistant.GenerateInput{Query: fmt.Sprintf("q%d", i), ContextType: "tax"})
		if err != nil {
			t.Fatalf("Generate %d: %v", i, err)
		}
		want := min(i, assistant.HistoryCap)
		if out.ContextUsed.HistoryLength != want {
			t.Errorf("turn %d: history length %d, want %d", i, out.ContextUsed.HistoryLength, want)
		}
	}

	history := uc.History(ctx, "tax")
	if len(history) != assistant.HistoryCap || history[0].Query != "q2" || history[9].Query != "q11" {
		t.Errorf("expected q2..q11, got first=%s len=%d", history[0].Query, len(history))
	}

	last := models.handle.prompts[len(models.handle.prompts)-1]
	if strings.Contains(last, "之前的問題：q7\n") || !strings.Contains(last, "之前的問題：q8\n") || !strings.Contains(last, "之前的問題：q10\n") {
		t.Errorf("prompt should quote the last three turns only:\n%s", last)
	}

	if got := uc.History(ctx, "legal"); len(got) != 0 {
		t.Errorf("context types should be isolated, got %v", got)
	}
}

func TestHistoryIsCopy(t *testing.T) {
	uc, _ := newUC(&fakeRAG{})
	ctx := context.Background()
	uc.Generate(ctx, assistant.GenerateInput{Query: "q"})

	h := uc.History(ctx, assistant.DefaultContextType)
	h[0].Query = "mutated"
	if uc.History(ctx, assistant.DefaultContextType)[0].Query != "q" {
		t.Error("History must return a copy")
	}
}

func TestClearHistory(t *testing.T) {
	uc, _ := newUC(&fakeRAG{})
	ctx := context.Background()
	uc.Generate(ctx, assistant.GenerateInput{Query: "a", ContextType: "x"})
	uc.Generate(ctx, assistant.GenerateInput{Query: "b", ContextType: "y"})

	uc.ClearHistory(ctx, "x")
	if len(uc.History(ctx, "x")) != 0 || len(uc.History(ctx, "y")) != 1 {
		t.Error("ClearHistory(x) should only drop x")
	}
	uc.ClearHistory(ctx, "")
	if len(uc.History(ctx, "y")) != 0 {
		t.Error("ClearHistory(\"\") should drop everything")
	}
}

func TestGenerateErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("rag error propagates", func(t *testing.T) {
		uc, _ := newUC(&fakeRAG{err: model.ErrNotInitialized})
		if _, err := uc.Generate(ctx, assistant.GenerateInput{Query: "q"}); !errors.Is(err, model.ErrNotInitialized) {
			t.Errorf("expected ErrNotInitialized, got %v", err)
		}
	})

	t.Run("predict failure is upstream and not remembered", func(t *testing.T) {
		uc, models := newUC(&fakeRAG{})
		models.handle.err = errors.New("boom")
		if _, err := uc.Generate(ctx, assistant.GenerateInput{Query: "q"}); !model.IsUpstream(err) {
			t.Errorf("expected upstream error, got %v", err)
		}
		if len(uc.History(ctx, assistant.DefaultContextType)) != 0 {
			t.Error("failed turns must not be remembered")
		}
	})

	t.Run("empty query", func(t *testing.T) {
		uc, _ := newUC(&fakeRAG{})
		if _, err := uc.Generate(ctx, assistant.GenerateInput{}); !errors.Is(err, assistant.ErrEmptyQuery) {
			t.Errorf("expected ErrEmptyQuery, got %v", err)
		}
	})
}
