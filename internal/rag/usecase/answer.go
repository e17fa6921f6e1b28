package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hr-assistant/internal/contextmgr"
	"hr-assistant/internal/model"
	"hr-assistant/internal/rag"
	"hr-assistant/internal/router"
)

// Answer runs retrieval, routing and generation for one question. Query analysis sets the retrieval depth.
func (uc *implUseCase) Answer(ctx context.Context, input rag.AnswerInput) (rag.AnswerOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return rag.AnswerOutput{}, rag.ErrEmptyQuery
	}
	contextType := input.ContextType
	if contextType == "" {
		contextType = rag.DefaultContextType
	}
	taskType := input.TaskType
	if taskType == "" {
		taskType = rag.DefaultTaskType
	}

	analysis := AnalyzeQuery(input.Query)
	uc.l.Infof(ctx, "rag.Answer: complexity=%s suggested_chunks=%d", analysis.Complexity, analysis.SuggestedChunks)

	created, err := uc.contexts.CreateContext(ctx, contextmgr.CreateInput{
		Query:       input.Query,
		ContextType: contextType,
		TopK:        analysis.SuggestedChunks,
	})
	if err != nil {
		uc.l.Errorf(ctx, "rag.Answer: create context: %v", err)
		return rag.AnswerOutput{}, err
	}
	mc := created.Context

	id := uc.router.Route(ctx, router.RouteInput{Query: input.Query, TaskType: taskType, Context: &mc})
	handle, err := uc.models.Get(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "rag.Answer: get model %s: %v", id, err)
		return rag.AnswerOutput{}, err
	}

	answer, err := handle.Predict(ctx, BuildPrompt(input.Query, mc))
	if err != nil {
		uc.l.Errorf(ctx, "rag.Answer: predict with %s: %v", id, err)
		return rag.AnswerOutput{}, model.Upstream(model.SourceLLM, fmt.Errorf("predict: %w", err))
	}

	summary, err := uc.contexts.GetSummary(ctx, created.ID)
	if err != nil {
		// The context may have been evicted between create and summary.
		uc.l.Warnf(ctx, "rag.Answer: summary for %s: %v", created.ID, err)
	}

	sources := make([]rag.Source, 0, len(mc.Primary))
	for _, w := range mc.Primary {
		sources = append(sources, rag.Source{Content: w.Content, Source: w.Source, Relevance: w.RelevanceScore})
	}

	return rag.AnswerOutput{
		Answer:    answer,
		ModelID:   id,
		Sources:   sources,
		ContextID: created.ID,
		Summary:   summary,
		Analysis:  analysis,
	}, nil
}

// BuildPrompt lays out primary sources, supplementary sources, global context and the question.
func BuildPrompt(query string, mc model.ModelContext) string {
	var b strings.Builder
	b.WriteString(rag.PromptPreamble)
	for i, w := range mc.Primary {
		fmt.Fprintf(&b, rag.PromptPrimaryLabel, i+1, w.Source, w.Content)
	}
	for i, w := range mc.Secondary {
		fmt.Fprintf(&b, rag.PromptSecondary, i+1, w.Source, w.Content)
	}
	if len(mc.Global) > 0 {
		b.WriteString(rag.PromptGlobalHeader)
		keys := make([]string, 0, len(mc.Global))
		for k := range mc.Global {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, rag.PromptGlobalLine, k, mc.Global[k])
		}
	}
	fmt.Fprintf(&b, rag.PromptQuestion, query)
	return b.String()
}
