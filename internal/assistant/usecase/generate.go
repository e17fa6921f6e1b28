package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hr-assistant/internal/assistant"
	"hr-assistant/internal/model"
	"hr-assistant/internal/rag"
)

// Generate answers through RAG, then refines the answer with history and task context on the same model.
func (uc *implUseCase) Generate(ctx context.Context, input assistant.GenerateInput) (assistant.GenerateOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return assistant.GenerateOutput{}, assistant.ErrEmptyQuery
	}
	contextType := input.ContextType
	if contextType == "" {
		contextType = assistant.DefaultContextType
	}

	answer, err := uc.rag.Answer(ctx, rag.AnswerInput{Query: input.Query, ContextType: contextType, TaskType: input.TaskType})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.Generate: rag: %v", err)
		return assistant.GenerateOutput{}, err
	}

	handle, err := uc.models.Get(ctx, answer.ModelID)
	if err != nil {
		uc.l.Errorf(ctx, "assistant.Generate: get model %s: %v", answer.ModelID, err)
		return assistant.GenerateOutput{}, err
	}

	turns := uc.History(ctx, contextType)
	response, err := handle.Predict(ctx, buildPrompt(input.Query, answer.Answer, turns, input.TaskContext))
	if err != nil {
		uc.l.Errorf(ctx, "assistant.Generate: predict with %s: %v", answer.ModelID, err)
		return assistant.GenerateOutput{}, model.Upstream(model.SourceLLM, fmt.Errorf("predict: %w", err))
	}

	uc.remember(contextType, assistant.Turn{
		Query:      input.Query,
		Response:   response,
		Timestamp:  uc.now(),
		RAGSummary: answer.Summary,
	})

	return assistant.GenerateOutput{
		Response: response,
		ModelID:  answer.ModelID,
		ContextUsed: assistant.ContextUsed{
			RAGSummary:    answer.Summary,
			HistoryLength: len(turns),
			TaskContext:   len(input.TaskContext) > 0,
		},
		Sources: answer.Sources,
	}, nil
}

func buildPrompt(query, ragAnswer string, turns []assistant.Turn, task map[string]any) string {
	var b strings.Builder
	fmt.Fprintf(&b, assistant.PromptHeader, ragAnswer)

	b.WriteString(assistant.PromptHistory)
	if len(turns) > assistant.PromptHistoryTurns {
		turns = turns[len(turns)-assistant.PromptHistoryTurns:]
	}
	for _, t := range turns {
		fmt.Fprintf(&b, assistant.PromptTurn, t.Query, t.Response)
	}

	if len(task) > 0 {
		b.WriteString(assistant.PromptTask)
		keys := make([]string, 0, len(task))
		for k := range task {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, assistant.PromptTaskLine, k, task[k])
		}
	}

	fmt.Fprintf(&b, assistant.PromptFooter, query)
	return b.String()
}
