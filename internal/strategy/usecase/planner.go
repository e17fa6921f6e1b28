package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hr-assistant/internal/model"
	"hr-assistant/internal/modelregistry"
	"hr-assistant/internal/strategy"
	"hr-assistant/pkg/llmjson"
)

// planner runs the model-backed planning steps for one request.
type planner struct {
	uc           *implUseCase
	handle       modelregistry.Handle
	countries    []string
	requirements map[string]any
}

// ask sends one prompt and decodes the JSON reply into T.
func ask[T any](ctx context.Context, p planner, step, prompt string) (T, bool) {
	var zero T
	reply, err := p.handle.Predict(ctx, prompt)
	if err != nil {
		p.uc.l.Warnf(ctx, "strategy.%s: predict: %v", step, err)
		return zero, false
	}
	out, err := llmjson.Decode[T](reply)
	if err != nil {
		p.uc.l.Warnf(ctx, "strategy.%s: decode: %v", step, err)
		return zero, false
	}
	return out, true
}

func pretty(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func (p planner) selectModels(ctx context.Context, options map[string][]employmentOption, cmp *model.CountryComparison) map[string]string {
	fallback := make(map[string]string, len(p.countries))
	for _, c := range p.countries {
		fallback[c] = strategy.FallbackEmploymentModel
		if opts := options[c]; len(opts) > 0 && opts[0].Name != "" {
			fallback[c] = opts[0].Name
		}
	}

	prompt := fmt.Sprintf(selectModelsPrompt, pretty(p.requirements), pretty(viewOf(cmp)), pretty(options))
	choices, ok := ask[map[string]modelChoice](ctx, p, "selectModels", prompt)
	if !ok {
		return fallback
	}

	out := make(map[string]string, len(p.countries))
	for _, c := range p.countries {
		choice, found := choices[c]
		if !found || strings.TrimSpace(choice.Model) == "" {
			out[c] = fallback[c]
			continue
		}
		out[c] = choice.Model
	}
	return out
}

func (p planner) estimateCosts(ctx context.Context, recommended map[string]string) map[string]float64 {
	prompt := fmt.Sprintf(estimateCostsPrompt, pretty(p.requirements), pretty(recommended))
	costs, ok := ask[map[string]float64](ctx, p, "estimateCosts", prompt)

	out := make(map[string]float64, len(p.countries))
	for _, c := range p.countries {
		v, found := costs[c]
		if !ok || !found || v < 0 {
			v = strategy.FallbackCost
		}
		out[c] = v
	}
	return out
}

func (p planner) assessRisks(ctx context.Context, recommended map[string]string, cmp *model.CountryComparison) map[string][]model.Risk {
	view := viewOf(cmp)
	view.Insurance, view.Cost = nil, nil
	prompt := fmt.Sprintf(assessRisksPrompt, pretty(recommended), pretty(view))
	risks, ok := ask[map[string][]model.Risk](ctx, p, "assessRisks", prompt)

	out := make(map[string][]model.Risk, len(p.countries))
	for _, c := range p.countries {
		r, found := risks[c]
		if !ok || !found || len(r) == 0 {
			r = strategy.FallbackRisks()
		}
		out[c] = r
	}
	return out
}

func (p planner) implementationSteps(ctx context.Context, recommended map[string]string) []model.ImplementationStep {
	prompt := fmt.Sprintf(implementationPrompt, pretty(p.requirements), pretty(p.countries), pretty(recommended))
	steps, ok := ask[[]model.ImplementationStep](ctx, p, "implementationSteps", prompt)
	if !ok || len(steps) == 0 {
		return strategy.FallbackSteps()
	}
	return steps
}

func viewOf(cmp *model.CountryComparison) comparisonView {
	if cmp == nil {
		return comparisonView{}
	}
	return comparisonView{Legal: cmp.Legal, Tax: cmp.Tax, Insurance: cmp.Insurance, Cost: cmp.Cost, Risk: cmp.Risk}
}
