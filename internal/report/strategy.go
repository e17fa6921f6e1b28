package report

import (
	"fmt"
	"strings"

	"hr-assistant/internal/model"
)

// StrategyMarkdown renders a strategy followed by its embedded comparison.
func StrategyMarkdown(s *model.EmploymentStrategy) string {
	if s == nil {
		return ""
	}
	countries := sortedCountries(s.TargetCountries)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s 聘用策略\n\n", s.CompanyName)
	fmt.Fprintf(&b, "- 策略編號：%s\n", s.ID)
	fmt.Fprintf(&b, "- 目標國家：%s\n", strings.Join(countries, "、"))
	if !s.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- 建立時間：%s\n", s.CreatedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString("\n")

	if len(s.Requirements) > 0 {
		b.WriteString("## 需求\n\n")
		for _, k := range sortedKeys(s.Requirements) {
			fmt.Fprintf(&b, "- %s：%v\n", k, s.Requirements[k])
		}
		b.WriteString("\n")
	}

	b.WriteString("## 建議聘用模式與成本\n\n")
	t := newTable(&b, "國家", "聘用模式", "預估年度成本")
	for _, c := range countries {
		t.row(c, s.RecommendedModels[c], num(s.CostEstimates[c]))
	}
	b.WriteString("\n")

	b.WriteString("## 風險評估\n\n")
	for _, c := range countries {
		fmt.Fprintf(&b, "### %s\n\n", c)
		risks := s.RiskAssessments[c]
		if len(risks) == 0 {
			b.WriteString("無\n\n")
			continue
		}
		t := newTable(&b, "類型", "說明", "嚴重性", "可能性", "緩解措施")
		for _, r := range risks {
			t.row(r.Type, r.Description, num(r.Severity), num(r.Likelihood), r.Mitigation)
		}
		b.WriteString("\n")
	}

	b.WriteString("## 實施步驟\n\n")
	for i, step := range s.ImplementationSteps {
		fmt.Fprintf(&b, "%d. **%s**（%s，%s）：%s\n", i+1, step.Name, step.Phase, step.Timeline, step.Description)
		if len(step.Resources) > 0 {
			fmt.Fprintf(&b, "   - 資源：%s\n", strings.Join(step.Resources, "、"))
		}
		if len(step.Considerations) > 0 {
			fmt.Fprintf(&b, "   - 注意事項：%s\n", strings.Join(step.Considerations, "、"))
		}
	}

	if s.Comparison != nil {
		b.WriteString("\n")
		// Demote the comparison headings one level under the strategy.
		for _, line := range strings.SplitAfter(ComparisonMarkdown(s.Comparison), "\n") {
			if strings.HasPrefix(line, "#") {
				line = "#" + line
			}
			b.WriteString(line)
		}
	}
	return b.String()
}
