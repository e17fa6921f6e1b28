package report

import (
	"fmt"
	"strings"

	"hr-assistant/internal/model"
)

// ComparisonMarkdown renders a comparison with countries and keys in sorted order.
func ComparisonMarkdown(c *model.CountryComparison) string {
	if c == nil {
		return ""
	}
	countries := sortedCountries(c.Countries)

	var b strings.Builder
	fmt.Fprintf(&b, "# 跨國比較：%s\n\n", strings.Join(countries, "、"))

	writeLegal(&b, c.Legal, countries)
	writeTax(&b, c.Tax, countries)
	writeInsurance(&b, c.Insurance, countries)
	writeCost(&b, c.Cost, countries)
	writeRisk(&b, c.Risk, countries)

	if c.Recommendation != "" {
		b.WriteString("## 綜合建議\n\n")
		b.WriteString(strings.TrimSpace(c.Recommendation))
		b.WriteString("\n")
	}
	return b.String()
}

func writeLegal(b *strings.Builder, l *model.LegalComparison, countries []string) {
	if l == nil {
		return
	}
	b.WriteString("## 法規\n\n")
	t := newTable(b, "國家", "合規難度")
	for _, c := range countries {
		t.row(c, num(l.ComplianceScores[c]))
	}
	b.WriteString("\n")

	for _, cat := range sortedKeys(l.CategoryComparisons) {
		cc := l.CategoryComparisons[cat]
		fmt.Fprintf(b, "### %s\n\n", cat)
		if cc.Summary != "" {
			b.WriteString(cc.Summary + "\n\n")
		}
		headers := append([]string{"面向"}, countries...)
		if len(cc.KeyDifferences) > 0 {
			t := newTable(b, headers...)
			for _, kd := range cc.KeyDifferences {
				cells := []string{kd.Aspect}
				for _, c := range countries {
					cells = append(cells, kd.Differences[c])
				}
				t.row(cells...)
			}
			b.WriteString("\n")
		}
		scores := []string{"評分"}
		for _, c := range countries {
			scores = append(scores, num(cc.Scores[c]))
		}
		newTable(b, headers...).row(scores...)
		b.WriteString("\n")
	}
}

func writeTax(b *strings.Builder, t *model.TaxComparison, countries []string) {
	if t == nil {
		return
	}
	b.WriteString("## 稅務\n\n")
	tbl := newTable(b, "國家", "稅務負擔", "所得稅級距", "社會保障", "租稅協定")
	for _, c := range countries {
		tbl.row(c, num(t.TaxBurden[c]), rates(t.IncomeTax[c]), rates(t.SocialSecurity[c]), strings.Join(t.Treaties[c], ", "))
	}
	b.WriteString("\n")
}

func writeInsurance(b *strings.Builder, ins *model.InsuranceComparison, countries []string) {
	if ins == nil {
		return
	}
	b.WriteString("## 保險\n\n")
	t := newTable(b, "國家", "強制保險", "雇主負擔", "員工負擔", "雇主總成本")
	for _, c := range countries {
		t.row(c, strings.Join(ins.Mandatory[c], ", "), rates(ins.Employer[c]), rates(ins.Employee[c]), num(ins.EmployerCost[c]))
	}
	b.WriteString("\n")
}

func writeCost(b *strings.Builder, cost *model.CostComparison, countries []string) {
	if cost == nil {
		return
	}
	b.WriteString("## 成本\n\n")
	t := newTable(b, append([]string{"項目"}, countries...)...)
	for _, name := range sortedKeys(cost.CostTypes) {
		cells := []string{name}
		for _, c := range countries {
			item, ok := cost.CostTypes[name][c]
			if !ok {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, fmt.Sprintf("%s %s/%s", num(item.Amount), item.Currency, item.Frequency))
		}
		t.row(cells...)
	}
	total := []string{"總計"}
	for _, c := range countries {
		total = append(total, num(cost.TotalCosts[c]))
	}
	t.row(total...)
	b.WriteString("\n")
}

func writeRisk(b *strings.Builder, r *model.RiskComparison, countries []string) {
	if r == nil {
		return
	}
	b.WriteString("## 風險\n\n")
	t := newTable(b, append([]string{"風險"}, countries...)...)
	for _, name := range sortedKeys(r.RiskTypes) {
		cells := []string{name}
		for _, c := range countries {
			item, ok := r.RiskTypes[name][c]
			if !ok {
				cells = append(cells, "-")
				continue
			}
			cells = append(cells, num(item.RiskScore))
		}
		t.row(cells...)
	}
	avg := []string{"平均"}
	for _, c := range countries {
		avg = append(avg, num(r.RiskScores[c]))
	}
	t.row(avg...)
	b.WriteString("\n")
}

// rates renders "k: v" pairs in key order.
func rates(m map[string]float64) string {
	parts := make([]string, 0, len(m))
	for _, k := range sortedKeys(m) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, num(m[k])))
	}
	return strings.Join(parts, ", ")
}
