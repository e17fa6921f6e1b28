package usecase

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"hr-assistant/internal/rag"
)

var (
	expertPatterns   = compileIndicators(rag.ExpertIndicators)
	complexPatterns  = compileIndicators(rag.ComplexIndicators)
	moderatePatterns = compileIndicators(rag.ModerateIndicators)
	simplePatterns   = compileIndicators(rag.SimpleIndicators)

	hanRun     = regexp.MustCompile(`\p{Han}+`)
	whitespace = regexp.MustCompile(`\s+`)
)

// RE2's \w is ASCII only.
func compileIndicators(patterns []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(strings.ReplaceAll(p, `\w`, `[\p{L}\p{N}_]`))
	}
	return out
}

// Analyze grades a query. It is pure and never fails on non-empty input.
func (uc *implUseCase) Analyze(ctx context.Context, query string) (rag.Analysis, error) {
	if strings.TrimSpace(query) == "" {
		return rag.Analysis{}, rag.ErrEmptyQuery
	}
	a := AnalyzeQuery(query)
	uc.l.Debugf(ctx, "rag.Analyze: complexity=%s chunks=%d topics=%v", a.Complexity, a.SuggestedChunks, a.Topics)
	return a, nil
}

// AnalyzeQuery extracts keywords and topics, grades complexity and scores the confidence of the grade.
func AnalyzeQuery(query string) rag.Analysis {
	cleaned := whitespace.ReplaceAllString(strings.TrimSpace(query), " ")
	keywords := extractKeywords(cleaned)
	topics := identifyTopics(cleaned)
	complexity, reasoning := gradeComplexity(cleaned, keywords, topics)

	return rag.Analysis{
		Complexity:      complexity,
		SuggestedChunks: suggestedChunks(complexity),
		Topics:          topics,
		Keywords:        keywords,
		Confidence:      confidence(cleaned, keywords),
		Reasoning:       reasoning,
	}
}

// extractKeywords returns distinct Han runs of at least two characters in first-seen order.
func extractKeywords(query string) []string {
	keywords := []string{}
	seen := map[string]bool{}
	for _, run := range hanRun.FindAllString(query, -1) {
		if utf8.RuneCountInString(run) < rag.MinKeywordRunes || seen[run] {
			continue
		}
		seen[run] = true
		keywords = append(keywords, run)
	}
	return keywords
}

func identifyTopics(query string) []string {
	lower := strings.ToLower(query)
	topics := []string{}
	for _, t := range rag.Topics {
		for _, term := range t.Terms {
			if strings.Contains(lower, strings.ToLower(term)) {
				topics = append(topics, t.Name)
				break
			}
		}
	}
	return topics
}

func gradeComplexity(query string, keywords, topics []string) (rag.QueryComplexity, string) {
	var reasons []string

	if m := matchAll(query, expertPatterns); len(m) > 0 {
		return rag.ComplexityExpert, fmt.Sprintf("expert indicators: %v", m)
	}

	if m := matchAll(query, complexPatterns); len(m) > 0 || len(topics) >= rag.ComplexTopicCount {
		if len(m) > 0 {
			reasons = append(reasons, fmt.Sprintf("complex indicators: %v", m))
		}
		if len(topics) >= rag.ComplexTopicCount {
			reasons = append(reasons, fmt.Sprintf("spans %d topics: %v", len(topics), topics))
		}
		return rag.ComplexityComplex, strings.Join(reasons, "; ")
	}

	if m := matchAll(query, moderatePatterns); len(m) > 0 || len(keywords) >= rag.ManyKeywords || len(topics) == 2 {
		if len(m) > 0 {
			reasons = append(reasons, fmt.Sprintf("moderate indicators: %v", m))
		}
		if len(keywords) >= rag.ManyKeywords {
			reasons = append(reasons, fmt.Sprintf("%d keywords", len(keywords)))
		}
		if len(topics) == 2 {
			reasons = append(reasons, fmt.Sprintf("spans two topics: %v", topics))
		}
		return rag.ComplexityModerate, strings.Join(reasons, "; ")
	}

	if m := matchAll(query, simplePatterns); len(m) > 0 || len(keywords) <= rag.FewKeywords {
		if len(m) > 0 {
			reasons = append(reasons, fmt.Sprintf("simple indicators: %v", m))
		}
		if len(keywords) <= rag.FewKeywords {
			reasons = append(reasons, fmt.Sprintf("only %d keywords", len(keywords)))
		}
		return rag.ComplexitySimple, strings.Join(reasons, "; ")
	}

	return rag.ComplexityModerate, "default"
}

// matchAll returns the text matched by each pattern that hits.
func matchAll(query string, patterns []*regexp.Regexp) []string {
	var out []string
	for _, re := range patterns {
		if m := re.FindString(query); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func suggestedChunks(c rag.QueryComplexity) int {
	switch c {
	case rag.ComplexitySimple:
		return rag.ChunksSimple
	case rag.ComplexityComplex:
		return rag.ChunksComplex
	case rag.ComplexityExpert:
		return rag.ChunksExpert
	default:
		return rag.ChunksModerate
	}
}

// confidence rises with keyword count and for mid-length queries, rounded to two decimals.
func confidence(query string, keywords []string) float64 {
	c := rag.BaseConfidence
	if len(keywords) > 0 {
		c += min(rag.MaxKeywordConfidence, float64(len(keywords))*rag.KeywordConfidence)
	}
	switch n := utf8.RuneCountInString(query); {
	case n >= 10 && n <= 50:
		c += 0.1
	case n > 100:
		c -= 0.1
	}
	return math.Round(min(rag.MaxConfidence, c)*100) / 100
}
