package usecase_test

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"hr-assistant/internal/rag"
	"hr-assistant/internal/rag/usecase"
)

func TestAnalyzeQuery(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   rag.QueryComplexity
		chunks int
	}{
		{"simple indicator", "什麼是特休", rag.ComplexitySimple, rag.ChunksSimple},
		{"few keywords", "today is fine", rag.ComplexitySimple, rag.ChunksSimple},
		{"moderate indicator", "員工請假注意事項", rag.ComplexityModerate, rag.ChunksModerate},
		{"two topics", "招聘 薪資", rag.ComplexityModerate, rag.ChunksModerate},
		{"many keywords", "甲乙 丙丁 戊己 庚辛 壬癸", rag.ComplexityModerate, rag.ChunksModerate},
		{"default grade", "甲乙 丙丁 戊己 庚辛", rag.ComplexityModerate, rag.ChunksModerate},
		{"three topics", "薪資與績效考核以及培訓", rag.ComplexityComplex, rag.ChunksComplex},
		{"complex indicator", "勞資爭議", rag.ComplexityComplex, rag.ChunksComplex},
		{"expert wins", "什麼是判例分析", rag.ComplexityExpert, rag.ChunksExpert},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.AnalyzeQuery(tt.query)
			if got.Complexity != tt.want || got.SuggestedChunks != tt.chunks {
				t.Errorf("AnalyzeQuery(%q) = %s/%d, want %s/%d (%s)", tt.query, got.Complexity, got.SuggestedChunks, tt.want, tt.chunks, got.Reasoning)
			}
			if got.Reasoning == "" {
				t.Error("reasoning must not be empty")
			}
		})
	}
}

func TestAnalyzeQueryKeywordsAndTopics(t *testing.T) {
	a := usecase.AnalyzeQuery("  特休   特休 我 KPI 年假\t規定 ")
	if want := []string{"特休", "年假", "規定"}; !reflect.DeepEqual(a.Keywords, want) {
		t.Errorf("keywords = %v, want %v", a.Keywords, want)
	}
	if want := []string{"performance", "leave", "policy"}; !reflect.DeepEqual(a.Topics, want) {
		t.Errorf("topics = %v, want %v", a.Topics, want)
	}

	empty := usecase.AnalyzeQuery("hello")
	if empty.Keywords == nil || empty.Topics == nil {
		t.Error("keywords and topics must be empty slices, not nil")
	}
}

func TestAnalyzeQueryConfidence(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  float64
	}{
		{"short, one keyword", "什麼是特休", 0.72},
		{"no keywords", "hi", 0.7},
		{"mid length", "請問台灣勞基法的特休天數", 0.82},
		{"long", strings.Repeat("x", 101), 0.6},
		{"capped", "甲乙 丙丁 戊己 庚辛 壬癸 子丑 寅卯 辰巳 午未 申酉", 0.95},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := usecase.AnalyzeQuery(tt.query).Confidence; got != tt.want {
				t.Errorf("confidence = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	f := newFixture(nil)
	if _, err := f.uc.Analyze(context.Background(), " "); !errors.Is(err, rag.ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
	a, err := f.uc.Analyze(context.Background(), "什麼是特休")
	if err != nil || a.Complexity != rag.ComplexitySimple {
		t.Errorf("unexpected analysis %+v, %v", a, err)
	}
}
