package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Complexity keywords, checked in the order high, medium, low.
var (
	HighComplexityKeywords   = []string{"比較", "分析", "評估", "建議", "優化", "設計"}
	MediumComplexityKeywords = []string{"說明", "描述", "列舉", "總結"}
	LowComplexityKeywords    = []string{"是否", "什麼", "如何", "哪些"}
)

// Length fallback thresholds, in characters.
const (
	HighComplexityLength   = 100
	MediumComplexityLength = 50
)

// Router configuration
const (
	DefaultHistoryCap     = 1000
	DefaultLookbackWindow = 10
	SimilarityThreshold   = 0.2
	FallbackModel         = "fast"
)

// Performance metric keys
const (
	MetricPerformanceScore = "performance_score"
	MetricLastUpdated      = "last_updated"
)
