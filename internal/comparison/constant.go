package comparison

import "time"

const (
	DefaultCacheTTL = 24 * time.Hour

	// DefaultFocusWeight applies to every domain when no focus areas are given.
	DefaultFocusWeight = 1.0

	// LegalFallbackScore is assigned to every country when a category comparison degrades.
	LegalFallbackScore = 5.0

	RecommendationFallback = "無法生成建議，請稍後再試。"
)
