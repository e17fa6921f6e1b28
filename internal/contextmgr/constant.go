package contextmgr

// Relevance tiers. Scores above PrimaryThreshold are primary; scores in
// [SecondaryThreshold, PrimaryThreshold] are secondary; lower scores are dropped.
const (
	PrimaryThreshold   = 0.7
	SecondaryThreshold = 0.3
)

const (
	DefaultTopK              = 5
	DefaultContextType       = "general"
	DefaultSource            = "unknown"
	DefaultAttachedRelevance = 0.5

	MetadataSource    = "source"
	MetadataTimestamp = "timestamp"
)
