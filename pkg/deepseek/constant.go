package deepseek

import "time"

const (
	// DefaultBaseURL is the default DeepSeek API endpoint
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is the long-context reasoning model.
	DefaultModel = "deepseek-reasoner"

	DefaultTimeout = 120 * time.Second
)
