package router

import (
	"time"

	"hr-assistant/internal/model"
)

// RouteInput is a routing request. Context is optional.
type RouteInput struct {
	Query    string
	TaskType string
	Context  *model.ModelContext
}

// Statistics summarise the routing history.
type Statistics struct {
	TotalRoutes          int                   `json:"total_routes"`
	ModelDistribution    map[model.ModelID]int `json:"model_distribution"`
	TaskTypeDistribution map[string]int        `json:"task_type_distribution"`
}

// FeatureExtractor computes task features. It may fail when backed by an external service.
type FeatureExtractor func(query, taskType string) (model.TaskFeatures, error)

// Options configures the router.
type Options struct {
	HistoryCap     int
	LookbackWindow int
	Features       FeatureExtractor
	Now            func() time.Time
}
