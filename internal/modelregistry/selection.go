package modelregistry

import "hr-assistant/internal/model"

// Task types with a dedicated rule.
const (
	TaskLegal    = "legal"
	TaskCreative = "creative"
)

// LongContextThreshold is the context length above which legal tasks need the long-context model.
const LongContextThreshold = 3000

// SelectBest picks a variant from the task type and context length.
func SelectBest(taskType string, contextLength int) model.ModelID {
	switch {
	case taskType == TaskLegal && contextLength > LongContextThreshold:
		return model.ModelLongContext
	case taskType == TaskCreative:
		return model.ModelHighCapability
	default:
		return model.ModelFast
	}
}
