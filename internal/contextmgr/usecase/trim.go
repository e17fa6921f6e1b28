package usecase

import "hr-assistant/internal/model"

// trim evicts the lowest-relevance secondary window until the context fits.
// Ties evict the earliest window. Primary windows are never evicted, so a
// primary-only context may stay over the limit.
func trim(mc *model.ModelContext) {
	for mc.ContentLength() > mc.MaxContextLength && len(mc.Secondary) > 0 {
		lowest := 0
		for i, w := range mc.Secondary {
			if w.RelevanceScore < mc.Secondary[lowest].RelevanceScore {
				lowest = i
			}
		}
		mc.Secondary = append(mc.Secondary[:lowest], mc.Secondary[lowest+1:]...)
	}
}
