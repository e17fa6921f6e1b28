package modelregistry

import (
	"fmt"

	"hr-assistant/config"
	"hr-assistant/internal/model"
)

// ConfigsFromConfig overlays models.variants on the capability table. It returns the merged
// configs, the variants to initialize, and the default variant.
func ConfigsFromConfig(cfg config.ModelsConfig) (map[model.ModelID]model.ModelConfig, []model.ModelID, model.ModelID, error) {
	configs := model.Capabilities()
	var variants []model.ModelID

	for _, v := range cfg.Variants {
		id, err := model.ParseModelID(v.ID)
		if err != nil {
			return nil, nil, "", fmt.Errorf("%w: %s", ErrUnknownModel, v.ID)
		}
		mc := configs[id]
		if v.Temperature > 0 {
			mc.Temperature = v.Temperature
		}
		if v.MaxTokens > 0 {
			mc.MaxTokens = v.MaxTokens
		}
		if mc.ExtraParams == nil {
			mc.ExtraParams = map[string]any{}
		}
		for k, val := range v.Extra {
			mc.ExtraParams[k] = val
		}
		if v.Provider != "" {
			mc.ExtraParams[ParamProvider] = v.Provider
		}
		if v.Model != "" {
			mc.ExtraParams[ParamModel] = v.Model
		}
		configs[id] = mc
		variants = append(variants, id)
	}

	def := model.ModelFast
	if cfg.Default != "" {
		id, err := model.ParseModelID(cfg.Default)
		if err != nil {
			return nil, nil, "", fmt.Errorf("%w: default %s", ErrUnknownModel, cfg.Default)
		}
		def = id
	}
	return configs, variants, def, nil
}
