package modelregistry

import "errors"

var (
	ErrUnknownModel    = errors.New("unknown model variant")
	ErrNoVariants      = errors.New("no model variants configured")
	ErrInvalidConfig   = errors.New("invalid model config")
	ErrProviderMissing = errors.New("model variant bound to unknown provider")
)
