package config

// CustomTagConfig declares an extra heuristic category or extends an existing one
type CustomTagConfig struct {
	Label    string   `json:"label" yaml:"label" validate:"required"`
	Patterns []string `json:"patterns" yaml:"patterns" validate:"min=1,dive,required"`
}

// TaggerConfig extends the built-in parameter-name tag table
type TaggerConfig struct {
	DisableDefaults bool              `json:"disable_defaults,omitempty" yaml:"disable_defaults,omitempty"`
	CustomTags      []CustomTagConfig `json:"custom_tags,omitempty" yaml:"custom_tags,omitempty" validate:"dive"`
}

// NewDefaultTaggerConfig creates default tagger configuration
func NewDefaultTaggerConfig() TaggerConfig {
	return TaggerConfig{}
}
