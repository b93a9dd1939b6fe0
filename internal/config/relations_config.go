package config

// RelationsConfig controls co-occurrence results
type RelationsConfig struct {
	Limit int `json:"limit,omitempty" yaml:"limit,omitempty" validate:"min=1,max=10"`
}

// NewDefaultRelationsConfig creates default relations configuration
func NewDefaultRelationsConfig() RelationsConfig {
	return RelationsConfig{Limit: DefaultRelationsLimit}
}
