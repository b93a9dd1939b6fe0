package config

// OutputConfig selects how results are written
type OutputConfig struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,outputformat"`
}

// NewDefaultOutputConfig creates default output configuration
func NewDefaultOutputConfig() OutputConfig {
	return OutputConfig{Format: DefaultOutputFormat}
}
