package config

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/aleister1102/paramindex/internal/common/file"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	LogConfig       LogConfig       `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ParserConfig    ParserConfig    `json:"parser_config,omitempty" yaml:"parser_config,omitempty"`
	TaggerConfig    TaggerConfig    `json:"tagger_config,omitempty" yaml:"tagger_config,omitempty"`
	RelationsConfig RelationsConfig `json:"relations_config,omitempty" yaml:"relations_config,omitempty"`
	OutputConfig    OutputConfig    `json:"output_config,omitempty" yaml:"output_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		LogConfig:       NewDefaultLogConfig(),
		ParserConfig:    NewDefaultParserConfig(),
		TaggerConfig:    NewDefaultTaggerConfig(),
		RelationsConfig: NewDefaultRelationsConfig(),
		OutputConfig:    NewDefaultOutputConfig(),
	}
}

// LoadGlobalConfig starts from defaults and overlays the file chosen by
// GetConfigPath. Files ending in .yaml or .yml are read as YAML, anything
// else as JSON. No file found means defaults.
func LoadGlobalConfig(providedPath string, logger zerolog.Logger) (*GlobalConfig, error) {
	cfg := NewDefaultGlobalConfig()
	fileManager := file.NewFileManager(logger)

	if providedPath != "" && !fileManager.FileExists(providedPath) {
		return nil, errorwrapper.NewValidationError("config_file", providedPath, "config file does not exist")
	}

	path := GetConfigPath(providedPath)
	if path == "" {
		logger.Debug().Msg("No config file found, using defaults")
		return cfg, nil
	}

	opts := file.DefaultFileReadOptions()
	opts.MaxSize = MaxConfigFileSizeBytes
	data, err := fileManager.ReadFile(path, opts)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to load config file content")
	}

	if err := decodeConfig(data, path, cfg); err != nil {
		return nil, err
	}

	logger.Debug().Str("path", path).Msg("Config file loaded")
	return cfg, nil
}

func decodeConfig(data []byte, path string, cfg *GlobalConfig) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return errorwrapper.NewError("failed to parse config content from '%s': %w", path, err)
	}
	return nil
}
