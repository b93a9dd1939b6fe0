package logger

import (
	"strings"

	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/aleister1102/paramindex/internal/config"
	"github.com/rs/zerolog"
)

// Format selects how log events are rendered.
type Format string

const (
	FormatConsole Format = "console"
	FormatJSON    Format = "json"
	FormatText    Format = "text"
)

// Options is the resolved logger setup derived from config.LogConfig.
type Options struct {
	Level      zerolog.Level
	Format     Format
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
}

// FileEnabled reports whether events are also written to a rotated file.
func (o Options) FileEnabled() bool {
	return o.FilePath != ""
}

// OptionsFromConfig resolves cfg. Unknown levels fall back to info and are
// reported through the returned error; unknown formats fall back to console.
func OptionsFromConfig(cfg config.LogConfig) (Options, error) {
	level, err := parseLevel(cfg.LogLevel)

	opts := Options{
		Level:      level,
		Format:     parseFormat(cfg.LogFormat),
		FilePath:   cfg.LogFile,
		MaxSizeMB:  cfg.MaxLogSizeMB,
		MaxBackups: cfg.MaxLogBackups,
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = config.DefaultMaxLogSizeMB
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = config.DefaultMaxLogBackups
	}
	return opts, err
}

func parseLevel(raw string) (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.NewValidationError("log_level", raw, "unknown log level")
	}
	// An empty level parses as NoLevel, which would log everything.
	if level == zerolog.NoLevel {
		return zerolog.InfoLevel, nil
	}
	return level, nil
}

func parseFormat(raw string) Format {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatJSON:
		return FormatJSON
	case FormatText:
		return FormatText
	default:
		return FormatConsole
	}
}
