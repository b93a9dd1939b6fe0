package config

import "time"

// ParserConfig controls how site-map documents are located and read
type ParserConfig struct {
	SectionHeading    string   `json:"section_heading,omitempty" yaml:"section_heading,omitempty" validate:"required"`
	MaxDocumentSizeMB int      `json:"max_document_size_mb,omitempty" yaml:"max_document_size_mb,omitempty" validate:"min=1"`
	TimeoutSecs       int      `json:"parse_timeout_secs,omitempty" yaml:"parse_timeout_secs,omitempty" validate:"min=0"`
	URLPrefixes       []string `json:"url_prefixes,omitempty" yaml:"url_prefixes,omitempty" validate:"min=1,dive,required"`
}

// NewDefaultParserConfig creates default parser configuration
func NewDefaultParserConfig() ParserConfig {
	return ParserConfig{
		SectionHeading:    DefaultParserSectionHeading,
		MaxDocumentSizeMB: DefaultParserMaxDocumentSizeMB,
		TimeoutSecs:       DefaultParserTimeoutSecs,
		URLPrefixes:       append([]string(nil), DefaultParserURLPrefixes...),
	}
}

// MaxDocumentSizeBytes returns the document size ceiling in bytes.
func (c ParserConfig) MaxDocumentSizeBytes() int64 {
	return int64(c.MaxDocumentSizeMB) * 1024 * 1024
}

// Timeout returns the parse deadline; zero disables it.
func (c ParserConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSecs) * time.Second
}
