package reporter

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/aleister1102/paramindex/internal/config"
	"github.com/aleister1102/paramindex/internal/models"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Reporter renders query results in one output format.
type Reporter struct {
	format string
	logger zerolog.Logger
}

// relationshipReport wraps co-occurrence results with their target.
type relationshipReport struct {
	Param         string                `json:"param" yaml:"param"`
	Relationships []models.Relationship `json:"relationships" yaml:"relationships"`
}

// namesReport wraps a plain name list with the query that produced it.
type namesReport struct {
	Query string   `json:"query" yaml:"query"`
	Names []string `json:"names" yaml:"names"`
}

// NewReporter creates a reporter for cfg.Format. An empty format means JSON.
func NewReporter(cfg config.OutputConfig, logger zerolog.Logger) (*Reporter, error) {
	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format == "" {
		format = FormatJSON
	}

	switch format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return nil, errorwrapper.NewValidationError("format", cfg.Format, "must be one of json, yaml, text")
	}

	return &Reporter{
		format: format,
		logger: logger.With().Str("component", "Reporter").Str("format", format).Logger(),
	}, nil
}

// Format returns the selected output format.
func (r *Reporter) Format() string {
	return r.format
}

// WriteIndex writes the whole parameter index.
func (r *Reporter) WriteIndex(w io.Writer, index *models.ParameterIndex) error {
	if index == nil {
		index = models.NewParameterIndex()
	}
	if r.format == FormatText {
		return writeIndexText(w, index)
	}
	return r.encode(w, index)
}

// WriteEntry writes the detail of one parameter.
func (r *Reporter) WriteEntry(w io.Writer, entry *models.ParameterEntry) error {
	if entry == nil {
		return errorwrapper.NewError("nothing to report: entry is nil")
	}
	if r.format == FormatText {
		return writeEntryText(w, entry)
	}
	return r.encode(w, entry)
}

// WriteRelationships writes the co-occurrence partners of param.
func (r *Reporter) WriteRelationships(w io.Writer, param string, rels []models.Relationship) error {
	if rels == nil {
		rels = []models.Relationship{}
	}
	if r.format == FormatText {
		return writeRelationshipsText(w, param, rels)
	}
	return r.encode(w, relationshipReport{Param: param, Relationships: rels})
}

// WriteStats writes the headline counters.
func (r *Reporter) WriteStats(w io.Writer, stats models.IndexStats, labels []string) error {
	if r.format == FormatText {
		return writeStatsText(w, stats, labels)
	}
	return r.encode(w, stats)
}

// WriteNames writes a list of parameter names produced by query.
func (r *Reporter) WriteNames(w io.Writer, query string, names []string) error {
	if names == nil {
		names = []string{}
	}
	if r.format == FormatText {
		return writeNamesText(w, names)
	}
	return r.encode(w, namesReport{Query: query, Names: names})
}

func (r *Reporter) encode(w io.Writer, v any) error {
	switch r.format {
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return errorwrapper.WrapError(err, "failed to encode YAML output")
		}
		if err := encoder.Close(); err != nil {
			return errorwrapper.WrapError(err, "failed to flush YAML output")
		}
	default:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", JSONIndent)
		if err := encoder.Encode(v); err != nil {
			return errorwrapper.WrapError(err, "failed to encode JSON output")
		}
	}

	r.logger.Debug().Msg("Report written")
	return nil
}
