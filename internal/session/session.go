package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/aleister1102/paramindex/internal/aggregator"
	"github.com/aleister1102/paramindex/internal/common/contextutils"
	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/aleister1102/paramindex/internal/common/file"
	"github.com/aleister1102/paramindex/internal/config"
	"github.com/aleister1102/paramindex/internal/models"
	"github.com/aleister1102/paramindex/internal/parser"
	"github.com/aleister1102/paramindex/internal/relations"
	"github.com/aleister1102/paramindex/internal/tagger"
	"github.com/rs/zerolog"
)

// dataset is one loaded document. It is never mutated after construction,
// so readers may keep using it after releasing the lock.
type dataset struct {
	source   string
	loadedAt time.Time
	records  []models.URLRecord
	index    *models.ParameterIndex
	stats    models.IndexStats
}

// Session holds the currently loaded dataset and the analyst's manual tags.
// Each load swaps the whole dataset under the write lock; every read works
// on a snapshot taken under the read lock.
type Session struct {
	mu         sync.RWMutex
	current    *dataset
	manualTags map[string][]string

	cfg         config.ParserConfig
	parser      *parser.Parser
	aggregator  *aggregator.Aggregator
	relations   *relations.Engine
	fileManager *file.FileManager
	logger      zerolog.Logger
}

// NewSession wires a session from the global configuration.
func NewSession(cfg *config.GlobalConfig, logger zerolog.Logger) *Session {
	if cfg == nil {
		cfg = config.NewDefaultGlobalConfig()
	}
	classifier := tagger.NewClassifierFromConfig(cfg.TaggerConfig)

	return &Session{
		manualTags:  make(map[string][]string),
		cfg:         cfg.ParserConfig,
		parser:      parser.NewParser(cfg.ParserConfig, logger),
		aggregator:  aggregator.NewAggregator(classifier),
		relations:   relations.NewEngine(classifier, cfg.RelationsConfig.Limit),
		fileManager: file.NewFileManager(logger),
		logger:      logger.With().Str("component", "Session").Logger(),
	}
}

// LoadDocument parses and aggregates content, then replaces the current
// dataset. On error the previous dataset stays in place.
func (s *Session) LoadDocument(ctx context.Context, content []byte) (*models.ParameterIndex, error) {
	return s.load(ctx, "document", content)
}

// LoadFile reads path within the configured size and time ceilings and loads it.
func (s *Session) LoadFile(ctx context.Context, path string) (*models.ParameterIndex, error) {
	content, err := s.fileManager.ReadFile(path, s.readOptions(ctx))
	if err != nil {
		return nil, errorwrapper.NewParseError(path, "failed to read document", err)
	}
	return s.load(ctx, path, content)
}

// LoadReader reads r within the configured ceilings and loads it. name labels
// the source in logs and errors.
func (s *Session) LoadReader(ctx context.Context, name string, r io.Reader) (*models.ParameterIndex, error) {
	content, err := s.fileManager.ReadAll(name, r, s.readOptions(ctx))
	if err != nil {
		return nil, errorwrapper.NewParseError(name, "failed to read document", err)
	}
	return s.load(ctx, name, content)
}

func (s *Session) readOptions(ctx context.Context) file.FileReadOptions {
	opts := file.DefaultFileReadOptions()
	opts.Context = ctx
	opts.MaxSize = s.cfg.MaxDocumentSizeBytes()
	opts.Timeout = s.cfg.Timeout()
	return opts
}

func (s *Session) load(ctx context.Context, source string, content []byte) (*models.ParameterIndex, error) {
	if limit := s.cfg.MaxDocumentSizeBytes(); limit > 0 && int64(len(content)) > limit {
		return nil, errorwrapper.NewParseError(source,
			fmt.Sprintf("document is %d bytes, limit is %d", len(content), limit), errorwrapper.ErrTooLarge)
	}

	if timeout := s.cfg.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	records, err := s.parser.Parse(ctx, content)
	if err != nil {
		if contextutils.IsContextError(err) {
			s.logger.Warn().Err(err).Str("source", source).Msg("Document load cancelled")
		} else {
			s.logger.Error().Err(err).Str("source", source).Msg("Failed to parse document")
		}
		var parseErr *errorwrapper.ParseError
		if errors.As(err, &parseErr) && parseErr.Source == "" {
			parseErr.Source = source
		}
		return nil, err
	}

	index := s.aggregator.Aggregate(records)
	next := &dataset{
		source:   source,
		loadedAt: time.Now(),
		records:  records,
		index:    index,
		stats:    s.aggregator.Stats(index),
	}

	s.mu.Lock()
	s.current = next
	tags := s.copyManualTagsLocked()
	s.mu.Unlock()

	s.logger.Info().
		Str("source", source).
		Int("size_bytes", len(content)).
		Int("urls", index.TotalURLs).
		Int("params", index.TotalParams).
		Dur("duration", time.Since(start)).
		Msg("Document loaded")

	if index.TotalURLs == 0 {
		s.logger.Warn().Str("source", source).Str("heading", s.cfg.SectionHeading).Msg("No URLs with parameters found in document")
	}

	return withManualTags(index.Clone(), tags), nil
}

// snapshot returns the current dataset and a copy of the manual tags.
func (s *Session) snapshot() (*dataset, map[string][]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, nil, errorwrapper.ErrNoData
	}

	return s.current, s.copyManualTagsLocked(), nil
}

// copyManualTagsLocked copies the manual tag map; s.mu must be held.
func (s *Session) copyManualTagsLocked() map[string][]string {
	tags := make(map[string][]string, len(s.manualTags))
	for name, labels := range s.manualTags {
		tags[name] = append([]string(nil), labels...)
	}
	return tags
}

func withManualTags(index *models.ParameterIndex, tags map[string][]string) *models.ParameterIndex {
	for name, entry := range index.Params {
		entry.ManualTags = tags[name]
	}
	return index
}

// Index returns a copy of the current parameter index with manual tags attached.
func (s *Session) Index() (*models.ParameterIndex, error) {
	ds, tags, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	return withManualTags(ds.index.Clone(), tags), nil
}

// Stats returns the headline counters of the current dataset.
func (s *Session) Stats() (models.IndexStats, error) {
	ds, _, err := s.snapshot()
	if err != nil {
		return models.IndexStats{}, err
	}

	stats := ds.stats
	stats.TagCounts = make(map[string]int, len(ds.stats.TagCounts))
	for tag, n := range ds.stats.TagCounts {
		stats.TagCounts[tag] = n
	}
	return stats, nil
}

// Source returns the label and load time of the current dataset.
func (s *Session) Source() (string, time.Time, error) {
	ds, _, err := s.snapshot()
	if err != nil {
		return "", time.Time{}, err
	}
	return ds.source, ds.loadedAt, nil
}

// GetParameter returns a copy of the entry for name.
func (s *Session) GetParameter(name string) (*models.ParameterEntry, error) {
	ds, tags, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	entry, ok := ds.index.Params[name]
	if !ok {
		return nil, errorwrapper.NewNotFoundError(name)
	}

	clone := entry.Clone()
	clone.ManualTags = tags[name]
	return clone, nil
}

// GetRelationships returns the parameters most often seen alongside name.
// An unknown name yields an empty slice.
func (s *Session) GetRelationships(name string) ([]models.Relationship, error) {
	ds, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return s.relations.CoOccurrence(ds.records, name), nil
}

// SearchParameters returns the names containing term, case-insensitively,
// in index order. An empty term matches every name.
func (s *Session) SearchParameters(term string) ([]string, error) {
	ds, _, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(term))
	matches := []string{}
	for _, name := range ds.index.AllParamNames {
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// FilterByTag returns the names carrying label as an auto or manual tag, in
// index order.
func (s *Session) FilterByTag(label string) ([]string, error) {
	ds, tags, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	matches := []string{}
	for _, name := range ds.index.AllParamNames {
		entry := ds.index.Params[name]
		if entry.HasTag(label) || contains(tags[name], label) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}
