package session

import (
	"strings"

	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
)

// AddManualTag attaches label to parameter name. Labels are kept per
// session, survive reloads, and are deduplicated.
func (s *Session) AddManualTag(name, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return errorwrapper.NewValidationError("tag", label, "tag must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return errorwrapper.ErrNoData
	}
	if _, ok := s.current.index.Params[name]; !ok {
		return errorwrapper.NewNotFoundError(name)
	}
	if contains(s.manualTags[name], label) {
		return nil
	}

	s.manualTags[name] = append(s.manualTags[name], label)
	s.logger.Debug().Str("param", name).Str("tag", label).Msg("Manual tag added")
	return nil
}

// RemoveManualTag detaches label from name. Removing an absent label is a no-op.
func (s *Session) RemoveManualTag(name, label string) error {
	label = strings.TrimSpace(label)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return errorwrapper.ErrNoData
	}

	labels := s.manualTags[name]
	for i, existing := range labels {
		if existing != label {
			continue
		}
		labels = append(labels[:i:i], labels[i+1:]...)
		if len(labels) == 0 {
			delete(s.manualTags, name)
		} else {
			s.manualTags[name] = labels
		}
		s.logger.Debug().Str("param", name).Str("tag", label).Msg("Manual tag removed")
		return nil
	}
	return nil
}

// ManualTags returns the labels attached to name.
func (s *Session) ManualTags(name string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.manualTags[name]...)
}

func contains(values []string, v string) bool {
	for _, existing := range values {
		if existing == v {
			return true
		}
	}
	return false
}
