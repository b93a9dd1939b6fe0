package tagger

import (
	"strings"

	"github.com/aleister1102/paramindex/internal/config"
)

// Classifier assigns heuristic category labels to parameter names.
// The rule table is fixed at construction and never mutated, so a
// Classifier is safe for concurrent use.
type Classifier struct {
	rules []TagRule
}

// NewClassifier creates a classifier over the default table.
func NewClassifier() *Classifier {
	return NewClassifierWithRules(DefaultRules)
}

// NewClassifierWithRules creates a classifier over rules. Patterns are
// lower-cased, empty ones dropped, and rules sharing a label merged in place.
func NewClassifierWithRules(rules []TagRule) *Classifier {
	c := &Classifier{}
	position := make(map[string]int)
	for _, rule := range rules {
		idx, ok := position[rule.Label]
		if !ok {
			idx = len(c.rules)
			position[rule.Label] = idx
			c.rules = append(c.rules, TagRule{Label: rule.Label})
		}
		for _, p := range rule.Patterns {
			p = strings.ToLower(strings.TrimSpace(p))
			if p == "" {
				continue
			}
			c.rules[idx].Patterns = append(c.rules[idx].Patterns, p)
		}
	}
	return c
}

// NewClassifierFromConfig builds the default table extended with the custom
// categories from cfg, appended after the built-in ones.
func NewClassifierFromConfig(cfg config.TaggerConfig) *Classifier {
	rules := make([]TagRule, 0, len(DefaultRules)+len(cfg.CustomTags))
	if !cfg.DisableDefaults {
		rules = append(rules, DefaultRules...)
	}
	for _, custom := range cfg.CustomTags {
		rules = append(rules, TagRule{Label: custom.Label, Patterns: custom.Patterns})
	}
	return NewClassifierWithRules(rules)
}

// Classify returns the labels whose patterns occur in name, case-insensitively,
// in table order. The result is never nil.
func (c *Classifier) Classify(name string) []string {
	tags := []string{}
	lower := strings.ToLower(name)
	for _, rule := range c.rules {
		if matchesAny(lower, rule.Patterns) {
			tags = append(tags, rule.Label)
		}
	}
	return tags
}

// Labels returns every label in table order.
func (c *Classifier) Labels() []string {
	labels := make([]string, len(c.rules))
	for i, rule := range c.rules {
		labels[i] = rule.Label
	}
	return labels
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}
