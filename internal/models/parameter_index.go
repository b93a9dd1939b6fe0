package models

// ParameterEntry aggregates every occurrence of one parameter name.
type ParameterEntry struct {
	Key              string    `json:"key" yaml:"key"`
	Values           *ValueMap `json:"values" yaml:"values"`
	TotalOccurrences int       `json:"total_occurrences" yaml:"total_occurrences"`
	AutoTags         []string  `json:"auto_tags" yaml:"auto_tags"`
	ManualTags       []string  `json:"manual_tags,omitempty" yaml:"manual_tags,omitempty"`
	HasEmptyValues   bool      `json:"has_empty_values" yaml:"has_empty_values"`
}

// NewParameterEntry creates an entry with no occurrences.
func NewParameterEntry(key string, autoTags []string) *ParameterEntry {
	if autoTags == nil {
		autoTags = []string{}
	}
	return &ParameterEntry{
		Key:      key,
		Values:   NewValueMap(),
		AutoTags: autoTags,
	}
}

// HasValues reports whether the entry carries at least one real value:
// it never saw an empty value, or it saw more than one distinct value.
func (e *ParameterEntry) HasValues() bool {
	return !e.HasEmptyValues || e.Values.Len() > 1
}

// HasTag reports whether label is among the auto or manual tags.
func (e *ParameterEntry) HasTag(label string) bool {
	for _, t := range e.AutoTags {
		if t == label {
			return true
		}
	}
	for _, t := range e.ManualTags {
		if t == label {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can hold it outside the session lock.
func (e *ParameterEntry) Clone() *ParameterEntry {
	return &ParameterEntry{
		Key:              e.Key,
		Values:           e.Values.Clone(),
		TotalOccurrences: e.TotalOccurrences,
		AutoTags:         append([]string{}, e.AutoTags...),
		ManualTags:       append([]string(nil), e.ManualTags...),
		HasEmptyValues:   e.HasEmptyValues,
	}
}

// ParameterIndex is the aggregated, sorted view over one loaded document.
// It is derived data and can be rebuilt from the URL records at any time.
type ParameterIndex struct {
	Params        map[string]*ParameterEntry `json:"params" yaml:"params"`
	AllParamNames []string                   `json:"all_param_names" yaml:"all_param_names"`
	TotalURLs     int                        `json:"total_urls" yaml:"total_urls"`
	TotalParams   int                        `json:"total_params" yaml:"total_params"`
}

// NewParameterIndex creates an empty index
func NewParameterIndex() *ParameterIndex {
	return &ParameterIndex{
		Params:        make(map[string]*ParameterEntry),
		AllParamNames: []string{},
	}
}

// Clone returns a deep copy of the index.
func (idx *ParameterIndex) Clone() *ParameterIndex {
	clone := &ParameterIndex{
		Params:        make(map[string]*ParameterEntry, len(idx.Params)),
		AllParamNames: append([]string{}, idx.AllParamNames...),
		TotalURLs:     idx.TotalURLs,
		TotalParams:   idx.TotalParams,
	}
	for key, entry := range idx.Params {
		clone.Params[key] = entry.Clone()
	}
	return clone
}

// IndexStats holds the headline counters shown for a loaded dataset.
type IndexStats struct {
	TotalURLs      int            `json:"total_urls" yaml:"total_urls"`
	TotalParams    int            `json:"total_params" yaml:"total_params"`
	TotalInstances int            `json:"total_instances" yaml:"total_instances"`
	TaggedParams   int            `json:"tagged_params" yaml:"tagged_params"`
	TagCounts      map[string]int `json:"tag_counts" yaml:"tag_counts"`
}
