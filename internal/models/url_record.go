package models

// Parameter is a single query-string key/value pair observed under a URL.
// Value is empty when the source line carried no '=' or nothing after it.
type Parameter struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// URLRecord holds one URL from the site-map section together with its
// parameters in document order. Records leaving the parser always carry at
// least one parameter.
type URLRecord struct {
	URL        string      `json:"url" yaml:"url"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
}

// KeySet returns the distinct parameter keys of the record in first-seen order.
func (r URLRecord) KeySet() []string {
	seen := make(map[string]struct{}, len(r.Parameters))
	keys := make([]string, 0, len(r.Parameters))
	for _, p := range r.Parameters {
		if _, ok := seen[p.Key]; ok {
			continue
		}
		seen[p.Key] = struct{}{}
		keys = append(keys, p.Key)
	}
	return keys
}

// HasKey reports whether any parameter of the record uses key.
func (r URLRecord) HasKey(key string) bool {
	for _, p := range r.Parameters {
		if p.Key == key {
			return true
		}
	}
	return false
}
