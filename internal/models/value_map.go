package models

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// EmptyValue is the key used in a ValueMap for parameters observed without a value.
const EmptyValue = "(empty)"

// ValueMap maps an observed value to the URLs it was seen on. Iteration order
// is the order in which each value was first appended.
type ValueMap struct {
	order []string
	urls  map[string][]string
}

// NewValueMap creates an empty ValueMap
func NewValueMap() *ValueMap {
	return &ValueMap{urls: make(map[string][]string)}
}

// Append records url under value, substituting EmptyValue for a blank value.
func (m *ValueMap) Append(value, url string) {
	if value == "" {
		value = EmptyValue
	}
	if _, ok := m.urls[value]; !ok {
		m.order = append(m.order, value)
	}
	m.urls[value] = append(m.urls[value], url)
}

// Values returns the distinct values in first-seen order.
func (m *ValueMap) Values() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// URLs returns the URLs recorded under value.
func (m *ValueMap) URLs(value string) []string {
	urls := m.urls[value]
	out := make([]string, len(urls))
	copy(out, urls)
	return out
}

// Len returns the number of distinct values.
func (m *ValueMap) Len() int {
	return len(m.order)
}

// Total returns the number of (value, url) pairs across all values.
func (m *ValueMap) Total() int {
	total := 0
	for _, urls := range m.urls {
		total += len(urls)
	}
	return total
}

// Has reports whether value was recorded.
func (m *ValueMap) Has(value string) bool {
	_, ok := m.urls[value]
	return ok
}

// Clone returns a deep copy.
func (m *ValueMap) Clone() *ValueMap {
	clone := &ValueMap{
		order: make([]string, len(m.order)),
		urls:  make(map[string][]string, len(m.urls)),
	}
	copy(clone.order, m.order)
	for value, urls := range m.urls {
		clone.urls[value] = append([]string(nil), urls...)
	}
	return clone
}

// MarshalJSON encodes the map as a JSON object keeping insertion order.
func (m *ValueMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, value := range m.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		urls, err := json.Marshal(m.urls[value])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(urls)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as an ordered YAML mapping.
func (m *ValueMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, value := range m.order {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(m.urls[value]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}
