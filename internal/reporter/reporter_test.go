package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/aleister1102/paramindex/internal/config"
	"github.com/aleister1102/paramindex/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestReporter(t *testing.T, format string) *Reporter {
	t.Helper()
	r, err := NewReporter(config.OutputConfig{Format: format}, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func sampleIndex() *models.ParameterIndex {
	index := models.NewParameterIndex()

	id := models.NewParameterEntry("id", []string{"IDOR", "SQLi"})
	id.Values.Append("2", "http://x/b?id=2")
	id.Values.Append("1", "http://x/a?id=1&search=foo")
	id.TotalOccurrences = 2

	search := models.NewParameterEntry("search", []string{"XSS"})
	search.Values.Append("foo", "http://x/a?id=1&search=foo")
	search.TotalOccurrences = 1
	search.ManualTags = []string{"Tested"}

	index.Params["id"] = id
	index.Params["search"] = search
	index.AllParamNames = []string{"id", "search"}
	index.TotalURLs = 2
	index.TotalParams = 2
	return index
}

func TestNewReporter(t *testing.T) {
	tests := []struct {
		format  string
		want    string
		wantErr bool
	}{
		{format: "", want: FormatJSON},
		{format: "json", want: FormatJSON},
		{format: " YAML ", want: FormatYAML},
		{format: "text", want: FormatText},
		{format: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			r, err := NewReporter(config.OutputConfig{Format: tt.format}, zerolog.Nop())
			if tt.wantErr {
				assert.ErrorIs(t, err, errorwrapper.ErrInvalidConfiguration)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Format())
		})
	}
}

func TestWriteIndex_JSONKeepsValueOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestReporter(t, "json").WriteIndex(&buf, sampleIndex()))

	out := buf.String()
	assert.Less(t, strings.Index(out, `"2"`), strings.Index(out, `"1"`))

	var decoded struct {
		AllParamNames []string `json:"all_param_names"`
		TotalURLs     int      `json:"total_urls"`
		Params        map[string]struct {
			TotalOccurrences int                 `json:"total_occurrences"`
			Values           map[string][]string `json:"values"`
			ManualTags       []string            `json:"manual_tags"`
		} `json:"params"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"id", "search"}, decoded.AllParamNames)
	assert.Equal(t, 2, decoded.TotalURLs)
	assert.Equal(t, 2, decoded.Params["id"].TotalOccurrences)
	assert.Equal(t, []string{"http://x/b?id=2"}, decoded.Params["id"].Values["2"])
	assert.Equal(t, []string{"Tested"}, decoded.Params["search"].ManualTags)
	assert.Nil(t, decoded.Params["id"].ManualTags)
}

func TestWriteIndex_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestReporter(t, "yaml").WriteIndex(&buf, sampleIndex()))

	var decoded struct {
		AllParamNames []string `yaml:"all_param_names"`
		Params        map[string]struct {
			AutoTags []string            `yaml:"auto_tags"`
			Values   map[string][]string `yaml:"values"`
		} `yaml:"params"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []string{"id", "search"}, decoded.AllParamNames)
	assert.Equal(t, []string{"IDOR", "SQLi"}, decoded.Params["id"].AutoTags)
	assert.Equal(t, []string{"http://x/a?id=1&search=foo"}, decoded.Params["search"].Values["foo"])
}

func TestWriteIndex_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestReporter(t, "text").WriteIndex(&buf, sampleIndex()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "URLs: 2")
	assert.True(t, strings.HasPrefix(lines[2], "PARAMETER"))
	assert.Equal(t, []string{"id", "2", "2", "IDOR,", "SQLi", "-"}, strings.Fields(lines[3]))
	assert.Equal(t, []string{"search", "1", "1", "XSS", "Tested"}, strings.Fields(lines[4]))
}

func TestWriteIndex_NilIndex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestReporter(t, "json").WriteIndex(&buf, nil))
	assert.Contains(t, buf.String(), `"total_urls": 0`)
}

func TestWriteEntry(t *testing.T) {
	entry := models.NewParameterEntry("debug", []string{"Debug"})
	entry.Values.Append("", "http://x/a?debug")
	entry.TotalOccurrences = 1
	entry.HasEmptyValues = true

	var buf bytes.Buffer
	require.NoError(t, newTestReporter(t, "json").WriteEntry(&buf, entry))
	assert.Contains(t, buf.String(), `"(empty)": [`)
	assert.Contains(t, buf.String(), `"has_empty_values": true`)

	buf.Reset()
	require.NoError(t, newTestReporter(t, "text").WriteEntry(&buf, entry))
	assert.Contains(t, buf.String(), "Empty values:")
	assert.Contains(t, buf.String(), "(empty)")

	assert.Error(t, newTestReporter(t, "json").WriteEntry(&buf, nil))
}

func TestWriteEntry_TextTruncatesURLs(t *testing.T) {
	entry := models.NewParameterEntry("page", []string{})
	for i := 0; i < maxTextURLsPerValue+3; i++ {
		entry.Values.Append("1", "http://x/p")
		entry.TotalOccurrences++
	}

	var buf bytes.Buffer
	require.NoError(t, newTestReporter(t, "text").WriteEntry(&buf, entry))
	assert.Contains(t, buf.String(), "(+3 more)")
}

func TestWriteRelationships(t *testing.T) {
	rels := []models.Relationship{{Param: "token", Count: 2, AutoTags: []string{"Auth"}}}

	var buf bytes.Buffer
	require.NoError(t, newTestReporter(t, "json").WriteRelationships(&buf, "id", rels))

	var decoded relationshipReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "id", decoded.Param)
	assert.Equal(t, rels, decoded.Relationships)

	buf.Reset()
	require.NoError(t, newTestReporter(t, "json").WriteRelationships(&buf, "nope", nil))
	assert.Contains(t, buf.String(), `"relationships": []`)

	buf.Reset()
	require.NoError(t, newTestReporter(t, "text").WriteRelationships(&buf, "nope", nil))
	assert.Contains(t, buf.String(), "(none)")
}

func TestWriteStats_TextFollowsLabelOrder(t *testing.T) {
	stats := models.IndexStats{
		TotalURLs:      4,
		TotalParams:    7,
		TotalInstances: 10,
		TaggedParams:   6,
		TagCounts:      map[string]int{"SQLi": 2, "Auth": 1, "IDOR": 1},
	}

	var buf bytes.Buffer
	require.NoError(t, newTestReporter(t, "text").WriteStats(&buf, stats, []string{"IDOR", "XSS", "SQLi", "Auth"}))

	out := buf.String()
	assert.NotContains(t, out, "XSS")
	assert.Less(t, strings.Index(out, "IDOR"), strings.Index(out, "SQLi"))
	assert.Less(t, strings.Index(out, "SQLi"), strings.Index(out, "Auth"))

	buf.Reset()
	require.NoError(t, newTestReporter(t, "yaml").WriteStats(&buf, stats, nil))
	assert.Contains(t, buf.String(), "total_instances: 10")
}

func TestWriteNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestReporter(t, "text").WriteNames(&buf, "search:e", []string{"token", "userid"}))
	assert.Equal(t, "token\nuserid\n", buf.String())

	buf.Reset()
	require.NoError(t, newTestReporter(t, "json").WriteNames(&buf, "tag:Auth", nil))

	var decoded namesReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "tag:Auth", decoded.Query)
	assert.Empty(t, decoded.Names)
}
