package aggregator

import (
	"testing"

	"github.com/aleister1102/paramindex/internal/models"
	"github.com/aleister1102/paramindex/internal/tagger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(url string, pairs ...string) models.URLRecord {
	r := models.URLRecord{URL: url}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Parameters = append(r.Parameters, models.Parameter{Key: pairs[i], Value: pairs[i+1]})
	}
	return r
}

func TestAggregate_Example(t *testing.T) {
	records := []models.URLRecord{
		record("http://x/a?id=1&search=foo", "id", "1", "search", "foo"),
		record("http://x/b?id=2", "id", "2"),
	}

	index := NewAggregator(tagger.NewClassifier()).Aggregate(records)

	assert.Equal(t, 2, index.TotalURLs)
	assert.Equal(t, 2, index.TotalParams)
	require.Contains(t, index.Params, "id")
	assert.Equal(t, 2, index.Params["id"].TotalOccurrences)
	assert.Contains(t, index.Params["id"].AutoTags, tagger.TagIDOR)
	assert.Contains(t, index.Params["search"].AutoTags, tagger.TagXSS)
	assert.Equal(t, []string{"1", "2"}, index.Params["id"].Values.Values())
	assert.Equal(t, []string{"http://x/b?id=2"}, index.Params["id"].Values.URLs("2"))
	assert.Equal(t, []string{"id", "search"}, index.AllParamNames)
}

func TestAggregate_EmptyValueSentinel(t *testing.T) {
	index := NewAggregator(nil).Aggregate([]models.URLRecord{
		record("http://x/a", "debug", ""),
	})

	entry := index.Params["debug"]
	require.NotNil(t, entry)
	assert.Equal(t, []string{models.EmptyValue}, entry.Values.Values())
	assert.True(t, entry.HasEmptyValues)
	assert.Equal(t, 1, entry.TotalOccurrences)
}

func TestAggregate_DuplicateInstancesCount(t *testing.T) {
	index := NewAggregator(nil).Aggregate([]models.URLRecord{
		record("http://x/a", "tag", "a", "tag", "a", "tag", "b"),
	})

	entry := index.Params["tag"]
	assert.Equal(t, 3, entry.TotalOccurrences)
	assert.Equal(t, []string{"http://x/a", "http://x/a"}, entry.Values.URLs("a"))
	assert.Equal(t, 2, entry.Values.Len())
}

func TestAggregate_EmptyInput(t *testing.T) {
	index := NewAggregator(nil).Aggregate(nil)

	assert.Empty(t, index.Params)
	assert.Empty(t, index.AllParamNames)
	assert.NotNil(t, index.AllParamNames)
	assert.Zero(t, index.TotalURLs)
	assert.Zero(t, index.TotalParams)
}

func TestAggregate_PriorityOrder(t *testing.T) {
	records := []models.URLRecord{
		// zz and page: 2 occurrences, 0 tags. zz is empty-only.
		record("http://x/1", "zz", "", "page", "1", "id", "1", "userid", "5", "aa", "1"),
		record("http://x/2", "zz", "", "page", "2", "id", "2"),
		// id and userid both carry IDOR+SQLi; id has more occurrences.
		record("http://x/3", "id", "3", "bb", "", "cc", "1"),
	}

	index := NewAggregator(tagger.NewClassifier()).Aggregate(records)

	assert.Equal(t, []string{
		"id",     // 3 occurrences
		"page",   // 2 occurrences, 0 tags, has values
		"zz",     // 2 occurrences, 0 tags, empty only
		"userid", // 1 occurrence, 2 tags
		"aa",     // 1 occurrence, 0 tags, has values
		"cc",     // 1 occurrence, 0 tags, has values
		"bb",     // 1 occurrence, 0 tags, empty only
	}, index.AllParamNames)
}

func TestAggregate_EmptyOnlyRanksBelowMixed(t *testing.T) {
	records := []models.URLRecord{
		record("http://x/1", "aa", "", "bb", ""),
		record("http://x/2", "aa", "", "bb", "1"),
	}

	index := NewAggregator(nil).Aggregate(records)
	// bb has an empty value but more than one distinct value, so it counts as having values.
	assert.Equal(t, []string{"bb", "aa"}, index.AllParamNames)
}

func TestAggregate_Invariants(t *testing.T) {
	records := []models.URLRecord{
		record("http://x/1", "a", "1", "b", "", "a", "2"),
		record("http://x/2", "c", "x", "b", "y"),
		record("http://x/3", "token", "t", "a", "1"),
	}

	index := NewAggregator(nil).Aggregate(records)

	instances := 0
	for _, r := range records {
		instances += len(r.Parameters)
	}

	total := 0
	for key, entry := range index.Params {
		assert.Equal(t, entry.Values.Total(), entry.TotalOccurrences, key)
		total += entry.TotalOccurrences
	}
	assert.Equal(t, instances, total)

	assert.ElementsMatch(t, keys(index.Params), index.AllParamNames)
	assert.Len(t, index.AllParamNames, len(index.Params))
}

func TestAggregate_DeterministicAcrossInputOrder(t *testing.T) {
	forward := []models.URLRecord{
		record("http://x/1", "b", "1", "a", "1"),
		record("http://x/2", "d", "1", "c", "1"),
	}
	reversed := []models.URLRecord{forward[1], forward[0]}

	agg := NewAggregator(nil)
	first := agg.Aggregate(forward).AllParamNames
	assert.Equal(t, first, agg.Aggregate(forward).AllParamNames)
	assert.Equal(t, first, agg.Aggregate(reversed).AllParamNames)
	assert.Equal(t, []string{"a", "b", "c", "d"}, first)
}

func TestStats(t *testing.T) {
	agg := NewAggregator(nil)
	index := agg.Aggregate([]models.URLRecord{
		record("http://x/a", "id", "1", "search", "foo", "zz", ""),
		record("http://x/b", "id", "2"),
	})

	stats := agg.Stats(index)
	assert.Equal(t, 2, stats.TotalURLs)
	assert.Equal(t, 3, stats.TotalParams)
	assert.Equal(t, 4, stats.TotalInstances)
	assert.Equal(t, 2, stats.TaggedParams)
	assert.Equal(t, 1, stats.TagCounts[tagger.TagIDOR])
	assert.Equal(t, 1, stats.TagCounts[tagger.TagXSS])
}

func keys(m map[string]*models.ParameterEntry) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
