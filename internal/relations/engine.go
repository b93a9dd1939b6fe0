package relations

import (
	"slices"
	"strings"

	"github.com/aleister1102/paramindex/internal/models"
	"github.com/aleister1102/paramindex/internal/tagger"
)

// DefaultLimit caps the number of partners returned per query.
const DefaultLimit = 10

// Engine computes which parameters travel together on the same request.
type Engine struct {
	classifier *tagger.Classifier
	limit      int
}

// NewEngine creates an engine. A non-positive limit, or one above
// DefaultLimit, means DefaultLimit.
func NewEngine(classifier *tagger.Classifier, limit int) *Engine {
	if classifier == nil {
		classifier = tagger.NewClassifier()
	}
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}
	return &Engine{classifier: classifier, limit: limit}
}

// CoOccurrence counts, for every record carrying target, each other distinct
// key on that record once. Results are ordered by count descending then
// partner name ascending, and cut to the engine limit. target itself never
// appears; an unknown target yields an empty slice.
func (e *Engine) CoOccurrence(records []models.URLRecord, target string) []models.Relationship {
	counts := make(map[string]int)
	for _, record := range records {
		if !record.HasKey(target) {
			continue
		}
		for _, key := range record.KeySet() {
			if key != target {
				counts[key]++
			}
		}
	}

	partners := make([]string, 0, len(counts))
	for key := range counts {
		partners = append(partners, key)
	}
	slices.SortFunc(partners, func(x, y string) int {
		if counts[x] != counts[y] {
			return counts[y] - counts[x]
		}
		return strings.Compare(x, y)
	})
	if len(partners) > e.limit {
		partners = partners[:e.limit]
	}

	result := make([]models.Relationship, 0, len(partners))
	for _, key := range partners {
		result = append(result, models.Relationship{
			Param:    key,
			Count:    counts[key],
			AutoTags: e.classifier.Classify(key),
		})
	}
	return result
}
