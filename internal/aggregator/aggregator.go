package aggregator

import (
	"slices"
	"strings"

	"github.com/aleister1102/paramindex/internal/models"
	"github.com/aleister1102/paramindex/internal/tagger"
)

// Aggregator turns URL records into a parameter-centric index.
type Aggregator struct {
	classifier *tagger.Classifier
}

// NewAggregator creates an aggregator tagging keys with classifier.
func NewAggregator(classifier *tagger.Classifier) *Aggregator {
	if classifier == nil {
		classifier = tagger.NewClassifier()
	}
	return &Aggregator{classifier: classifier}
}

// Aggregate builds the index for records. It never fails; no records yield
// an empty index.
func (a *Aggregator) Aggregate(records []models.URLRecord) *models.ParameterIndex {
	index := models.NewParameterIndex()

	for _, record := range records {
		for _, param := range record.Parameters {
			entry, ok := index.Params[param.Key]
			if !ok {
				entry = models.NewParameterEntry(param.Key, a.classifier.Classify(param.Key))
				index.Params[param.Key] = entry
				index.AllParamNames = append(index.AllParamNames, param.Key)
			}

			entry.Values.Append(param.Value, record.URL)
			entry.TotalOccurrences++
			if param.Value == "" {
				entry.HasEmptyValues = true
			}
		}
	}

	SortNames(index.AllParamNames, index.Params)
	index.TotalURLs = len(records)
	index.TotalParams = len(index.Params)
	return index
}

// SortNames orders names in place by ComparePriority.
func SortNames(names []string, params map[string]*models.ParameterEntry) {
	slices.SortFunc(names, func(x, y string) int {
		return ComparePriority(params[x], params[y])
	})
}

// ComparePriority implements the review ordering of the index:
//  1. more occurrences first
//  2. more auto tags first
//  3. entries carrying real values before empty-only ones
//  4. key name, ascending
//
// The final key comparison makes the order total, so results never depend
// on map iteration or input order.
func ComparePriority(x, y *models.ParameterEntry) int {
	if x.TotalOccurrences != y.TotalOccurrences {
		return y.TotalOccurrences - x.TotalOccurrences
	}
	if len(x.AutoTags) != len(y.AutoTags) {
		return len(y.AutoTags) - len(x.AutoTags)
	}
	if xv, yv := x.HasValues(), y.HasValues(); xv != yv {
		if xv {
			return -1
		}
		return 1
	}
	return strings.Compare(x.Key, y.Key)
}

// Stats computes the headline counters for index.
func (a *Aggregator) Stats(index *models.ParameterIndex) models.IndexStats {
	stats := models.IndexStats{
		TotalURLs:   index.TotalURLs,
		TotalParams: index.TotalParams,
		TagCounts:   make(map[string]int),
	}
	for _, entry := range index.Params {
		stats.TotalInstances += entry.TotalOccurrences
		if len(entry.AutoTags) > 0 {
			stats.TaggedParams++
		}
		for _, tag := range entry.AutoTags {
			stats.TagCounts[tag]++
		}
	}
	return stats
}
