package reporter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/aleister1102/paramindex/internal/common/errorwrapper"
	"github.com/aleister1102/paramindex/internal/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, tableMinWidth, tableTabWidth, tablePadding, tablePadChar, 0)
}

func flush(tw *tabwriter.Writer) error {
	if err := tw.Flush(); err != nil {
		return errorwrapper.WrapError(err, "failed to write text output")
	}
	return nil
}

func joinTags(tags []string) string {
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

func writeIndexText(w io.Writer, index *models.ParameterIndex) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "URLs: %d\tParameters: %d\n\n", index.TotalURLs, index.TotalParams)
	fmt.Fprintln(tw, "PARAMETER\tOCCURRENCES\tVALUES\tTAGS\tMANUAL")

	for _, name := range index.AllParamNames {
		entry := index.Params[name]
		if entry == nil {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\n",
			entry.Key, entry.TotalOccurrences, entry.Values.Len(), joinTags(entry.AutoTags), joinTags(entry.ManualTags))
	}
	return flush(tw)
}

func writeEntryText(w io.Writer, entry *models.ParameterEntry) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Parameter:\t%s\n", entry.Key)
	fmt.Fprintf(tw, "Occurrences:\t%d\n", entry.TotalOccurrences)
	fmt.Fprintf(tw, "Tags:\t%s\n", joinTags(entry.AutoTags))
	fmt.Fprintf(tw, "Manual tags:\t%s\n", joinTags(entry.ManualTags))
	fmt.Fprintf(tw, "Empty values:\t%t\n\n", entry.HasEmptyValues)
	fmt.Fprintln(tw, "VALUE\tCOUNT\tURLS")

	for _, value := range entry.Values.Values() {
		urls := entry.Values.URLs(value)
		shown := urls
		if len(shown) > maxTextURLsPerValue {
			shown = shown[:maxTextURLsPerValue]
		}
		line := strings.Join(shown, " ")
		if hidden := len(urls) - len(shown); hidden > 0 {
			line = fmt.Sprintf("%s (+%d more)", line, hidden)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", value, len(urls), line)
	}
	return flush(tw)
}

func writeRelationshipsText(w io.Writer, param string, rels []models.Relationship) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "Seen with %s:\n", param)
	if len(rels) == 0 {
		fmt.Fprintln(tw, "(none)")
		return flush(tw)
	}

	fmt.Fprintln(tw, "PARAMETER\tCOUNT\tTAGS")
	for _, rel := range rels {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", rel.Param, rel.Count, joinTags(rel.AutoTags))
	}
	return flush(tw)
}

// writeStatsText prints tag counts in classifier label order.
func writeStatsText(w io.Writer, stats models.IndexStats, labels []string) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "URLs:\t%d\n", stats.TotalURLs)
	fmt.Fprintf(tw, "Parameters:\t%d\n", stats.TotalParams)
	fmt.Fprintf(tw, "Instances:\t%d\n", stats.TotalInstances)
	fmt.Fprintf(tw, "Tagged parameters:\t%d\n", stats.TaggedParams)

	if len(stats.TagCounts) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "TAG\tPARAMETERS")
		for _, label := range labels {
			if n := stats.TagCounts[label]; n > 0 {
				fmt.Fprintf(tw, "%s\t%d\n", label, n)
			}
		}
	}
	return flush(tw)
}

func writeNamesText(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return errorwrapper.WrapError(err, "failed to write text output")
		}
	}
	return nil
}
