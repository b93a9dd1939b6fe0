package main

import (
	"flag"
	"io"
)

type AppFlags struct {
	DocumentFile     string
	GlobalConfigFile string
	Param            string
	Relations        string
	Search           string
	Tag              string
	Stats            bool
	Format           string
}

// ParseFlags parses args into AppFlags. Short aliases only apply when the
// long form is unset.
func ParseFlags(args []string, output io.Writer) (AppFlags, error) {
	fs := flag.NewFlagSet("paramindex", flag.ContinueOnError)
	fs.SetOutput(output)

	documentFile := fs.String("file", "", "Path to the HTML site-map export to analyse. Use '-' to read from stdin.")
	documentFileAlias := fs.String("f", "", "Alias for -file")

	globalConfigFile := fs.String("config", "", "Path to the global YAML/JSON configuration file. If not set, searches default locations.")
	globalConfigFileAlias := fs.String("c", "", "Alias for -config")

	param := fs.String("param", "", "Show the values, URLs and tags of one parameter")
	paramAlias := fs.String("p", "", "Alias for -param")

	relations := fs.String("relations", "", "Show the parameters most often seen together with this one")
	relationsAlias := fs.String("r", "", "Alias for -relations")

	search := fs.String("search", "", "List parameter names containing this text (case-insensitive)")
	searchAlias := fs.String("s", "", "Alias for -search")

	tag := fs.String("tag", "", "List parameter names carrying this tag")
	tagAlias := fs.String("t", "", "Alias for -tag")

	stats := fs.Bool("stats", false, "Show dataset statistics")
	format := fs.String("format", "", "Output format: json, yaml or text (overrides config file if set)")

	if err := fs.Parse(args); err != nil {
		return AppFlags{}, err
	}

	flags := AppFlags{
		DocumentFile:     firstNonEmpty(*documentFile, *documentFileAlias),
		GlobalConfigFile: firstNonEmpty(*globalConfigFile, *globalConfigFileAlias),
		Param:            firstNonEmpty(*param, *paramAlias),
		Relations:        firstNonEmpty(*relations, *relationsAlias),
		Search:           firstNonEmpty(*search, *searchAlias),
		Tag:              firstNonEmpty(*tag, *tagAlias),
		Stats:            *stats,
		Format:           *format,
	}

	if flags.DocumentFile == "" {
		return AppFlags{}, errMissingFile
	}

	return flags, nil
}

// HasQuery reports whether any query flag was set. Without one the whole
// index is printed.
func (f AppFlags) HasQuery() bool {
	return f.Param != "" || f.Relations != "" || f.Search != "" || f.Tag != "" || f.Stats
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
