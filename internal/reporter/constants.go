package reporter

// Format names accepted by NewReporter.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"

	// JSON indentation
	JSONIndent = "  "

	// Text table layout
	tableMinWidth = 0
	tableTabWidth = 8
	tablePadding  = 2
	tablePadChar  = ' '

	// maxTextURLsPerValue caps the URLs listed under one value in text output.
	maxTextURLsPerValue = 5
)
