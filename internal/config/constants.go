package config

const (
	// Parser Defaults
	DefaultParserSectionHeading    = "Dynamic URLs"
	DefaultParserMaxDocumentSizeMB = 100
	DefaultParserTimeoutSecs       = 60

	// Relations Defaults
	DefaultRelationsLimit = 10

	// Output Defaults
	DefaultOutputFormat = "json"

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Config file lookup
	ConfigPathEnvVar = "PARAMINDEX_CONFIG_PATH"

	// MaxConfigFileSizeBytes caps how much of a config file is read.
	MaxConfigFileSizeBytes = 10 * 1024 * 1024
)

// DefaultParserURLPrefixes lists the text prefixes that open a URL record.
var DefaultParserURLPrefixes = []string{"http"}
