package config

// Viper keys for all runtime settings. Environment variables use the same
// names prefixed with DOCMD_ and upper-cased with underscores, e.g.
// output-dir -> DOCMD_OUTPUT_DIR.
const (
	KeyOutputDir    = "output-dir"
	KeyMaxFileBytes = "max-file-bytes"
	KeyFetchTimeout = "fetch-timeout"
	KeyLogLevel     = "log-level"
)
