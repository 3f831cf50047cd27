// Package config holds runtime configuration sourced from flags, environment
// variables (DOCMD_ prefix), and an optional .env file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// DefaultMaxFileBytes is the default maximum accepted source file size (50 MiB).
const DefaultMaxFileBytes int64 = 50 << 20

// Init wires viper to the environment and, when a command is given, to its
// persistent flags. Flags win over environment variables, which win over the
// defaults set here.
func Init(root *cobra.Command) {
	viper.SetEnvPrefix("DOCMD")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = godotenv.Load()
	if root != nil {
		_ = viper.BindPFlags(root.PersistentFlags())
	}
	setDefaults()
}

func setDefaults() {
	viper.SetDefault(KeyOutputDir, filepath.Join(os.TempDir(), "docmd"))
	viper.SetDefault(KeyMaxFileBytes, DefaultMaxFileBytes)
	viper.SetDefault(KeyFetchTimeout, 30*time.Second)
	viper.SetDefault(KeyLogLevel, "info")
}

// OutputDir is the directory Markdown is written to when a request names no
// output directory and the source is not a local file.
func OutputDir() string { return viper.GetString(KeyOutputDir) }

// MaxFileBytes is the largest local source file accepted for conversion.
func MaxFileBytes() int64 { return viper.GetInt64(KeyMaxFileBytes) }

// FetchTimeout bounds the HTTP fetch of a URL source.
func FetchTimeout() time.Duration { return viper.GetDuration(KeyFetchTimeout) }

// LogLevel selects the zap log level ("debug", "info", "warn", "error").
func LogLevel() string { return viper.GetString(KeyLogLevel) }
