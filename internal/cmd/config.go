package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// loadConfig builds the settings source chain: CELLWALK_* environment
// variables over an optional YAML config file. The file is optional; a
// missing one is not an error.
func loadConfig() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("CELLWALK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "cellwalk"))
	}
	v.AddConfigPath("/etc/cellwalk")
	_ = v.ReadInConfig()
	return v
}

// newLogger builds the stderr logger. Warnings always surface; -d raises
// the level to debug. Each invocation is tagged with a short run identifier
// so interleaved output from scripted runs can be told apart.
func newLogger(debugLevel int) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "cellwalk",
		Level:  log.WarnLevel,
	})
	if debugLevel > 0 {
		logger.SetLevel(log.DebugLevel)
	}
	return logger.With("run", uuid.NewString()[:8])
}
