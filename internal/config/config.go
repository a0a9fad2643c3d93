// Package config handles application configuration and setup
package config

import (
	"os"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// LogLevelEnv is the environment variable that overrides the log level.
const LogLevelEnv = "GBINSPECT_LOG_LEVEL"

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	switch strings.ToLower(os.Getenv(LogLevelEnv)) {
	case "debug":
		debug = true
	case "error":
		debug, quiet = false, true
	case "info":
		debug, quiet = false, false
	}

	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
