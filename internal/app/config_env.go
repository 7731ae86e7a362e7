package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment variables.
// Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.InputDir == "" {
		cfg.InputDir = os.Getenv("INPUT_DIR")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = os.Getenv("OUTPUT_DIR")
	}
	if cfg.Workers == 0 {
		if v := strings.TrimSpace(os.Getenv("WORKERS")); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				cfg.Workers = n
			}
		}
	}
	if cfg.FileTimeout == 0 {
		if v := strings.TrimSpace(os.Getenv("FILE_TIMEOUT")); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				cfg.FileTimeout = d
			}
		}
	}
}
