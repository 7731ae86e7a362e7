package app

import (
	"errors"
	"strings"
	"time"

	"github.com/hyperifyio/pdfoutline/internal/outline"
)

// Config holds runtime configuration for one batch run.
type Config struct {
	InputDir  string
	OutputDir string

	// Behavior
	Workers     int
	FileTimeout time.Duration
	Validate    bool
	Verbose     bool

	// Classifier data: appended to the built-in script ranges and
	// stop phrases.
	ExtraScripts     []outline.ScriptRange
	ExtraStopPhrases []string
}

// ApplyDefaults fills the built-in defaults into fields left unset after the
// flag, file and environment layers have been applied.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "input"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "output"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 1
	}
}

// ValidateConfig performs minimal schema validation for required settings.
func ValidateConfig(cfg Config) error {
	if trim(cfg.InputDir) == "" {
		return errors.New("config: input dir is required")
	}
	if trim(cfg.OutputDir) == "" {
		return errors.New("config: output dir is required")
	}
	if cfg.Workers < 0 {
		return errors.New("config: workers must not be negative")
	}
	if cfg.FileTimeout < 0 {
		return errors.New("config: file timeout must not be negative")
	}
	return nil
}

func trim(s string) string { return strings.TrimSpace(s) }
