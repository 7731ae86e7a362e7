package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyperifyio/pdfoutline/internal/outline"
)

// FileConfig represents the single-file configuration schema. It mirrors the
// flags; flags take precedence. Script ranges and stop phrases live here so
// new scripts and languages are data changes, not code changes.
type FileConfig struct {
	Input  string `yaml:"input" json:"input"`
	Output string `yaml:"output" json:"output"`

	Workers  int  `yaml:"workers" json:"workers"`
	Validate bool `yaml:"validate" json:"validate"`
	Verbose  bool `yaml:"verbose" json:"verbose"`

	// Timeout.File is a Go duration string in YAML ("30s", "2m"); the
	// JSON form takes nanoseconds.
	Timeout struct {
		File time.Duration `yaml:"file" json:"file"`
	} `yaml:"timeout" json:"timeout"`

	Scripts     []outline.ScriptRange `yaml:"scripts" json:"scripts"`
	StopPhrases []string              `yaml:"stopPhrases" json:"stopPhrases"`
}

// LoadConfigFile reads a YAML or JSON config file; the format is chosen by
// extension, defaulting to YAML.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse config file: %w", err)
		}
		return fc, nil
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config file: %w", err)
	}
	return fc, nil
}

// ApplyFileConfig overlays values from fc into unset fields of cfg. Flags
// should already have been parsed into cfg; explicit flag values win over the
// file, which in turn wins over environment and built-in defaults.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputDir == "" && fc.Input != "" {
		cfg.InputDir = fc.Input
	}
	if cfg.OutputDir == "" && fc.Output != "" {
		cfg.OutputDir = fc.Output
	}
	if cfg.Workers == 0 && fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if cfg.FileTimeout == 0 && fc.Timeout.File > 0 {
		cfg.FileTimeout = fc.Timeout.File
	}
	if !cfg.Validate && fc.Validate {
		cfg.Validate = true
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
	if len(cfg.ExtraScripts) == 0 && len(fc.Scripts) > 0 {
		cfg.ExtraScripts = append([]outline.ScriptRange{}, fc.Scripts...)
	}
	if len(cfg.ExtraStopPhrases) == 0 && len(fc.StopPhrases) > 0 {
		cfg.ExtraStopPhrases = append([]string{}, fc.StopPhrases...)
	}
}
