package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the schema of the optional configuration file. Units mirror
// the flag surface: delay is fractional seconds, timeout whole seconds.
// Pointer fields distinguish "absent" from an explicit zero.
type FileConfig struct {
	Input      string   `yaml:"input" json:"input"`
	Output     string   `yaml:"output" json:"output"`
	URLColumn  string   `yaml:"urlColumn" json:"urlColumn"`
	Delay      *float64 `yaml:"delay" json:"delay"`
	Timeout    *int     `yaml:"timeout" json:"timeout"`
	UserAgent  string   `yaml:"userAgent" json:"userAgent"`
	NoProgress bool     `yaml:"noProgress" json:"noProgress"`
	Verbose    bool     `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads a YAML or JSON configuration file. The format follows
// the file extension; unknown extensions are tried as YAML first, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return fc, fmt.Errorf("parse json config: %w", err)
		}
	default:
		if yerr := yaml.Unmarshal(data, &fc); yerr != nil {
			if jerr := json.Unmarshal(data, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config %q: %v", path, yerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values onto cfg, touching only fields still at
// their built-in defaults. Flags are parsed before this runs, so anything set
// explicitly on the command line wins.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" && fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if cfg.OutputPath == "" && fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if cfg.URLColumn == DefaultURLColumn && fc.URLColumn != "" {
		cfg.URLColumn = fc.URLColumn
	}
	if cfg.Delay == DelayDuration(DefaultDelaySeconds) && fc.Delay != nil {
		cfg.Delay = DelayDuration(*fc.Delay)
	}
	if cfg.Timeout == DefaultTimeoutSeconds*time.Second && fc.Timeout != nil && *fc.Timeout > 0 {
		cfg.Timeout = time.Duration(*fc.Timeout) * time.Second
	}
	if cfg.UserAgent == "" && fc.UserAgent != "" {
		cfg.UserAgent = fc.UserAgent
	}
	if fc.NoProgress {
		cfg.Progress = false
	}
	if fc.Verbose {
		cfg.Verbose = true
	}
}

// ValidateConfig checks the settings the pipeline cannot run without.
func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.InputPath) == "" {
		return errors.New("config: input CSV path is required")
	}
	if strings.TrimSpace(cfg.OutputPath) == "" {
		return errors.New("config: output CSV path is required")
	}
	if strings.TrimSpace(cfg.URLColumn) == "" {
		return errors.New("config: url column name is required")
	}
	return nil
}
