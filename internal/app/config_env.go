package app

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ApplyEnvToConfig fills fields still at their built-in defaults from
// SMOGONPRICE_* environment variables. It runs after flags and the config
// file, so both take precedence.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.InputPath == "" {
		cfg.InputPath = strings.TrimSpace(os.Getenv("SMOGONPRICE_INPUT"))
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = strings.TrimSpace(os.Getenv("SMOGONPRICE_OUTPUT"))
	}
	if cfg.URLColumn == DefaultURLColumn {
		if v := strings.TrimSpace(os.Getenv("SMOGONPRICE_URL_COL")); v != "" {
			cfg.URLColumn = v
		}
	}
	if cfg.Delay == DelayDuration(DefaultDelaySeconds) {
		if v := strings.TrimSpace(os.Getenv("SMOGONPRICE_DELAY")); v != "" {
			if secs, err := strconv.ParseFloat(v, 64); err == nil {
				cfg.Delay = DelayDuration(secs)
			}
		}
	}
	if cfg.Timeout == DefaultTimeoutSeconds*time.Second {
		if v := strings.TrimSpace(os.Getenv("SMOGONPRICE_TIMEOUT")); v != "" {
			if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
				cfg.Timeout = time.Duration(secs) * time.Second
			}
		}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = strings.TrimSpace(os.Getenv("SMOGONPRICE_USER_AGENT"))
	}
	if isTruthy(os.Getenv("SMOGONPRICE_VERBOSE")) {
		cfg.Verbose = true
	}
	if isTruthy(os.Getenv("SMOGONPRICE_NO_PROGRESS")) {
		cfg.Progress = false
	}
}

func isTruthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
