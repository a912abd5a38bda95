package app

import "time"

// Built-in defaults for the flag, file and environment surfaces. Pacing and
// column names follow the conventions of the draft sheets this tool feeds.
const (
	DefaultURLColumn      = "smogon_draft_url"
	DefaultDelaySeconds   = 0.35
	DefaultTimeoutSeconds = 25
	DefaultMaxBodyBytes   = 10 << 20
)

// Config holds runtime configuration for one enrichment run. Values arrive
// from flags first, then an optional config file, then SMOGONPRICE_*
// environment variables, each layer filling only what the previous ones left
// at their defaults.
type Config struct {
	// Dataset
	InputPath  string
	OutputPath string
	URLColumn  string

	// Fetching
	Delay        time.Duration
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64

	// Behavior
	Progress bool
	Verbose  bool
}

// DelayDuration converts the fractional seconds used on the CLI and in config
// files into the Duration the pipeline works with.
func DelayDuration(secs float64) time.Duration {
	return time.Duration(secs * float64(time.Second))
}
