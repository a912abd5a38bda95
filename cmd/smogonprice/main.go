package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/draftlab/smogonprice/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		input      string
		output     string
		urlCol     string
		delaySecs  float64
		timeoutSec int
		userAgent  string
		configPath string
		envFile    string
		noProgress bool
		verbose    bool
	)

	flag.StringVar(&input, "input", "", "input CSV path (required)")
	flag.StringVar(&output, "output", "", "output CSV path (required)")
	flag.StringVar(&urlCol, "url-col", app.DefaultURLColumn, "name of the column holding draft page URLs")
	flag.Float64Var(&delaySecs, "delay", app.DefaultDelaySeconds, "seconds to sleep after each attempted row")
	flag.IntVar(&timeoutSec, "timeout", app.DefaultTimeoutSeconds, "per-request timeout in seconds")
	flag.StringVar(&userAgent, "user-agent", "", "override the browser User-Agent header")
	flag.StringVar(&configPath, "config", os.Getenv("SMOGONPRICE_CONFIG"), "optional YAML or JSON config file")
	flag.StringVar(&envFile, "env-file", "", "optional dotenv file loaded before SMOGONPRICE_* variables are read")
	flag.BoolVar(&noProgress, "no-progress", false, "disable the progress spinner")
	flag.BoolVar(&verbose, "v", false, "verbose logging, including per-row failures")
	flag.Parse()

	cfg := app.Config{
		InputPath:  input,
		OutputPath: output,
		URLColumn:  urlCol,
		Delay:      app.DelayDuration(delaySecs),
		Timeout:    time.Duration(timeoutSec) * time.Second,
		UserAgent:  userAgent,
		Progress:   !noProgress,
		Verbose:    verbose,
	}

	// Layer the remaining configuration sources under the flags: dotenv file
	// first so the env overlay can see it, then the config file, then plain
	// environment variables.
	if envFile != "" {
		if err := app.LoadEnvFile(envFile); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if configPath == "" {
			configPath = os.Getenv("SMOGONPRICE_CONFIG")
		}
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}
	app.ApplyEnvToConfig(&cfg)

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("enrichment failed")
		os.Exit(1)
	}
}

// run is separated from main so tests can drive the whole pipeline without
// spawning a process.
func run(cfg app.Config) error {
	return app.New(cfg).Run(context.Background())
}
