package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/rs/zerolog/log"

	"github.com/draftlab/smogonprice/internal/dataset"
	"github.com/draftlab/smogonprice/internal/enrich"
	"github.com/draftlab/smogonprice/internal/fetch"
)

// Output columns appended to the dataset. When an input already carries them
// from a previous run, every cell is rewritten rather than merged.
const (
	colPriceLowHigh = "smogon_price_low_high"
	colPriceLow     = "smogon_price_low"
	colPriceHigh    = "smogon_price_high"
)

// App wires the fetcher and row enricher around one Config.
type App struct {
	cfg      Config
	enricher *enrich.Enricher
}

func New(cfg Config) *App {
	maxBody := cfg.MaxBodyBytes
	if maxBody == 0 {
		maxBody = DefaultMaxBodyBytes
	}
	client := &fetch.Client{
		HTTPClient:        newHTTPClient(),
		UserAgent:         cfg.UserAgent,
		PerRequestTimeout: cfg.Timeout,
		MaxBodyBytes:      maxBody,
		RedirectMaxHops:   5,
	}
	return &App{
		cfg:      cfg,
		enricher: &enrich.Enricher{Fetcher: client, Delay: cfg.Delay},
	}
}

// Run executes one enrichment pass over the configured dataset.
func (a *App) Run(ctx context.Context) error {
	// 1) Load the dataset up front; the table is small enough to hold whole.
	tbl, err := dataset.Load(a.cfg.InputPath)
	if err != nil {
		return err
	}

	// 2) The URL column must exist before any row is touched. On a miss
	// nothing is fetched and no output file is created.
	urlIdx, err := tbl.RequireColumn(a.cfg.URLColumn)
	if err != nil {
		return err
	}

	// 3) Make room for the output columns. Existing ones are reused in place
	// so a re-run never duplicates headers.
	labelIdx := tbl.EnsureColumn(colPriceLowHigh)
	lowIdx := tbl.EnsureColumn(colPriceLow)
	highIdx := tbl.EnsureColumn(colPriceHigh)

	log.Info().
		Str("input", a.cfg.InputPath).
		Str("urlColumn", a.cfg.URLColumn).
		Int("rows", len(tbl.Rows)).
		Msg("starting enrichment")

	var spin *spinner.Spinner
	if a.cfg.Progress {
		spin = spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		spin.Start()
		defer spin.Stop()
	}

	// 4) Rows run strictly in input order with one request in flight, so the
	// pace stays rows x (latency + delay).
	var attempted, found, failed int
	for i, row := range tbl.Rows {
		if spin != nil {
			spin.Suffix = fmt.Sprintf(" scraping %d/%d", i+1, len(tbl.Rows))
		}
		rawURL := row[urlIdx]
		vals, res := a.enricher.Row(ctx, rawURL)
		row[labelIdx] = vals.Label
		row[lowIdx] = vals.Low
		row[highIdx] = vals.High

		if res.Attempted {
			attempted++
		}
		if res.Found {
			found++
		}
		if res.Err != nil {
			failed++
			// Row failures stay out of the default output; -v surfaces them.
			log.Debug().
				Err(res.Err).
				Int("row", i).
				Str("url", strings.TrimSpace(rawURL)).
				Msg("price lookup failed")
		}
	}
	if spin != nil {
		spin.Stop()
	}

	// 5) Write the full table, original columns first, appended ones last.
	if err := tbl.Save(a.cfg.OutputPath); err != nil {
		return err
	}

	log.Info().
		Int("rows", len(tbl.Rows)).
		Int("attempted", attempted).
		Int("found", found).
		Int("failed", failed).
		Str("output", a.cfg.OutputPath).
		Msg("enrichment complete")

	// 6) Completion line on stdout for scripts that scrape it.
	fmt.Printf("Wrote: %s\n", a.cfg.OutputPath)
	return nil
}
