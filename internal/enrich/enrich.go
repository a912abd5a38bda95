package enrich

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/draftlab/smogonprice/internal/extract"
)

// MissingLabel marks a row whose price range could not be determined.
const MissingLabel = "N/A"

// Fetcher grabs one page body. *fetch.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, rawURL string) (string, error)
}

// Values are the three output cells written back for one row: the combined
// label ("low-high" or MissingLabel) and the decimal bounds ("" when absent).
type Values struct {
	Label string
	Low   string
	High  string
}

// Defaults returns the cell values for a row without a usable price range.
// Every row gets its own fresh copy; there is no shared default state.
func Defaults() Values {
	return Values{Label: MissingLabel}
}

// Result reports how one row's lookup went: nothing attempted (blank URL),
// fetch failed (Err != nil), page carried no price phrase (Attempted with
// nil Err and Found false), or a range was found.
type Result struct {
	Attempted bool
	Found     bool
	Range     extract.Range
	Err       error
}

// Enricher resolves the output cells for one row at a time, pacing requests
// with a fixed delay.
type Enricher struct {
	Fetcher Fetcher
	// Delay is slept after every attempted row, whatever the outcome, so
	// request pacing stays independent of success. Negative counts as zero.
	Delay time.Duration

	// sleep is swapped in tests to observe pacing without waiting.
	sleep func(time.Duration)
}

// Row decides the three output cells for the given URL cell. Blank URLs
// return defaults immediately: no request, no delay. Fetch failures and
// pattern misses degrade to defaults; the Result carries the reason.
func (e *Enricher) Row(ctx context.Context, rawURL string) (Values, Result) {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return Defaults(), Result{}
	}

	res := Result{Attempted: true}
	body, err := e.Fetcher.Get(ctx, url)
	if err != nil {
		res.Err = err
	} else if r, ok := extract.PriceRange(body); ok {
		res.Range = r
		res.Found = true
	}
	e.pause()

	if !res.Found {
		return Defaults(), res
	}
	return Values{
		Label: fmt.Sprintf("%d-%d", res.Range.Low, res.Range.High),
		Low:   strconv.Itoa(res.Range.Low),
		High:  strconv.Itoa(res.Range.High),
	}, res
}

func (e *Enricher) pause() {
	d := e.Delay
	if d <= 0 {
		return
	}
	if e.sleep != nil {
		e.sleep(d)
		return
	}
	time.Sleep(d)
}
