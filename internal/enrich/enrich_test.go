package enrich

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubFetcher struct {
	body string
	err  error
	urls []string
}

func (s *stubFetcher) Get(_ context.Context, rawURL string) (string, error) {
	s.urls = append(s.urls, rawURL)
	if s.err != nil {
		return "", s.err
	}
	return s.body, nil
}

func TestRow_BlankURLSkipsFetchAndDelay(t *testing.T) {
	f := &stubFetcher{}
	var slept []time.Duration
	e := &Enricher{
		Fetcher: f,
		Delay:   50 * time.Millisecond,
		sleep:   func(d time.Duration) { slept = append(slept, d) },
	}

	for _, raw := range []string{"", "   ", "\t\n"} {
		vals, res := e.Row(context.Background(), raw)
		if vals != Defaults() {
			t.Fatalf("expected defaults for %q, got %+v", raw, vals)
		}
		if res.Attempted || res.Found || res.Err != nil {
			t.Fatalf("expected zero result for %q, got %+v", raw, res)
		}
	}
	if len(f.urls) != 0 {
		t.Fatalf("expected no fetches, got %v", f.urls)
	}
	if len(slept) != 0 {
		t.Fatalf("expected no pacing for blank URLs, got %v", slept)
	}
}

func TestRow_TrimsURLBeforeFetch(t *testing.T) {
	f := &stubFetcher{body: "<p>Price Range: 8-9 points</p>"}
	e := &Enricher{Fetcher: f}
	_, _ = e.Row(context.Background(), "  https://example.test/kyurem \n")
	if len(f.urls) != 1 || f.urls[0] != "https://example.test/kyurem" {
		t.Fatalf("expected trimmed URL, got %v", f.urls)
	}
}

func TestRow_FoundRangeFillsCells(t *testing.T) {
	f := &stubFetcher{body: `<html><body><p>Price Range: 8-9 points</p></body></html>`}
	e := &Enricher{Fetcher: f}

	vals, res := e.Row(context.Background(), "https://example.test/kyurem")
	if !res.Attempted || !res.Found || res.Err != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	want := Values{Label: "8-9", Low: "8", High: "9"}
	if vals != want {
		t.Fatalf("expected %+v, got %+v", want, vals)
	}
}

func TestRow_SingleCostFillsBothBounds(t *testing.T) {
	f := &stubFetcher{body: `<p>Price Range: 5 points</p>`}
	e := &Enricher{Fetcher: f}

	vals, _ := e.Row(context.Background(), "https://example.test/mon")
	want := Values{Label: "5-5", Low: "5", High: "5"}
	if vals != want {
		t.Fatalf("expected %+v, got %+v", want, vals)
	}
}

func TestRow_FetchFailureDegradesToDefaults(t *testing.T) {
	boom := errors.New("unexpected status: 503")
	f := &stubFetcher{err: boom}
	slept := 0
	e := &Enricher{
		Fetcher: f,
		Delay:   10 * time.Millisecond,
		sleep:   func(time.Duration) { slept++ },
	}

	vals, res := e.Row(context.Background(), "https://example.test/down")
	if vals != Defaults() {
		t.Fatalf("expected defaults after failed fetch, got %+v", vals)
	}
	if !res.Attempted || res.Found || !errors.Is(res.Err, boom) {
		t.Fatalf("unexpected result: %+v", res)
	}
	if slept != 1 {
		t.Fatalf("expected pacing after a failed fetch, got %d sleeps", slept)
	}
}

func TestRow_PatternMissIsNotAnError(t *testing.T) {
	f := &stubFetcher{body: "<p>nothing for sale</p>"}
	slept := 0
	e := &Enricher{
		Fetcher: f,
		Delay:   10 * time.Millisecond,
		sleep:   func(time.Duration) { slept++ },
	}

	vals, res := e.Row(context.Background(), "https://example.test/free")
	if vals != Defaults() {
		t.Fatalf("expected defaults on a miss, got %+v", vals)
	}
	if !res.Attempted || res.Found || res.Err != nil {
		t.Fatalf("expected a clean miss, got %+v", res)
	}
	if slept != 1 {
		t.Fatalf("expected pacing after a miss, got %d sleeps", slept)
	}
}

func TestRow_NegativeDelayIsClamped(t *testing.T) {
	f := &stubFetcher{body: "<p>Price Range: 1-2 points</p>"}
	var slept []time.Duration
	e := &Enricher{
		Fetcher: f,
		Delay:   -3 * time.Second,
		sleep:   func(d time.Duration) { slept = append(slept, d) },
	}

	if _, res := e.Row(context.Background(), "https://example.test/mon"); !res.Found {
		t.Fatalf("expected a found range, got %+v", res)
	}
	if len(slept) != 0 {
		t.Fatalf("expected no sleep for a negative delay, got %v", slept)
	}
}
