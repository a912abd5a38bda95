package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/draftlab/smogonprice/internal/app"
)

// TestRunSmoke drives the whole pipeline through the same entry point main
// uses: a sheet with one priced row against a local server.
func TestRunSmoke(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><h2>Garchomp</h2><p>Price Range: 12 - 15 points</p></body></html>`))
	}))
	defer srv.Close()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	if err := os.WriteFile(in, []byte("name,smogon_draft_url\nGarchomp,"+srv.URL+"\n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	cfg := app.Config{
		InputPath:  in,
		OutputPath: out,
		URLColumn:  app.DefaultURLColumn,
	}
	if err := run(cfg); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "smogon_price_low_high") {
		t.Fatalf("output missing price columns:\n%s", got)
	}
	if !strings.Contains(got, "12-15") {
		t.Fatalf("output missing enriched label:\n%s", got)
	}
}
