package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var benchPage = []byte("<html><head><title>bench</title></head><body><p>Price Range: 8-9 points</p></body></html>")

// Benchmark a full GET round trip against a local server, including charset
// decoding of the body.
func BenchmarkGet(b *testing.B) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(benchPage)
	}))
	defer srv.Close()

	c := &Client{PerRequestTimeout: 5 * time.Second}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Get(ctx, srv.URL); err != nil {
			b.Fatalf("get: %v", err)
		}
	}
}
