package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

// DefaultUserAgent is a conventional desktop browser signature; draft pages
// are likelier to answer it than a bare library client.
const DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client wraps http.Client for polite single-shot page fetching: one attempt
// per URL, a browser User-Agent, a hard per-request timeout, and a bounded
// redirect chain.
type Client struct {
	HTTPClient *http.Client
	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string
	// PerRequestTimeout bounds each request. Zero leaves only the caller's
	// context in charge.
	PerRequestTimeout time.Duration
	// MaxBodyBytes caps how much of a response body is read. Zero means no cap.
	MaxBodyBytes int64
	// RedirectMaxHops caps redirect following to avoid loops. Zero means default (5).
	RedirectMaxHops int
}

// ErrUnsupportedScheme is returned for URLs that are not http or https.
var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// StatusError reports a response with a non-2xx status code.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.Code)
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating the caller's client.
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{Timeout: c.PerRequestTimeout, CheckRedirect: c.checkRedirectFunc()}
}

// Get issues a single GET with context, User-Agent, and the per-request
// timeout, and returns the body decoded to UTF-8. There are no retries: a
// transport error, a timeout, or a non-2xx status fails the fetch.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	// Reject non-HTTP(S) schemes early.
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, rawURL)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	if c.PerRequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(req.Context(), c.PerRequestTimeout)
		defer cancel()
		req = req.WithContext(ctx)
	}

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{Code: resp.StatusCode}
	}

	var r io.Reader = resp.Body
	if c.MaxBodyBytes > 0 {
		r = io.LimitReader(resp.Body, c.MaxBodyBytes)
	}
	body, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return decodeBody(body, resp.Header.Get("Content-Type")), nil
}

// decodeBody converts a response body to UTF-8, sniffing the charset from the
// Content-Type header and the body prefix. If decoding fails the raw bytes
// are returned; pages are usually UTF-8 already.
func decodeBody(body []byte, contentType string) string {
	enc, _, _ := charset.DetermineEncoding(body, contentType)
	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(body), enc.NewDecoder()))
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		// Only allow http/https during redirects.
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
