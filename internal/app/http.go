package app

import (
	"net"
	"net/http"
	"time"
)

// newHTTPClient builds the client used for page fetches. Rows are processed
// one at a time against what is usually a single host, so the pool keeps just
// a couple of idle connections warm. No client-level timeout is set; each
// request carries its own deadline through its context.
func newHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          4,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: transport}
}
