// Copyright Teresa Parreira, 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across components.
package httputil

import (
	"context"
	"net/http"

	"golang.org/x/time/rate"
)

// Client wraps an http.Client with request spacing and a fixed User-Agent.
// Spacing keeps a run inside the external source's rate limits; a throttled
// response is never retried within a run, so staying under the limit is the
// only defense.
type Client struct {
	HTTP      *http.Client
	Limiter   *rate.Limiter
	UserAgent string
}

// Do waits for the rate limiter, stamps the User-Agent header if the request
// has none, and executes the request. A context cancelled during the wait
// returns ctx.Err().
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	req = req.Clone(ctx)
	if c.UserAgent != "" && req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	return c.HTTP.Do(req)
}
