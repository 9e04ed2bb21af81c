package fetcher

import (
	"context"
	"fmt"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	opts Options
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher(opts Options) *CollyFetcher {
	return &CollyFetcher{opts: opts}
}

// newCollector builds a collector bound to ctx. Colly keeps the context on the
// collector, so each fetch gets its own.
func (cf *CollyFetcher) newCollector(ctx context.Context) *colly.Collector {
	options := []colly.CollectorOption{
		colly.AllowURLRevisit(),
		colly.StdlibContext(ctx),
	}
	if cf.opts.UserAgent != "" {
		options = append(options, colly.UserAgent(cf.opts.UserAgent))
	}

	c := colly.NewCollector(options...)
	// Colly defaults to a 10s timeout; zero here disables it
	c.SetRequestTimeout(cf.opts.Timeout)

	return c
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	c := cf.newCollector(ctx)

	var body []byte
	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = &StatusError{URL: url, StatusCode: r.StatusCode}
			return
		}
		fetchErr = fmt.Errorf("failed to fetch %s: %w", url, err)
	})

	if err := c.Visit(url); err != nil {
		if fetchErr != nil {
			return nil, fetchErr
		}
		return nil, fmt.Errorf("failed to visit %s: %w", url, err)
	}
	if fetchErr != nil {
		return nil, fetchErr
	}

	return body, nil
}
