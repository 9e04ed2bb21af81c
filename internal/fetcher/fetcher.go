package fetcher

import (
	"context"
	"fmt"
	"time"
)

// Fetcher retrieves the raw body of a page
type Fetcher interface {
	// Fetch performs a GET on url and returns the response body.
	// Non-2xx responses are returned as *StatusError.
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Options configures a Fetcher
type Options struct {
	Timeout   time.Duration // 0 means no timeout
	UserAgent string
}

// StatusError reports a non-2xx response
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

// New creates the Fetcher registered under name ("resty" or "colly")
func New(name string, opts Options) (Fetcher, error) {
	switch name {
	case "", "resty":
		return NewRestyFetcher(opts), nil
	case "colly":
		return NewCollyFetcher(opts), nil
	default:
		return nil, fmt.Errorf("unknown fetcher: %s", name)
	}
}
