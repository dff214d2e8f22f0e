package deptscrape

import "context"

// Fetcher retrieves raw HTML for a URL. The core never performs
// network I/O itself; fetching, timeouts, and user-agent policy live
// behind this interface.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}

// DomainLimiter rate-limits requests per domain. Wait blocks until the
// next request to the domain is allowed or the context is canceled.
type DomainLimiter interface {
	Wait(ctx context.Context, domain string) error
}
