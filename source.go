package deptscrape

import "context"

// URLSource yields the list of page URLs for a batch run, already
// deduplicated and in stable order. Implementations read a links file
// or discover URLs from a sitemap.
type URLSource interface {
	URLs(ctx context.Context) ([]string, error)
}
