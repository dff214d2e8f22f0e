// Package bloom provides approximate URL deduplication for page
// sources. A Bloom filter keeps memory flat no matter how many URLs a
// sitemap or links file yields; the occasional false positive only
// means a duplicate-looking URL is skipped.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter deduplicates URLs with a fixed memory footprint. False
// positives are possible; false negatives are not, so a URL reported
// as unseen has definitely not been recorded before.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs at the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen records the URL and reports whether it had already been
// recorded. Sources call it once per discovered URL and keep only
// first sightings.
func (f *Filter) Seen(url string) bool {
	return f.f.TestOrAddString(url)
}
