package fs

import (
	"bufio"
	"context"
	"os"
	"strings"

	"github.com/fwojciec/deptscrape"
	"github.com/fwojciec/deptscrape/bloom"
)

// Bloom filter sizing for links file deduplication.
const (
	expectedLinkURLs   = 10000
	linkFalsePositives = 0.01
)

// Ensure LinksSource implements deptscrape.URLSource at compile time.
var _ deptscrape.URLSource = (*LinksSource)(nil)

// LinksSource reads page URLs from a plain text file, one URL per
// line. Blank lines and lines starting with # are skipped, and
// duplicate URLs are dropped.
type LinksSource struct {
	path string
}

// NewLinksSource creates a LinksSource reading from path.
func NewLinksSource(path string) *LinksSource {
	return &LinksSource{path: path}
}

// URLs returns the URLs listed in the file in their original order.
func (s *LinksSource) URLs(ctx context.Context) ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, deptscrape.Errorf(deptscrape.ENOTFOUND, "links file %q not found", s.path)
		}
		return nil, err
	}
	defer f.Close()

	seen := bloom.NewFilter(expectedLinkURLs, linkFalsePositives)
	var urls []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen.Seen(line) {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}
