package mock

import (
	"github.com/fwojciec/deptscrape"
)

var _ deptscrape.PageParser = (*PageParser)(nil)

// PageParser is a mock implementation of deptscrape.PageParser.
type PageParser struct {
	ParseFn func(pageURL, html string) (*deptscrape.Extraction, error)
}

func (p *PageParser) Parse(pageURL, html string) (*deptscrape.Extraction, error) {
	return p.ParseFn(pageURL, html)
}
