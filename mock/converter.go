package mock

import (
	"github.com/fwojciec/deptscrape"
)

var _ deptscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of deptscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ deptscrape.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of deptscrape.ContentExtractor.
type ContentExtractor struct {
	ExtractTextFn func(html string) (string, error)
}

func (e *ContentExtractor) ExtractText(html string) (string, error) {
	return e.ExtractTextFn(html)
}
