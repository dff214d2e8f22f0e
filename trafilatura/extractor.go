// Package trafilatura provides a last-resort body text extractor for
// pages whose markup matches none of the known content containers.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/deptscrape"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements deptscrape.ContentExtractor at compile time.
var _ deptscrape.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to recover main text from arbitrary
// markup when the template-specific selectors find nothing.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText processes raw HTML and returns the main body text.
func (e *Extractor) ExtractText(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", deptscrape.Errorf(deptscrape.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return result.ContentText, nil
}
