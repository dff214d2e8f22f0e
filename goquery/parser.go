// Package goquery implements the section locators and field extractors
// over parsed HTML using PuerkitoBio/goquery. Each locator is a pure
// probe: a missing region yields an empty or zero-valued result, never
// an error. The only error Parse returns is EPARSE for markup the HTML
// parser itself rejects.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deptscrape"
)

// Ensure Parser implements deptscrape.PageParser at compile time.
var _ deptscrape.PageParser = (*Parser)(nil)

// Parser runs all locators and extractors over one page's markup.
// It is stateless across pages and safe for concurrent use.
type Parser struct {
	sourceHost       string
	excludedSections []string
	fallback         deptscrape.ContentExtractor
}

// Option configures a Parser.
type Option func(*Parser)

// WithSourceHost sets the host relative to which external links are
// classified as internal or external.
func WithSourceHost(host string) Option {
	return func(p *Parser) {
		p.sourceHost = host
	}
}

// WithExcludedSections sets the text fragments marking boilerplate
// paragraphs that must not count as body content.
func WithExcludedSections(fragments []string) Option {
	return func(p *Parser) {
		p.excludedSections = fragments
	}
}

// WithFallback sets a last-resort content extractor consulted when the
// fixed container selectors yield no paragraphs.
func WithFallback(fallback deptscrape.ContentExtractor) Option {
	return func(p *Parser) {
		p.fallback = fallback
	}
}

// NewParser creates a Parser. Defaults come from the built-in config.
func NewParser(opts ...Option) *Parser {
	defaults := deptscrape.DefaultConfig()
	p := &Parser{
		sourceHost:       defaults.SourceHost,
		excludedSections: defaults.ExcludedSections,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse runs every locator and extractor over the page markup and
// returns the combined extraction.
//
// A link is claimed by at most one specialized locator, in priority
// order subsection > faculty > appointment; anything unclaimed falls
// through to the external-link collection. The claimed set keyed by
// normalized URL enforces this.
func (p *Parser) Parse(pageURL, html string) (*deptscrape.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, deptscrape.Errorf(deptscrape.EPARSE, "parsing markup for %s: %v", pageURL, err)
	}

	body := locateBody(doc)
	claimed := make(map[string]bool)

	e := &deptscrape.Extraction{}
	e.HasH1, e.Title = locateTitle(doc)
	e.Breadcrumb = locateBreadcrumb(doc)
	e.Body, e.BodyHTML = p.extractBody(body, html)
	e.Subsections = extractSubsections(body, claimed)
	e.Faculty = extractFaculty(doc, claimed)
	e.Appointment = extractAppointment(doc, claimed)
	e.External = p.extractExternal(doc, claimed)

	return e, nil
}

// normalizeLinkURL produces the deduplication key for a link href:
// lowercased, fragment stripped, trailing slash trimmed.
func normalizeLinkURL(href string) string {
	s := strings.ToLower(strings.TrimSpace(href))
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, "/")
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be
// skipped (javascript:, mailto:, etc.) or a bare fragment.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return href == "" ||
		strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// linkHost returns the host of an absolute URL, or "" for relative
// paths and unparseable hrefs.
func linkHost(href string) string {
	u, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return u.Host
}
