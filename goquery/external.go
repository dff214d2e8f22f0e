package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deptscrape"
)

// documentExtensions are URL path suffixes classified as documents.
var documentExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx"}

// extractExternal collects all remaining links not claimed by the
// subsection, faculty, or appointment locators and tags each with a
// type relative to the source host. Breadcrumb links and directory
// links are never external content links.
func (p *Parser) extractExternal(doc *goquery.Document, claimed map[string]bool) []deptscrape.ExternalLink {
	seen := make(map[string]bool)
	var links []deptscrape.ExternalLink

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := deptscrape.Normalize(sel.Text())
		if text == "" || isNonHTTPLink(href) {
			return
		}
		if strings.Contains(strings.ToLower(href), facultyPathFragment) {
			return
		}
		if parentClassContains(sel, "breadcrumb") {
			return
		}

		key := normalizeLinkURL(href)
		if key == "" || claimed[key] || seen[key] {
			return
		}
		seen[key] = true

		links = append(links, deptscrape.ExternalLink{
			Text: text,
			URL:  href,
			Type: p.classifyLink(href),
		})
	})

	return links
}

// classifyLink tags a link by URL shape: document by path extension,
// then internal for relative paths or source-host URLs, external for
// everything else. The document check runs first so a hosted PDF on a
// third-party domain still reads as a document.
func (p *Parser) classifyLink(href string) deptscrape.ExternalLinkType {
	path := href
	if u, err := url.Parse(strings.TrimSpace(href)); err == nil {
		path = u.Path
	}
	lowerPath := strings.ToLower(path)
	for _, ext := range documentExtensions {
		if strings.HasSuffix(lowerPath, ext) {
			return deptscrape.LinkDocument
		}
	}

	host := linkHost(href)
	if host == "" || strings.Contains(strings.ToLower(host), strings.ToLower(p.sourceHost)) {
		return deptscrape.LinkInternal
	}
	return deptscrape.LinkExternal
}

// parentClassContains reports whether the link's immediate parent has
// a class containing the fragment.
func parentClassContains(sel *goquery.Selection, fragment string) bool {
	class, _ := sel.Parent().Attr("class")
	return strings.Contains(strings.ToLower(class), fragment)
}
