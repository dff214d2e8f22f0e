package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deptscrape"
	"golang.org/x/net/html"
)

// bodyContainerSelectors are tried in order when locating the main
// content region. Hand-authored pages use several generations of CMS
// templates, hence the list.
var bodyContainerSelectors = []string{
	"div.ContentMain",
	"div.MainContentZone",
	"div[role='main']",
	"article",
	"main",
}

// navigationMarkers identify structural regions excluded from body
// content: navigation, menus, sidebars, headers, footers.
var navigationMarkers = []string{"nav", "menu", "sidebar", "header", "footer"}

// locateTitle finds the primary heading. It prefers an h1; when none
// exists it falls back to the first h2 but still reports hasH1 false.
// An absent title is an empty string, so empty-content validation can
// fire downstream.
func locateTitle(doc *goquery.Document) (bool, string) {
	h1 := doc.Find("h1").First()
	if h1.Length() > 0 {
		return true, deptscrape.Normalize(h1.Text())
	}
	h2 := doc.Find("h2").First()
	if h2.Length() > 0 {
		return false, deptscrape.Normalize(h2.Text())
	}
	return false, ""
}

// locateBreadcrumb finds the breadcrumb trail and joins its link texts
// with " > ". Returns "" when no breadcrumb container exists.
func locateBreadcrumb(doc *goquery.Document) string {
	var crumb string
	doc.Find("div, nav").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		if !strings.Contains(strings.ToLower(class), "breadcrumb") {
			return true
		}
		var parts []string
		sel.Find("a").Each(func(_ int, link *goquery.Selection) {
			if text := deptscrape.Normalize(link.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		if len(parts) > 0 {
			crumb = strings.Join(parts, " > ")
			return false
		}
		return true
	})
	return crumb
}

// locateBody finds the main content container, excluding navigation,
// sidebar, and footer regions. It tries the fixed container selectors
// first, then any div whose class suggests content and that holds a
// paragraph or heading, then the document body.
func locateBody(doc *goquery.Document) *goquery.Selection {
	for _, selector := range bodyContainerSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}

	var found *goquery.Selection
	doc.Find("div[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		lower := strings.ToLower(class)
		for _, hint := range []string{"content", "main", "body", "article"} {
			if strings.Contains(lower, hint) {
				if sel.Find("p, h1, h2").Length() > 0 {
					found = sel
					return false
				}
				break
			}
		}
		return true
	})
	if found != nil {
		return found
	}

	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return doc.Selection
}

// extractBody turns the located body region into normalized text plus
// structural flags. Paragraphs shorter than 10 characters and
// boilerplate sections are skipped. When the selectors find no
// paragraphs at all, the fallback content extractor (if configured)
// gets one shot at the raw markup.
func (p *Parser) extractBody(body *goquery.Selection, rawHTML string) (deptscrape.BodyContent, string) {
	var paragraphs []string
	body.Find("p").Each(func(_ int, sel *goquery.Selection) {
		text := deptscrape.Normalize(sel.Text())
		if len(text) <= 10 {
			return
		}
		for _, excluded := range p.excludedSections {
			if strings.Contains(text, excluded) {
				return
			}
		}
		paragraphs = append(paragraphs, text)
	})

	mainText := strings.Join(paragraphs, "\n\n")
	if mainText == "" && p.fallback != nil {
		if text, err := p.fallback.ExtractText(rawHTML); err == nil {
			mainText = deptscrape.Normalize(text)
		}
	}

	var subheadingTags []string
	for _, tag := range []string{"h2", "h3", "h4", "h5", "h6"} {
		if body.Find(tag).Length() > 0 {
			subheadingTags = append(subheadingTags, tag)
		}
	}

	return deptscrape.BodyContent{
		MainParagraphs:         mainText,
		WordCount:              deptscrape.WordCount(mainText),
		HasSubheadings:         len(subheadingTags) > 0,
		SubheadingTags:         subheadingTags,
		HasBulletLists:         body.Find("ul, ol").Length() > 0,
		HasCollapsibleSections: hasCollapsibleSections(body),
	}, renderSelection(body)
}

// hasCollapsibleSections probes for collapsible/accordion markup via a
// fixed set of structural signatures.
func hasCollapsibleSections(body *goquery.Selection) bool {
	collapsible := false
	body.Find("h4[id]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		id, _ := sel.Attr("id")
		if strings.Contains(strings.ToLower(id), "collapse") {
			collapsible = true
			return false
		}
		return true
	})
	if collapsible {
		return true
	}
	return body.Find("[data-toggle='collapse'], .accordion").Length() > 0
}

// insideNavigation reports whether the selection sits under one of the
// excluded structural regions.
func insideNavigation(sel *goquery.Selection) bool {
	inside := false
	sel.ParentsFiltered("[class]").EachWithBreak(func(_ int, parent *goquery.Selection) bool {
		class, _ := parent.Attr("class")
		lower := strings.ToLower(class)
		for _, marker := range navigationMarkers {
			if strings.Contains(lower, marker) {
				inside = true
				return false
			}
		}
		return true
	})
	if inside {
		return true
	}
	return sel.ParentsFiltered("nav, aside, header, footer").Length() > 0
}

// renderSelection serializes the first node of a selection back to
// HTML for the review Markdown copy.
func renderSelection(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, sel.Get(0)); err != nil {
		return ""
	}
	return buf.String()
}
