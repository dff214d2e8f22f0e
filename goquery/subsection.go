package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deptscrape"
)

// extractSubsections finds links laid out as a child-department list:
// direct li > a children of bullet lists inside the main content
// region, excluding lists nested under navigation. Links are
// deduplicated by normalized URL, preserving first-seen order, and
// claimed so later locators cannot double-count them.
func extractSubsections(body *goquery.Selection, claimed map[string]bool) deptscrape.LinkGroup {
	seen := make(map[string]bool)
	var links []deptscrape.Link

	body.Find("ul").Each(func(_ int, ul *goquery.Selection) {
		if insideNavigation(ul) {
			return
		}
		ul.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
			link := li.ChildrenFiltered("a[href]").First()
			if link.Length() == 0 {
				link = li.Find("a[href]").First()
			}
			if link.Length() == 0 {
				return
			}

			href, _ := link.Attr("href")
			text := deptscrape.Normalize(link.Text())
			if len(text) <= 2 || strings.HasPrefix(text, "#") || isNonHTTPLink(href) {
				return
			}

			key := normalizeLinkURL(href)
			if key == "" || seen[key] {
				return
			}
			seen[key] = true
			claimed[key] = true
			links = append(links, deptscrape.Link{Text: text, URL: href})
		})
	})

	return deptscrape.LinkGroup{
		Present: len(links) > 0,
		Count:   len(links),
		Links:   links,
	}
}
