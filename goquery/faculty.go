package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deptscrape"
)

// facultyPathFragment marks links to the physician directory.
const facultyPathFragment = "/findadoctor.aspx"

// facultyTextHints identify inline faculty links outside the heading
// pattern. Matched case-insensitively.
var facultyTextHints = []string{"meet our", "find a doctor", "faculty"}

// extractFaculty finds links to physician profile pages and infers the
// specialty for each. Two layout patterns occur in the wild: a link
// wrapped in an h4 heading, and an inline link whose text advertises
// the doctor directory. Links already claimed by the subsection
// locator are skipped; results are deduplicated by normalized URL in
// first-seen order.
func extractFaculty(doc *goquery.Document, claimed map[string]bool) deptscrape.FacultyLinkGroup {
	seen := make(map[string]bool)
	var links []deptscrape.FacultyLink

	add := func(sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(strings.ToLower(href), facultyPathFragment) {
			return
		}
		key := normalizeLinkURL(href)
		if key == "" || seen[key] || claimed[key] {
			return
		}
		seen[key] = true
		claimed[key] = true
		links = append(links, deptscrape.FacultyLink{
			Text:      deptscrape.Normalize(sel.Text()),
			URL:       href,
			Specialty: inferSpecialty(href, sel),
		})
	}

	doc.Find("h4 a[href]").Each(func(_ int, sel *goquery.Selection) {
		add(sel)
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		text := strings.ToLower(deptscrape.Normalize(sel.Text()))
		for _, hint := range facultyTextHints {
			if strings.Contains(text, hint) {
				add(sel)
				return
			}
		}
	})

	return deptscrape.FacultyLinkGroup{
		Count:   len(links),
		Pattern: deptscrape.PatternForCount(len(links)),
		Links:   links,
	}
}

// inferSpecialty derives the specialty for a faculty link. The Spec
// query parameter of the directory URL is authoritative; when it is
// absent, the nearest preceding subheading is used. Failure to infer
// yields an empty specialty, never an error.
func inferSpecialty(href string, sel *goquery.Selection) string {
	if u, err := url.Parse(strings.TrimSpace(href)); err == nil {
		if spec := u.Query().Get("Spec"); spec != "" {
			return deptscrape.Normalize(spec)
		}
	}

	heading := sel.Closest("h4").PrevAllFiltered("h2, h3").First()
	if heading.Length() > 0 {
		return deptscrape.Normalize(heading.Text())
	}
	return ""
}
