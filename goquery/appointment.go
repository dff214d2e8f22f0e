package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/deptscrape"
)

// appointmentPhrase identifies the appointment call-to-action region.
const appointmentPhrase = "request an appointment"

// appointmentHeading is the canonical heading recorded for the region.
const appointmentHeading = "Request an Appointment"

// phoneRE matches a phone number shape: digits with optional country
// prefix, parentheses, and dash/space separators. Candidates are
// post-validated to contain at least 7 digits so dates and years don't
// slip through.
var phoneRE = regexp.MustCompile(`[+(]?\d[\d()\s-]{5,}\d`)

// App badge signatures inside the appointment region.
var (
	googlePlayFragments = []string{"google play", "playstore", "play.google"}
	appStoreFragments   = []string{"app store", "appstore", "apps.apple"}
	familyAppFragments  = []string{"family hifazat", "familyhifazat", "family_hifazat"}
)

// extractAppointment finds the single region containing the
// appointment call-to-action: the first paragraph whose text contains
// the fixed phrase. All links inside the region are claimed so they
// never reappear as external links. Absence is a valid outcome.
func extractAppointment(doc *goquery.Document, claimed map[string]bool) deptscrape.AppointmentSection {
	var section deptscrape.AppointmentSection

	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		text := deptscrape.Normalize(p.Text())
		if !strings.Contains(strings.ToLower(text), appointmentPhrase) {
			return true
		}

		section.Present = true
		section.Components.Heading = appointmentHeading
		section.Components.PhoneNumber = findPhoneNumber(text)

		if strings.Contains(strings.ToLower(text), "family hifazat") {
			section.Components.FamilyHifazat.MainLinkPresent = true
		}

		p.Find("a[href]").Each(func(i int, link *goquery.Selection) {
			href, _ := link.Attr("href")
			claimed[normalizeLinkURL(href)] = true

			lower := strings.ToLower(href)
			switch {
			case containsAny(lower, googlePlayFragments):
				section.Components.FamilyHifazat.GooglePlayButton = true
			case containsAny(lower, appStoreFragments):
				section.Components.FamilyHifazat.AppStoreButton = true
			case containsAny(lower, familyAppFragments):
				section.Components.FamilyHifazat.MainLinkPresent = true
			case !section.Components.ClickHereLink.Present:
				section.Components.ClickHereLink = deptscrape.ClickHereLink{
					Present: true,
					Text:    deptscrape.Normalize(link.Text()),
					URL:     href,
				}
			}
		})

		p.Find("img[src]").Each(func(_ int, img *goquery.Selection) {
			src, _ := img.Attr("src")
			lower := strings.ToLower(src)
			if containsAny(lower, googlePlayFragments) {
				section.Components.FamilyHifazat.GooglePlayButton = true
			}
			if containsAny(lower, appStoreFragments) {
				section.Components.FamilyHifazat.AppStoreButton = true
			}
		})

		return false // first match wins
	})

	return section
}

// findPhoneNumber returns the first phone-shaped token in text, or ""
// when none qualifies.
func findPhoneNumber(text string) string {
	for _, candidate := range phoneRE.FindAllString(text, -1) {
		candidate = strings.TrimSpace(candidate)
		if digitCount(candidate) >= 7 {
			return candidate
		}
	}
	return ""
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func containsAny(s string, fragments []string) bool {
	for _, f := range fragments {
		if strings.Contains(s, f) {
			return true
		}
	}
	return false
}
