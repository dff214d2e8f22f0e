package storyblok

import (
	"github.com/fwojciec/deptscrape"
	"github.com/google/uuid"
)

// Family Hifazat app listing URLs embedded in the appointment block.
const (
	appStoreURL   = "https://apps.apple.com/pk/app/family-hifazat/id1373736569"
	googlePlayURL = "https://play.google.com/store/apps/details?id=edu.aku.family_hifazat"
)

// appointmentText is the canonical appointment call to action shown on
// republished pages.
const appointmentText = "Click here to request an appointment online, call to book an appointment: (021)111911911 or use our Family Hifazat APP to self-book."

// BuildContent assembles the story content for a page record: a
// two-column grid holding the body paragraph and, when the source page
// had an appointment section, a stacked grid with the appointment
// heading, call to action and app store badges.
func BuildContent(rec *deptscrape.PageRecord, contentType, titleField string) map[string]any {
	children := []map[string]any{
		paragraphBlock(richText(textParagraph(rec.BodyContent.MainParagraphs))),
	}

	if rec.AppointmentSection.Present {
		children = append(children, stackBlock(
			paragraphBlock(richText(
				headingNode(6, "Request an Appointment:"),
				textParagraph(appointmentText),
			)),
			appStoreBlock("apple", appStoreURL),
			appStoreBlock("google", googlePlayURL),
		))
	}

	return map[string]any{
		"component": contentType,
		titleField:  rec.PageTitle,
		"body":      []map[string]any{gridBlock(children)},
	}
}

// gridBlock is the outer two-column layout.
func gridBlock(children []map[string]any) map[string]any {
	return map[string]any{
		"_uid":        uuid.NewString(),
		"component":   "grid",
		"layout_type": "grid",
		"columns":     2,
		"gap":         10,
		"content":     children,
	}
}

// stackBlock is a nested grid with vertical stacking.
func stackBlock(children ...map[string]any) map[string]any {
	return map[string]any{
		"_uid":        uuid.NewString(),
		"component":   "grid",
		"layout_type": "stack",
		"content":     children,
	}
}

func paragraphBlock(doc map[string]any) map[string]any {
	return map[string]any{
		"_uid":      uuid.NewString(),
		"component": "paragraph",
		"content":   doc,
	}
}

func appStoreBlock(storeType, url string) map[string]any {
	return map[string]any{
		"_uid":       uuid.NewString(),
		"component":  "app_store",
		"store_type": storeType,
		"link": map[string]any{
			"linktype":   "url",
			"url":        url,
			"cached_url": url,
		},
	}
}

// richText wraps rich text nodes in a document node.
func richText(nodes ...map[string]any) map[string]any {
	return map[string]any{
		"type":    "doc",
		"content": nodes,
	}
}

// textParagraph is a paragraph node holding plain text.
func textParagraph(text string) map[string]any {
	return map[string]any{
		"type": "paragraph",
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	}
}

// headingNode is a heading node of the given level.
func headingNode(level int, text string) map[string]any {
	return map[string]any{
		"type":  "heading",
		"attrs": map[string]any{"level": level},
		"content": []map[string]any{
			{"type": "text", "text": text},
		},
	}
}
