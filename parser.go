package deptscrape

// Extraction holds everything the section locators and field
// extractors found on one page. It is the input to classification and
// assembly. Absence of a region is a valid outcome, never an error:
// locators report empty or zero-valued results for missing regions.
type Extraction struct {
	HasH1       bool
	Title       string
	Breadcrumb  string
	Body        BodyContent
	Subsections LinkGroup
	Faculty     FacultyLinkGroup
	Appointment AppointmentSection
	External    []ExternalLink

	// BodyHTML is the raw markup of the located body region, kept for
	// the human-reviewable Markdown copy written next to each record.
	BodyHTML string
}

// PageParser runs all section locators and field extractors over one
// page's markup. Implementations hide the heuristics for inconsistent,
// hand-authored markup; the only error they return is EPARSE for
// markup the HTML parser itself rejects.
type PageParser interface {
	Parse(pageURL, html string) (*Extraction, error)
}

// ContentExtractor recovers body text when the fixed container
// selectors find nothing. Implementations may be arbitrarily heavy;
// the parser only consults them as a last resort.
type ContentExtractor interface {
	ExtractText(html string) (string, error)
}

// Converter transforms an HTML fragment into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
