package deptscrape

// PageType is the structural archetype assigned to a scraped page.
// Exactly one of the six values is assigned to every page; the
// classifier never leaves it empty.
type PageType string

// Page archetypes.
const (
	PageStandard       PageType = "standard"
	PageSimple         PageType = "simple"
	PageParentOverview PageType = "parent_overview"
	PageMultiSpecialty PageType = "multi_specialty"
	PageStructured     PageType = "structured"
	PageServiceComplex PageType = "service_complex"
)

// Valid reports whether t is one of the six known archetypes.
func (t PageType) Valid() bool {
	switch t {
	case PageStandard, PageSimple, PageParentOverview,
		PageMultiSpecialty, PageStructured, PageServiceComplex:
		return true
	}
	return false
}

// FacultyPattern describes the cardinality of faculty links on a page.
type FacultyPattern string

// Faculty link patterns, derived deterministically from the link count.
const (
	FacultyNone     FacultyPattern = "none"
	FacultySingle   FacultyPattern = "single"
	FacultyMultiple FacultyPattern = "multiple"
)

// PatternForCount derives the faculty pattern from a link count.
func PatternForCount(count int) FacultyPattern {
	switch {
	case count <= 0:
		return FacultyNone
	case count == 1:
		return FacultySingle
	default:
		return FacultyMultiple
	}
}

// Link is a text/URL pair extracted from page markup.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// FacultyLink is a link to a physician or staff profile page, with the
// specialty inferred from the link URL or nearby text. Specialty is
// empty when inference fails; that is never an extraction error.
type FacultyLink struct {
	Text      string `json:"text"`
	URL       string `json:"url"`
	Specialty string `json:"specialty"`
}

// ExternalLinkType classifies a link left unclaimed by the specialized
// locators relative to the source domain.
type ExternalLinkType string

// External link types.
const (
	LinkExternal ExternalLinkType = "external"
	LinkInternal ExternalLinkType = "internal"
	LinkDocument ExternalLinkType = "document"
)

// ExternalLink is a body link not claimed by the subsection, faculty,
// or appointment locators.
type ExternalLink struct {
	Text string           `json:"text"`
	URL  string           `json:"url"`
	Type ExternalLinkType `json:"type"`
}

// BodyContent holds the normalized main text of a page and its
// structural flags.
type BodyContent struct {
	MainParagraphs string `json:"main_paragraphs"`
	WordCount      int    `json:"word_count"`
	HasSubheadings bool   `json:"has_subheadings"`
	// SubheadingTags records which heading levels (h2..h6) occur
	// inside the body region, in document-level order.
	SubheadingTags         []string `json:"subheading_tags"`
	HasBulletLists         bool     `json:"has_bullet_lists"`
	HasCollapsibleSections bool     `json:"has_collapsible_sections"`
}

// LinkGroup is an ordered, URL-deduplicated set of subsection links.
type LinkGroup struct {
	Present bool   `json:"present"`
	Count   int    `json:"count"`
	Links   []Link `json:"links"`
}

// FacultyLinkGroup is an ordered, URL-deduplicated set of faculty links
// with the pattern derived from the count.
type FacultyLinkGroup struct {
	Count   int            `json:"count"`
	Pattern FacultyPattern `json:"pattern"`
	Links   []FacultyLink  `json:"links"`
}

// ClickHereLink is the appointment call-to-action link.
type ClickHereLink struct {
	Present bool   `json:"present"`
	Text    string `json:"text"`
	URL     string `json:"url"`
}

// FamilyHifazat records presence of the hospital's self-booking app
// links inside the appointment section.
type FamilyHifazat struct {
	MainLinkPresent  bool `json:"main_link_present"`
	GooglePlayButton bool `json:"google_play_button"`
	AppStoreButton   bool `json:"app_store_button"`
}

// AppointmentComponents are the parts of the appointment region.
type AppointmentComponents struct {
	Heading       string        `json:"heading"`
	ClickHereLink ClickHereLink `json:"click_here_link"`
	PhoneNumber   string        `json:"phone_number"`
	FamilyHifazat FamilyHifazat `json:"family_hifazat"`
}

// AppointmentSection is the page region offering a call-to-action to
// request an appointment.
type AppointmentSection struct {
	Present    bool                  `json:"present"`
	Components AppointmentComponents `json:"components"`
}

// PageRecord is the complete structured record for one scraped URL.
// It is assembled once and never mutated afterward; the serializer and
// uploader consume it read-only. Field names and nesting match the
// existing JSON/CSV consumers exactly.
type PageRecord struct {
	URL                string             `json:"url"`
	PageTitle          string             `json:"page_title"`
	Breadcrumb         string             `json:"breadcrumb"`
	HasH1Title         bool               `json:"has_h1_title"`
	BodyContent        BodyContent        `json:"body_content"`
	SubsectionLinks    LinkGroup          `json:"subsection_links"`
	FacultyLinks       FacultyLinkGroup   `json:"faculty_links"`
	AppointmentSection AppointmentSection `json:"appointment_section"`
	ExternalLinks      []ExternalLink     `json:"external_links"`
	PageType           PageType           `json:"page_type_classification"`

	// ReviewFlagged marks records classified via the fallback rule.
	// It is surfaced through the run summary, not the record JSON.
	ReviewFlagged bool `json:"-"`
}

// Validate returns an error if the record contains invalid fields.
// A page whose title and body are both empty after normalization is a
// scrape failure, not a record.
func (r *PageRecord) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if r.PageTitle == "" && r.BodyContent.MainParagraphs == "" {
		return Errorf(EEMPTYCONTENT, "page has no title and no body content: %s", r.URL)
	}
	if !r.PageType.Valid() {
		return Errorf(EINVALID, "unknown page type %q", r.PageType)
	}
	return nil
}
