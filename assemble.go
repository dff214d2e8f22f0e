package deptscrape

// Assemble composes locator and extractor outputs plus the
// classification into one immutable page record. It returns an
// EEMPTYCONTENT error instead of a record when both the title and the
// body text are empty; such a page is a scrape failure and never
// reaches the success set.
func Assemble(url string, e *Extraction) (*PageRecord, error) {
	pageType, fallback := Classify(e)

	rec := &PageRecord{
		URL:                url,
		PageTitle:          e.Title,
		Breadcrumb:         e.Breadcrumb,
		HasH1Title:         e.HasH1,
		BodyContent:        e.Body,
		SubsectionLinks:    e.Subsections,
		FacultyLinks:       e.Faculty,
		AppointmentSection: e.Appointment,
		ExternalLinks:      e.External,
		PageType:           pageType,
		ReviewFlagged:      fallback,
	}

	// Empty link groups serialize as [] rather than null.
	if rec.BodyContent.SubheadingTags == nil {
		rec.BodyContent.SubheadingTags = []string{}
	}
	if rec.SubsectionLinks.Links == nil {
		rec.SubsectionLinks.Links = []Link{}
	}
	if rec.FacultyLinks.Links == nil {
		rec.FacultyLinks.Links = []FacultyLink{}
	}
	if rec.ExternalLinks == nil {
		rec.ExternalLinks = []ExternalLink{}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}
