package deptscrape

// Classify assigns exactly one archetype to a page from its extraction
// signals. Rules are evaluated in order and the first match wins; real
// pages can satisfy several loose conditions at once, so the ordering
// is part of the contract.
//
// When no rule matches, the page is classified as standard and flagged
// for manual review. Classification is never empty.
func Classify(e *Extraction) (PageType, bool) {
	hasBody := e.Body.MainParagraphs != ""

	switch {
	case !e.HasH1 && !e.Body.HasCollapsibleSections && e.Faculty.Count >= 2:
		return PageServiceComplex, false
	case e.HasH1 && e.Subsections.Count > 0:
		return PageParentOverview, false
	case e.HasH1 && e.Faculty.Count >= 3:
		return PageMultiSpecialty, false
	case e.HasH1 && e.Body.HasSubheadings && e.Faculty.Count == 0:
		return PageStructured, false
	case e.HasH1 && hasBody && e.Faculty.Count == 1 && e.Appointment.Present:
		return PageStandard, false
	case e.HasH1 && hasBody && e.Faculty.Count >= 1 && !e.Appointment.Present:
		return PageSimple, false
	}

	return PageStandard, true
}
