// Package deptscrape extracts structured records from hospital
// department and service pages and optionally republishes them as
// nested content blocks in Storyblok. It classifies each page into one
// of six structural archetypes and extracts a normalized record (title,
// breadcrumb, body text, faculty links, appointment section, subsection
// links, external links) that the CSV/JSON writer and the CMS uploader
// consume.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// storyblok/, fs/).
package deptscrape
