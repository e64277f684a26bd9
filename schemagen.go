// Package schemagen turns arbitrary web pages into schema.org structured data.
// It fetches a page, heuristically extracts editorial metadata (title, author,
// dates, hero image, body text, breadcrumbs, FAQs, publisher) and formats that
// metadata as Article, BreadcrumbList and FAQPage JSON-LD objects.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, prometheus/).
package schemagen
