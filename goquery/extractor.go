// Package goquery implements schemagen.Extractor with heuristics evaluated
// over a goquery document. Every field is looked up through an ordered list
// of selector rules, most specific first; the first qualifying value wins.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/schemagen"
)

// Ensure Extractor implements schemagen.Extractor at compile time.
var _ schemagen.Extractor = (*Extractor)(nil)

// Extractor extracts editorial metadata from HTML pages.
// It holds no state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the page metadata.
func (e *Extractor) Extract(html string, sourceURL string) (*schemagen.ExtractedData, error) {
	base, err := url.Parse(sourceURL)
	if err != nil {
		return nil, schemagen.Errorf(schemagen.EINVALID, "invalid source URL: %v", err)
	}
	if !base.IsAbs() || base.Host == "" {
		return nil, schemagen.Errorf(schemagen.EINVALID, "source URL %q is not absolute", sourceURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, schemagen.Errorf(schemagen.EINVALID, "failed to parse HTML: %v", err)
	}

	published, modified := extractDates(doc)

	return &schemagen.ExtractedData{
		Title:          extractTitle(doc),
		Description:    extractDescription(doc),
		Author:         authorChain.Value(doc.Selection),
		DatePublished:  published,
		DateModified:   modified,
		Image:          extractImage(doc, base),
		ArticleSection: sectionChain.Value(doc.Selection),
		ArticleBody:    extractArticleBody(doc),
		Breadcrumbs:    extractBreadcrumbs(doc, base),
		FAQs:           extractFAQs(doc),
		PublisherName:  publisherNameChain.Value(doc.Selection),
		PublisherLogo:  extractPublisherLogo(doc, base),
		AuthorURL:      extractAuthorURL(doc, base),
	}, nil
}
