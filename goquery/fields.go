package goquery

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/schemagen"
)

// maxDescriptionLength is the rune limit of a description before truncation.
const maxDescriptionLength = 300

const ellipsis = "..."

var (
	titleChain = NewChain(attrOrText("content"), nil,
		"h1",
		`meta[property="og:title"]`,
		`meta[name="twitter:title"]`,
		".article-title",
		".post-title",
		".entry-title",
		"title",
	)

	descriptionChain = append(NewChain(attrOrText("content"), longerThan(20),
		`meta[name="description"]`,
		`meta[property="og:description"]`,
		`meta[name="twitter:description"]`,
		".article-description",
		".post-excerpt",
		".entry-summary",
	), Rule{Selector: "p", Read: text, Accept: longerThan(20), All: true})

	authorChain = NewChain(attrOrText("content"), nil,
		`[rel="author"]`,
		`[property="article:author"]`,
		`[name="author"]`,
		".author",
		".byline",
		".article-author",
		".post-author",
	)

	authorURLChain = NewChain(attrOnly("href"), nil,
		`[rel="author"]`,
		".author a",
		".byline a",
		".article-author a",
		".post-author a",
		".entry-author a",
		`a[href*="/author/"]`,
		`a[href*="/authors/"]`,
		".author-info a",
		".author-name a",
	)

	datePublishedChain = NewChain(attrOrText("content", "datetime"), nil,
		`[property="article:published_time"]`,
		`[name="publishdate"]`,
		"time[datetime]",
		".published",
		".date",
	)

	dateModifiedChain = NewChain(attrOrText("content", "datetime"), nil,
		`[property="article:modified_time"]`,
		`[name="modifieddate"]`,
		".updated",
		".modified",
	)

	imageChain = NewChain(attrOnly("content", "src"), nil,
		`meta[property="og:image"]`,
		`meta[name="twitter:image"]`,
		"article img",
		".featured-image img",
		".post-image img",
		"img",
	)

	sectionChain = NewChain(attrOrText("content"), nil,
		`[property="article:section"]`,
		".category",
		".section",
		".article-category",
		".post-category",
		"nav .breadcrumb a:last-of-type",
	)

	publisherNameChain = NewChain(attrOrText("content"), nil,
		`[property="og:site_name"]`,
		".site-name",
		".site-title",
		`meta[name="application-name"]`,
	)

	publisherLogoChain = NewChain(attrOnly("href", "src"), nil,
		`link[rel="icon"]`,
		`link[rel="shortcut icon"]`,
		`link[rel="apple-touch-icon"]`,
		".logo img",
		".site-logo img",
	)
)

func extractTitle(doc *goquery.Document) string {
	if v := titleChain.Value(doc.Selection); v != "" {
		return v
	}
	return schemagen.UntitledTitle
}

func extractDescription(doc *goquery.Document) string {
	return truncate(descriptionChain.Value(doc.Selection), maxDescriptionLength)
}

// truncate cuts s to n runes and marks the cut with an ellipsis.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + ellipsis
}

func extractDates(doc *goquery.Document) (published, modified string) {
	if v := datePublishedChain.Value(doc.Selection); v != "" {
		published = NormalizeDate(v)
	}
	if v := dateModifiedChain.Value(doc.Selection); v != "" {
		modified = NormalizeDate(v)
	}
	return published, modified
}

func extractImage(doc *goquery.Document, base *url.URL) *schemagen.Image {
	m, ok := imageChain.First(doc.Selection)
	if !ok {
		return nil
	}

	width := leadingInt(m.Node.AttrOr("width", ""))
	height := leadingInt(m.Node.AttrOr("height", ""))
	if goquery.NodeName(m.Node) == "meta" {
		if width == 0 {
			width = leadingInt(doc.Find(`meta[property="og:image:width"]`).First().AttrOr("content", ""))
		}
		if height == 0 {
			height = leadingInt(doc.Find(`meta[property="og:image:height"]`).First().AttrOr("content", ""))
		}
	}
	if width <= 0 {
		width = schemagen.DefaultImageWidth
	}
	if height <= 0 {
		height = schemagen.DefaultImageHeight
	}

	return &schemagen.Image{
		URL:    resolveURL(base, m.Value),
		Width:  width,
		Height: height,
	}
}

// leadingInt parses the leading decimal digits of s, so "600px" yields 600.
// Returns 0 when s does not start with a digit.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func extractAuthorURL(doc *goquery.Document, base *url.URL) string {
	if v := authorURLChain.Value(doc.Selection); v != "" {
		return resolveURL(base, v)
	}
	return ""
}

func extractPublisherLogo(doc *goquery.Document, base *url.URL) string {
	if v := publisherLogoChain.Value(doc.Selection); v != "" {
		return resolveURL(base, v)
	}
	return ""
}
