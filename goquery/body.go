package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Article body thresholds, in runes.
const (
	minParagraphLength  = 20
	minParagraphCount   = 5
	containerFallbackAt = 500
	minBodyLength       = 200
)

var paragraphSelectors = []string{
	"article p",
	".post-content p",
	".entry-content p",
	".article-content p",
	".content p",
	"main p",
}

var containerSelectors = []string{
	`[property="articleBody"]`,
	".article-body",
	".post-body",
	".entry-body",
	".article-content",
	".post-content",
	".entry-content",
	".content-area",
	".main-content",
	"article",
	".content",
	"main",
}

// noiseSelector matches elements stripped from a container before its text
// is taken.
const noiseSelector = "script, style, nav, header, footer, .navigation, .breadcrumb, " +
	".social-share, .comments, .sidebar, .related-posts, .author-box, .tags, " +
	".categories, .meta, .advertisement, .ads, .social-media, .share-buttons"

// extractArticleBody returns the full cleaned article text, or "" when no
// candidate is longer than minBodyLength.
func extractArticleBody(doc *goquery.Document) string {
	best := paragraphBody(doc)
	if runeLen(best) < containerFallbackAt {
		best = longest(best, containerBody(doc))
	}
	if runeLen(best) <= minBodyLength {
		return ""
	}
	return collapseWhitespace(best)
}

// paragraphBody joins the substantial paragraphs under each paragraph
// selector and returns the longest join. A selector only counts when it
// yields more than minParagraphCount substantial paragraphs.
func paragraphBody(doc *goquery.Document) string {
	var best string
	for _, selector := range paragraphSelectors {
		paragraphs := doc.Find(selector).Map(func(_ int, sel *goquery.Selection) string {
			return text(sel)
		})
		var kept []string
		for _, p := range paragraphs {
			if runeLen(p) >= minParagraphLength {
				kept = append(kept, p)
			}
		}
		if len(kept) <= minParagraphCount {
			continue
		}
		best = longest(best, strings.Join(kept, " "))
	}
	return best
}

// containerBody takes the noise-stripped text of the first match of each
// container selector and returns the longest one over minBodyLength.
func containerBody(doc *goquery.Document) string {
	var best string
	for _, selector := range containerSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		clone := container.Clone()
		clone.Find(noiseSelector).Remove()
		content := collapseWhitespace(clone.Text())
		if runeLen(content) > minBodyLength {
			best = longest(best, content)
		}
	}
	return best
}

// longest returns the longer of a and b, preferring a on ties.
func longest(a, b string) string {
	if runeLen(b) > runeLen(a) {
		return b
	}
	return a
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
