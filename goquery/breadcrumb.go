package goquery

import (
	"net/url"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/schemagen"
)

// breadcrumbSource finds the links of one kind of breadcrumb markup.
type breadcrumbSource func(doc *goquery.Document) *goquery.Selection

// breadcrumbSources are tried in order; the first one yielding a usable
// link wins.
var breadcrumbSources = []breadcrumbSource{
	findLinks(".breadcrumb a"),
	findLinks(".breadcrumbs a"),
	findLinks(`[typeof="BreadcrumbList"] a`),
	findLinks(`[itemtype*="BreadcrumbList"] a`),
	ariaBreadcrumbLinks,
}

func findLinks(selector string) breadcrumbSource {
	return func(doc *goquery.Document) *goquery.Selection {
		return doc.Find(selector)
	}
}

// ariaBreadcrumbLinks returns links inside a nav whose aria-label mentions
// "bread" in any letter case.
func ariaBreadcrumbLinks(doc *goquery.Document) *goquery.Selection {
	return doc.Find("nav[aria-label]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return strings.Contains(strings.ToLower(sel.AttrOr("aria-label", "")), "bread")
	}).Find("a")
}

type crumbLink struct {
	name string
	href string
}

// extractBreadcrumbs returns the breadcrumb trail declared in markup, or one
// synthesized from the URL path when the page declares none.
func extractBreadcrumbs(doc *goquery.Document, base *url.URL) []schemagen.Breadcrumb {
	for _, source := range breadcrumbSources {
		var links []crumbLink
		source(doc).Each(func(_ int, sel *goquery.Selection) {
			name := text(sel)
			href := strings.TrimSpace(sel.AttrOr("href", ""))
			if name != "" && href != "" {
				links = append(links, crumbLink{name: name, href: href})
			}
		})
		if len(links) > 0 {
			return structuredBreadcrumbs(links, base)
		}
	}
	return SynthesizeBreadcrumbs(base)
}

func structuredBreadcrumbs(links []crumbLink, base *url.URL) []schemagen.Breadcrumb {
	crumbs := make([]schemagen.Breadcrumb, 0, len(links))
	for i, l := range links {
		u := resolveURL(base, l.href)
		if i < len(links)-1 {
			u = withTrailingSlash(u)
		}
		crumbs = append(crumbs, schemagen.Breadcrumb{Name: l.name, URL: u, Position: i + 1})
	}
	return crumbs
}

// SynthesizeBreadcrumbs builds a trail from the path of u: "Home" pointing at
// the site root, then one entry per path segment. Every entry except the last
// segment points at a directory-style URL with a trailing slash.
func SynthesizeBreadcrumbs(u *url.URL) []schemagen.Breadcrumb {
	root := u.Scheme + "://" + u.Host
	crumbs := []schemagen.Breadcrumb{{Name: "Home", URL: root, Position: 1}}

	var segments []string
	for _, s := range strings.Split(u.EscapedPath(), "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	path := ""
	for i, seg := range segments {
		path += "/" + seg
		link := root + path
		if i < len(segments)-1 {
			link += "/"
		}
		crumbs = append(crumbs, schemagen.Breadcrumb{
			Name:     segmentName(seg),
			URL:      link,
			Position: i + 2,
		})
	}
	return crumbs
}

// segmentName turns a path segment such as "getting-started" into
// "Getting Started".
func segmentName(seg string) string {
	if unescaped, err := url.PathUnescape(seg); err == nil {
		seg = unescaped
	}
	return titleCase(strings.ReplaceAll(seg, "-", " "))
}

// titleCase upper-cases the first character of every word.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		isWord := unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
		if isWord && !inWord {
			r = unicode.ToUpper(r)
		}
		inWord = isWord
		b.WriteRune(r)
	}
	return b.String()
}
