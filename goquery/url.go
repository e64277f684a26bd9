package goquery

import (
	"net/url"
	"strings"
)

// resolveURL resolves href against base. Unparseable hrefs are returned as-is.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// withTrailingSlash appends "/" to u unless it already ends with one or
// carries a query or fragment.
func withTrailingSlash(u string) string {
	if strings.HasSuffix(u, "/") || strings.ContainsAny(u, "?#") {
		return u
	}
	return u + "/"
}
