package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Reader reads a candidate value from a matched element.
type Reader func(sel *goquery.Selection) string

// Qualifier decides whether a value read by a Rule is acceptable.
type Qualifier func(value string) bool

// Rule is one step of an ordered-fallback lookup.
type Rule struct {
	// Selector is the CSS selector to match.
	Selector string

	// Read extracts the candidate value from a matched element.
	Read Reader

	// Accept qualifies the value. Nil accepts any non-empty value.
	Accept Qualifier

	// All makes the rule consider every match in document order instead of
	// only the first one.
	All bool
}

// Match is the winning value of a Chain together with the element it came from.
type Match struct {
	Value    string
	Selector string
	Node     *goquery.Selection
}

// Chain is an ordered list of rules evaluated with early exit: the first rule
// producing a qualifying value wins and the remaining rules are skipped.
type Chain []Rule

// NewChain builds a Chain that applies the same reader and qualifier to each
// selector, in the given priority order.
func NewChain(read Reader, accept Qualifier, selectors ...string) Chain {
	c := make(Chain, 0, len(selectors))
	for _, s := range selectors {
		c = append(c, Rule{Selector: s, Read: read, Accept: accept})
	}
	return c
}

// First evaluates the chain against root and returns the first qualifying match.
func (c Chain) First(root *goquery.Selection) (Match, bool) {
	for _, rule := range c {
		matches := root.Find(rule.Selector)
		if !rule.All {
			matches = matches.First()
		}
		var found Match
		ok := false
		matches.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			v := rule.Read(sel)
			if !rule.accepts(v) {
				return true
			}
			found = Match{Value: v, Selector: rule.Selector, Node: sel}
			ok = true
			return false
		})
		if ok {
			return found, true
		}
	}
	return Match{}, false
}

// Value is like First but returns only the value, or "" when nothing qualified.
func (c Chain) Value(root *goquery.Selection) string {
	m, _ := c.First(root)
	return m.Value
}

func (r Rule) accepts(v string) bool {
	if r.Accept == nil {
		return v != ""
	}
	return r.Accept(v)
}

// attrOrText reads the first non-empty attribute among attrs, falling back to
// the element's trimmed text.
func attrOrText(attrs ...string) Reader {
	read := attrOnly(attrs...)
	return func(sel *goquery.Selection) string {
		if v := read(sel); v != "" {
			return v
		}
		return text(sel)
	}
}

// attrOnly reads the first non-empty attribute among attrs.
func attrOnly(attrs ...string) Reader {
	return func(sel *goquery.Selection) string {
		for _, a := range attrs {
			if v := strings.TrimSpace(sel.AttrOr(a, "")); v != "" {
				return v
			}
		}
		return ""
	}
}

// text returns the trimmed text content of sel.
func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// longerThan accepts values with more than n runes.
func longerThan(n int) Qualifier {
	return func(v string) bool {
		return utf8.RuneCountInString(v) > n
	}
}

// collapseWhitespace replaces every run of whitespace with a single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
