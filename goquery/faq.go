package goquery

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/schemagen"
)

// MaxFAQs caps the number of FAQs returned for a page.
const MaxFAQs = 20

// faqStrategy detects question and answer pairs in a document.
type faqStrategy func(doc *goquery.Document) []schemagen.FAQ

// faqStrategies are tried in order; the first one finding any pair wins.
var faqStrategies = []faqStrategy{
	accordionFAQs,
	detailsFAQs,
	headingFAQs,
	jsonLDFAQs,
}

func extractFAQs(doc *goquery.Document) []schemagen.FAQ {
	for _, strategy := range faqStrategies {
		if faqs := strategy(doc); len(faqs) > 0 {
			return dedupeFAQs(faqs, MaxFAQs)
		}
	}
	return []schemagen.FAQ{}
}

// dedupeFAQs keeps the first occurrence of each question, compared
// case-insensitively, up to limit entries.
func dedupeFAQs(faqs []schemagen.FAQ, limit int) []schemagen.FAQ {
	seen := make(map[string]struct{}, len(faqs))
	out := make([]schemagen.FAQ, 0, min(len(faqs), limit))
	for _, faq := range faqs {
		if len(out) == limit {
			break
		}
		key := strings.ToLower(faq.Question)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, faq)
	}
	return out
}

// validPair reports whether q and a form a usable FAQ.
func validPair(q, a string) bool {
	return q != "" && a != "" && q != a
}

const faqItemSelector = ".faq-item, .faq-question, .faq-entry, .accordion-item"

var faqQuestionChain = NewChain(text, nil,
	"h3, h4, h5, h6",
	".question",
	".faq-question",
	"summary",
	`[class*="question"]`,
)

var faqAnswerSelectors = []string{
	"p, div:not(.question)",
	".answer",
	".faq-answer",
	`[class*="answer"]`,
}

// accordionFAQs reads FAQ item containers, looking for a question and an
// answer element inside each item.
func accordionFAQs(doc *goquery.Document) []schemagen.FAQ {
	var faqs []schemagen.FAQ
	doc.Find(faqItemSelector).Each(func(_ int, item *goquery.Selection) {
		question := faqQuestionChain.Value(item)
		if question == "" {
			return
		}
		notQuestion := func(v string) bool { return v != "" && v != question }
		answer := NewChain(text, notQuestion, faqAnswerSelectors...).Value(item)
		if validPair(question, answer) {
			faqs = append(faqs, schemagen.FAQ{Question: question, Answer: answer})
		}
	})
	return faqs
}

// detailsFAQs reads HTML disclosure widgets: the summary is the question and
// the remaining content is the answer.
func detailsFAQs(doc *goquery.Document) []schemagen.FAQ {
	var faqs []schemagen.FAQ
	doc.Find("details").Each(func(_ int, details *goquery.Selection) {
		question := text(details.Find("summary").First())
		content := details.Clone()
		content.Find("summary").Remove()
		answer := text(content)
		if validPair(question, answer) {
			faqs = append(faqs, schemagen.FAQ{Question: question, Answer: answer})
		}
	})
	return faqs
}

var questionWords = map[string]bool{
	"what": true, "how": true, "why": true, "when": true, "where": true,
	"can": true, "will": true, "should": true, "do": true, "does": true, "is": true,
}

// looksLikeQuestion reports whether a heading reads as a question.
func looksLikeQuestion(s string) bool {
	if strings.Contains(s, "?") {
		return true
	}
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if questionWords[w] {
			return true
		}
	}
	return false
}

// headingFAQs treats question-like h3-h6 headings as questions answered by
// the paragraph or div that immediately follows them.
func headingFAQs(doc *goquery.Document) []schemagen.FAQ {
	var faqs []schemagen.FAQ
	doc.Find("h3, h4, h5, h6").Each(func(_ int, heading *goquery.Selection) {
		question := text(heading)
		if question == "" || !looksLikeQuestion(question) {
			return
		}
		next := heading.Next()
		if next.Length() == 0 || !next.Is("p, div") {
			return
		}
		answer := text(next)
		if validPair(question, answer) && utf8.RuneCountInString(answer) > 20 {
			faqs = append(faqs, schemagen.FAQ{Question: question, Answer: answer})
		}
	})
	return faqs
}

// jsonLDFAQs reads FAQPage objects from JSON-LD script blocks. Blocks that
// are not valid JSON are skipped.
func jsonLDFAQs(doc *goquery.Document) []schemagen.FAQ {
	var faqs []schemagen.FAQ
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, script *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(script.Text()), &data); err != nil {
			return
		}
		for _, node := range ldNodes(data) {
			if !hasType(node, "FAQPage") {
				continue
			}
			for _, item := range ldObjects(node["mainEntity"]) {
				if faq, ok := ldQuestion(item); ok {
					faqs = append(faqs, faq)
				}
			}
		}
	})
	return faqs
}

// ldNodes flattens a decoded JSON-LD value into its top-level objects,
// including members of @graph.
func ldNodes(v any) []map[string]any {
	var nodes []map[string]any
	for _, obj := range ldObjects(v) {
		nodes = append(nodes, obj)
		if graph, ok := obj["@graph"]; ok {
			nodes = append(nodes, ldObjects(graph)...)
		}
	}
	return nodes
}

// ldObjects returns v as a list of objects whether it is a single object or
// an array.
func ldObjects(v any) []map[string]any {
	switch t := v.(type) {
	case map[string]any:
		return []map[string]any{t}
	case []any:
		var out []map[string]any
		for _, e := range t {
			if obj, ok := e.(map[string]any); ok {
				out = append(out, obj)
			}
		}
		return out
	}
	return nil
}

// hasType reports whether a JSON-LD node declares @type typ, either as a
// string or within a list.
func hasType(node map[string]any, typ string) bool {
	switch t := node["@type"].(type) {
	case string:
		return t == typ
	case []any:
		for _, e := range t {
			if s, ok := e.(string); ok && s == typ {
				return true
			}
		}
	}
	return false
}

func ldQuestion(item map[string]any) (schemagen.FAQ, bool) {
	if !hasType(item, "Question") {
		return schemagen.FAQ{}, false
	}
	question := ldString(item["name"])
	answers := ldObjects(item["acceptedAnswer"])
	if question == "" || len(answers) == 0 {
		return schemagen.FAQ{}, false
	}
	answer := ldString(answers[0]["text"])
	if answer == "" {
		answer = ldString(answers[0]["name"])
	}
	if !validPair(question, answer) {
		return schemagen.FAQ{}, false
	}
	return schemagen.FAQ{Question: question, Answer: answer}, true
}

func ldString(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}
