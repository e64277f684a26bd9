package schemagen_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/schemagen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toMap round-trips v through JSON so tests can assert on the emitted keys.
func toMap(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	return m
}

func fullData() *schemagen.ExtractedData {
	return &schemagen.ExtractedData{
		Title:          "How to Brew Coffee",
		Description:    "A complete guide to brewing coffee at home.",
		Author:         "Jane Doe",
		AuthorURL:      "https://example.com/author/jane/",
		DatePublished:  "2024-01-15T10:30:00.000Z",
		DateModified:   "2024-02-01T08:00:00.000Z",
		Image:          &schemagen.Image{URL: "https://example.com/coffee.jpg", Width: 1200, Height: 630},
		ArticleSection: "Guides",
		ArticleBody:    "Start with fresh beans.",
		Breadcrumbs: []schemagen.Breadcrumb{
			{Name: "Home", URL: "https://example.com", Position: 1},
			{Name: "Guides", URL: "https://example.com/guides/", Position: 2},
			{Name: "Brew Coffee", URL: "https://example.com/guides/brew-coffee", Position: 3},
		},
		FAQs: []schemagen.FAQ{
			{Question: "What grind should I use?", Answer: "Medium for drip machines."},
			{Question: "How hot should the water be?", Answer: "Between 90 and 96 degrees."},
		},
		PublisherName: "Coffee Weekly",
		PublisherLogo: "https://example.com/logo.png",
	}
}

func TestNewArticleSchema(t *testing.T) {
	t.Parallel()

	t.Run("maps every present field", func(t *testing.T) {
		t.Parallel()

		s := schemagen.NewArticleSchema(fullData(), "https://example.com/guides/brew-coffee")

		assert.Equal(t, "https://schema.org", s.Context)
		assert.Equal(t, "Article", s.Type)
		assert.Equal(t, "How to Brew Coffee", s.Headline)
		assert.Equal(t, schemagen.WebPage{Type: "WebPage", ID: "https://example.com/guides/brew-coffee"}, s.MainEntityOfPage)
		assert.Equal(t, "A complete guide to brewing coffee at home.", s.Description)
		require.NotNil(t, s.Image)
		assert.Equal(t, schemagen.ImageObject{Type: "ImageObject", URL: "https://example.com/coffee.jpg", Height: 630, Width: 1200}, *s.Image)
		require.NotNil(t, s.Author)
		assert.Equal(t, schemagen.Person{Type: "Person", Name: "Jane Doe", URL: "https://example.com/author/jane/"}, *s.Author)
		require.NotNil(t, s.Publisher)
		assert.Equal(t, "Coffee Weekly", s.Publisher.Name)
		require.NotNil(t, s.Publisher.Logo)
		assert.Equal(t, "https://example.com/logo.png", s.Publisher.Logo.URL)
		assert.Equal(t, "2024-01-15T10:30:00.000Z", s.DatePublished)
		assert.Equal(t, "2024-02-01T08:00:00.000Z", s.DateModified)
		assert.Equal(t, "Guides", s.ArticleSection)
		assert.Equal(t, "Start with fresh beans.", s.ArticleBody)
	})

	t.Run("omits keys for absent optional fields", func(t *testing.T) {
		t.Parallel()

		data := &schemagen.ExtractedData{Title: "Untitled"}
		m := toMap(t, schemagen.NewArticleSchema(data, "https://example.com/"))

		assert.Equal(t, "Untitled", m["headline"])
		assert.Contains(t, m, "mainEntityOfPage")
		for _, key := range []string{"description", "image", "author", "publisher", "datePublished", "dateModified", "articleSection", "articleBody"} {
			assert.NotContains(t, m, key)
		}
	})

	t.Run("omits author URL and publisher logo when absent", func(t *testing.T) {
		t.Parallel()

		data := &schemagen.ExtractedData{Title: "Post", Author: "Jane", PublisherName: "Weekly"}
		m := toMap(t, schemagen.NewArticleSchema(data, "https://example.com/post"))

		author := m["author"].(map[string]any)
		assert.Equal(t, "Jane", author["name"])
		assert.NotContains(t, author, "url")
		publisher := m["publisher"].(map[string]any)
		assert.Equal(t, "Organization", publisher["@type"])
		assert.NotContains(t, publisher, "logo")
	})

	t.Run("ignores author URL without author", func(t *testing.T) {
		t.Parallel()

		data := &schemagen.ExtractedData{Title: "Post", AuthorURL: "https://example.com/author/x"}
		s := schemagen.NewArticleSchema(data, "https://example.com/post")

		assert.Nil(t, s.Author)
	})
}

func TestNewBreadcrumbSchema(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without breadcrumbs", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, schemagen.NewBreadcrumbSchema(&schemagen.ExtractedData{Title: "Post"}))
	})

	t.Run("preserves order and renders positions as strings", func(t *testing.T) {
		t.Parallel()

		s := schemagen.NewBreadcrumbSchema(fullData())

		require.NotNil(t, s)
		assert.Equal(t, "https://schema.org/", s.Context)
		assert.Equal(t, "BreadcrumbList", s.Type)
		assert.Equal(t, "How to Brew Coffee", s.Name)
		require.Len(t, s.ItemListElement, 3)
		assert.Equal(t, schemagen.ListItem{
			Type:     "ListItem",
			Position: "2",
			Item:     schemagen.ItemLink{ID: "https://example.com/guides/", Name: "Guides"},
		}, s.ItemListElement[1])
		assert.Equal(t, "3", s.ItemListElement[2].Position)
	})
}

func TestNewFAQSchema(t *testing.T) {
	t.Parallel()

	t.Run("returns nil without FAQs", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, schemagen.NewFAQSchema(&schemagen.ExtractedData{FAQs: []schemagen.FAQ{}}))
	})

	t.Run("maps each FAQ to a question with accepted answer", func(t *testing.T) {
		t.Parallel()

		s := schemagen.NewFAQSchema(fullData())

		require.NotNil(t, s)
		assert.Equal(t, "FAQPage", s.Type)
		require.Len(t, s.MainEntity, 2)
		assert.Equal(t, schemagen.Question{
			Type:           "Question",
			Name:           "What grind should I use?",
			AcceptedAnswer: schemagen.Answer{Type: "Answer", Text: "Medium for drip machines."},
		}, s.MainEntity[0])
		assert.Equal(t, "How hot should the water be?", s.MainEntity[1].Name)
	})
}

func TestGenerateSchemas(t *testing.T) {
	t.Parallel()

	t.Run("generates only requested schemas", func(t *testing.T) {
		t.Parallel()

		s := schemagen.GenerateSchemas(fullData(), "https://example.com/p", schemagen.SchemaFlags{Article: true})

		assert.NotNil(t, s.Article)
		assert.Nil(t, s.Breadcrumb)
		assert.Nil(t, s.FAQ)
	})

	t.Run("omits faq key when no FAQs were found", func(t *testing.T) {
		t.Parallel()

		data := fullData()
		data.FAQs = []schemagen.FAQ{}
		flags := schemagen.SchemaFlags{Article: true, Breadcrumb: true, FAQ: true}

		m := toMap(t, schemagen.GenerateSchemas(data, "https://example.com/p", flags))

		assert.Contains(t, m, "article")
		assert.Contains(t, m, "breadcrumb")
		assert.NotContains(t, m, "faq")
	})

	t.Run("nothing requested yields an empty object", func(t *testing.T) {
		t.Parallel()

		m := toMap(t, schemagen.GenerateSchemas(fullData(), "https://example.com/p", schemagen.SchemaFlags{}))

		assert.Empty(t, m)
	})
}
