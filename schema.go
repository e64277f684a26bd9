package schemagen

import "strconv"

// schema.org context URLs. BreadcrumbList uses the trailing-slash form.
const (
	schemaContext           = "https://schema.org"
	breadcrumbSchemaContext = "https://schema.org/"
)

// SchemaFlags selects which schemas GenerateSchemas produces.
type SchemaFlags struct {
	Article    bool
	Breadcrumb bool
	FAQ        bool
}

// Schemas holds the generated schemas. A schema that was not requested, or
// that has no source data, is nil and omitted from JSON.
type Schemas struct {
	Article    *ArticleSchema        `json:"article,omitempty"`
	Breadcrumb *BreadcrumbListSchema `json:"breadcrumb,omitempty"`
	FAQ        *FAQPageSchema        `json:"faq,omitempty"`
}

// GenerateSchemas formats data as the schemas selected by flags.
func GenerateSchemas(data *ExtractedData, url string, flags SchemaFlags) Schemas {
	var s Schemas
	if flags.Article {
		s.Article = NewArticleSchema(data, url)
	}
	if flags.Breadcrumb {
		s.Breadcrumb = NewBreadcrumbSchema(data)
	}
	if flags.FAQ {
		s.FAQ = NewFAQSchema(data)
	}
	return s
}

// ArticleSchema is a schema.org Article.
type ArticleSchema struct {
	Context          string        `json:"@context"`
	Type             string        `json:"@type"`
	Headline         string        `json:"headline"`
	MainEntityOfPage WebPage       `json:"mainEntityOfPage"`
	Description      string        `json:"description,omitempty"`
	Image            *ImageObject  `json:"image,omitempty"`
	Author           *Person       `json:"author,omitempty"`
	Publisher        *Organization `json:"publisher,omitempty"`
	DatePublished    string        `json:"datePublished,omitempty"`
	DateModified     string        `json:"dateModified,omitempty"`
	ArticleSection   string        `json:"articleSection,omitempty"`
	ArticleBody      string        `json:"articleBody,omitempty"`
}

// WebPage identifies the page an Article is the main entity of.
type WebPage struct {
	Type string `json:"@type"`
	ID   string `json:"@id"`
}

// ImageObject is a schema.org ImageObject. Zero dimensions are omitted.
type ImageObject struct {
	Type   string `json:"@type"`
	URL    string `json:"url"`
	Height int    `json:"height,omitempty"`
	Width  int    `json:"width,omitempty"`
}

// Person is a schema.org Person.
type Person struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Organization is a schema.org Organization.
type Organization struct {
	Type string       `json:"@type"`
	Name string       `json:"name"`
	Logo *ImageObject `json:"logo,omitempty"`
}

// NewArticleSchema builds an Article from data. Headline and
// mainEntityOfPage are always set; every other property is set only when
// the corresponding field of data is present.
func NewArticleSchema(data *ExtractedData, url string) *ArticleSchema {
	s := &ArticleSchema{
		Context:          schemaContext,
		Type:             "Article",
		Headline:         data.Title,
		MainEntityOfPage: WebPage{Type: "WebPage", ID: url},
	}

	s.Description = data.Description
	if data.Image != nil {
		s.Image = &ImageObject{
			Type:   "ImageObject",
			URL:    data.Image.URL,
			Height: data.Image.Height,
			Width:  data.Image.Width,
		}
	}
	if data.Author != "" {
		s.Author = &Person{Type: "Person", Name: data.Author, URL: data.AuthorURL}
	}
	if data.PublisherName != "" {
		s.Publisher = &Organization{Type: "Organization", Name: data.PublisherName}
		if data.PublisherLogo != "" {
			s.Publisher.Logo = &ImageObject{Type: "ImageObject", URL: data.PublisherLogo}
		}
	}
	s.DatePublished = data.DatePublished
	s.DateModified = data.DateModified
	s.ArticleSection = data.ArticleSection
	s.ArticleBody = data.ArticleBody

	return s
}

// BreadcrumbListSchema is a schema.org BreadcrumbList.
type BreadcrumbListSchema struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	Name            string     `json:"name"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is one entry of a BreadcrumbList. Position is rendered as a string.
type ListItem struct {
	Type     string   `json:"@type"`
	Position string   `json:"position"`
	Item     ItemLink `json:"item"`
}

// ItemLink is the page a ListItem points to.
type ItemLink struct {
	ID   string `json:"@id"`
	Name string `json:"name"`
}

// NewBreadcrumbSchema builds a BreadcrumbList from data.Breadcrumbs,
// preserving order and positions. Returns nil when there are no breadcrumbs.
func NewBreadcrumbSchema(data *ExtractedData) *BreadcrumbListSchema {
	if len(data.Breadcrumbs) == 0 {
		return nil
	}

	items := make([]ListItem, 0, len(data.Breadcrumbs))
	for _, b := range data.Breadcrumbs {
		items = append(items, ListItem{
			Type:     "ListItem",
			Position: strconv.Itoa(b.Position),
			Item:     ItemLink{ID: b.URL, Name: b.Name},
		})
	}

	return &BreadcrumbListSchema{
		Context:         breadcrumbSchemaContext,
		Type:            "BreadcrumbList",
		Name:            data.Title,
		ItemListElement: items,
	}
}

// FAQPageSchema is a schema.org FAQPage.
type FAQPageSchema struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is a schema.org Question with its accepted answer.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is a schema.org Answer.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// NewFAQSchema builds a FAQPage from data.FAQs in input order.
// Returns nil when there are no FAQs.
func NewFAQSchema(data *ExtractedData) *FAQPageSchema {
	if len(data.FAQs) == 0 {
		return nil
	}

	questions := make([]Question, 0, len(data.FAQs))
	for _, faq := range data.FAQs {
		questions = append(questions, Question{
			Type:           "Question",
			Name:           faq.Question,
			AcceptedAnswer: Answer{Type: "Answer", Text: faq.Answer},
		})
	}

	return &FAQPageSchema{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: questions,
	}
}
