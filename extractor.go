package schemagen

// Default image dimensions used when the page markup does not declare them.
const (
	DefaultImageWidth  = 940
	DefaultImageHeight = 564
)

// UntitledTitle is the title of a page with no usable title source.
const UntitledTitle = "Untitled"

// ExtractedData holds the editorial metadata extracted from a single page.
// Optional fields are left at their zero value when the page does not provide
// them and are omitted from JSON.
type ExtractedData struct {
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Author         string       `json:"author,omitempty"`
	DatePublished  string       `json:"datePublished,omitempty"`
	DateModified   string       `json:"dateModified,omitempty"`
	Image          *Image       `json:"image,omitempty"`
	ArticleSection string       `json:"articleSection,omitempty"`
	ArticleBody    string       `json:"articleBody,omitempty"`
	Breadcrumbs    []Breadcrumb `json:"breadcrumbs"`
	FAQs           []FAQ        `json:"faqs"`
	PublisherName  string       `json:"publisherName,omitempty"`
	PublisherLogo  string       `json:"publisherLogo,omitempty"`
	AuthorURL      string       `json:"authorUrl,omitempty"`
}

// Image is the hero image of a page.
type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Breadcrumb is one step of a navigational trail. Position is 1-based.
type Breadcrumb struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// FAQ is a question and answer pair found on a page.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Extractor turns raw HTML into normalized page metadata.
type Extractor interface {
	// Extract parses html and returns the page metadata. Relative URLs found
	// in the markup are resolved against sourceURL.
	// Sparse or malformed documents degrade to defaults instead of failing;
	// an error is returned only when sourceURL is not an absolute URL.
	Extract(html string, sourceURL string) (*ExtractedData, error)
}
