package schemagen

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ScrapeRequest asks for a page to be scraped and for the listed schemas to
// be generated from it.
type ScrapeRequest struct {
	URL                string `json:"url" validate:"required,http_url"`
	GenerateArticle    bool   `json:"generateArticle"`
	GenerateBreadcrumb bool   `json:"generateBreadcrumb"`
	GenerateFAQ        bool   `json:"generateFaq"`
}

// Validate returns an EINVALID error listing every problem with the request.
func (r *ScrapeRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errorf(EINVALID, "Invalid request data: %v", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, validationMessage(fe))
	}
	return Errorf(EINVALID, "Invalid request data: %s", strings.Join(msgs, ", "))
}

// Flags returns the schemas requested by r.
func (r *ScrapeRequest) Flags() SchemaFlags {
	return SchemaFlags{
		Article:    r.GenerateArticle,
		Breadcrumb: r.GenerateBreadcrumb,
		FAQ:        r.GenerateFAQ,
	}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "http_url":
		return "Please enter a valid URL"
	default:
		return fe.Field() + " is invalid"
	}
}

// ScrapeResult is the outcome of a successful scrape: the extracted metadata
// and the schemas generated from it.
type ScrapeResult struct {
	ExtractedData *ExtractedData `json:"extractedData"`
	Schemas       Schemas        `json:"schemas"`
}
