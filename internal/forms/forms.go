// Package forms holds the submission payloads for the booking directory and
// their field validation rules. Validation collects every failing field but a
// submission is reported to the user by its first failure only.
package forms

import (
	"net/url"
	"regexp"
)

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// FieldError attributes a validation message to a single submitted field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is the full set of field failures for one submission.
type ValidationError struct {
	FieldErrors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.FieldErrors) == 0 {
		return "invalid submission"
	}
	first := e.FieldErrors[0]
	return first.Field + ": " + first.Message
}

// First returns the failure surfaced to the user.
func (e *ValidationError) First() FieldError {
	return e.FieldErrors[0]
}

type errorCollector struct {
	fieldErrors []FieldError
}

func (c *errorCollector) add(field, message string) {
	c.fieldErrors = append(c.fieldErrors, FieldError{Field: field, Message: message})
}

func (c *errorCollector) result() *ValidationError {
	if len(c.fieldErrors) == 0 {
		return nil
	}
	return &ValidationError{FieldErrors: c.fieldErrors}
}

func (c *errorCollector) checkRequired(field, value string) {
	if value == "" {
		c.add(field, "This field is required.")
	}
}

func (c *errorCollector) checkGenres(field string, genres []string) {
	if len(genres) == 0 {
		c.add(field, "At least one genre is required.")
		return
	}
	for _, genre := range genres {
		if !IsValidGenre(genre) {
			c.add(field, "'"+genre+"' is not a valid genre.")
			return
		}
	}
}

func (c *errorCollector) checkState(field, state string) {
	if state == "" {
		c.add(field, "This field is required.")
		return
	}
	if !IsValidState(state) {
		c.add(field, "'"+state+"' is not a valid state.")
	}
}

// checkPhone accepts NNN-NNN-NNNN or empty.
func (c *errorCollector) checkPhone(field, phone string) {
	if phone == "" {
		return
	}
	if !phonePattern.MatchString(phone) {
		c.add(field, "Phone number must be in the format 123-456-7890.")
	}
}

// checkURL accepts a syntactically valid absolute URL or empty.
func (c *errorCollector) checkURL(field, link string) {
	if link == "" {
		return
	}
	parsed, err := url.Parse(link)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		c.add(field, "Invalid URL.")
	}
}
