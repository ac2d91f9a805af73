package service

import (
	"errors"
	"fmt"
	"html"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	validate   = newValidator()
	textPolicy = bluemonday.StrictPolicy()
)

// unsafeSchemes are rejected in link URLs.
var unsafeSchemes = map[string]bool{
	"javascript": true,
	"vbscript":   true,
	"data":       true,
}

// newValidator reports field errors under their form names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// collectFieldErrors runs struct validation and records each failure on ve.
func collectFieldErrors(input any, ve *ValidationError) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating input: %w", err)
	}
	for _, fe := range fieldErrs {
		ve.Add(fe.Field(), fieldMessage(fe))
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	default:
		return "Enter a valid value."
	}
}

// containsMarkup reports whether the strict policy would alter s.
// Titles are stored as typed, so this is only used to reject values.
func containsMarkup(s string) bool {
	return html.UnescapeString(textPolicy.Sanitize(s)) != s
}

// cleanCSSClass reduces s to space separated class tokens.
func cleanCSSClass(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// isSafeLink reports whether link can be placed in an href.
func isSafeLink(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}
	return !unsafeSchemes[strings.ToLower(u.Scheme)]
}
