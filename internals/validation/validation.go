// Package validation rejects malformed input before it reaches the
// store, reporting one human-readable reason per failing field.
// Normalization (trimming, case rules) happens at the bind boundary,
// before the rules run, so validation results are deterministic.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bookstore-api/internals/apperrors"
)

var (
	validate *validator.Validate
	titler   = cases.Title(language.English)

	digitsPattern   = regexp.MustCompile(`^\d+$`)
	phonePattern    = regexp.MustCompile(`^[+\d][+\d\s\-().]+$`)
	nonAlnumPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

func init() {
	validate = validator.New()

	// Report fields by their json name so messages match the payload.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("isbn_digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("pub_year", func(fl validator.FieldLevel) bool {
		year := fl.Field().Int()
		return year >= 1000 && int(year) <= time.Now().Year()
	})
}

// Struct runs the rules declared in validate tags, returning a
// ValidationError with the first violation per field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return &apperrors.ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s cannot exceed %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s cannot exceed %s", field, fe.Param())
	case "email":
		return "invalid email address provided, please use valid email"
	case "alpha":
		return fmt.Sprintf("%s must contain alphabetic characters only", field)
	case "alphanum":
		return fmt.Sprintf("%s must contain alphanumeric characters only", field)
	case "isbn_digits":
		return "isbn must contain numeric characters only"
	case "phone":
		return "invalid phone number provided"
	case "pub_year":
		return "publication_year must be between 1000 and the current year"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// CheckBookPrice is the cross-field rule a tag cannot express: a
// price of zero is only allowed on a discontinued book.
func CheckBookPrice(price float64, discontinued bool) error {
	if price == 0 && !discontinued {
		return apperrors.NewValidation("price", "price can only be 0 if discontinued")
	}
	return nil
}

// Trim strips surrounding whitespace.
func Trim(s string) string { return strings.TrimSpace(s) }

// TrimPtr trims an optional string, collapsing empty values to nil so
// "" and absent mean the same thing downstream.
func TrimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// TitleCase normalizes titles, series and person names.
func TitleCase(s string) string { return titler.String(s) }

// TitleCasePtr title-cases an optional string in place.
func TitleCasePtr(p *string) *string {
	if p == nil {
		return nil
	}
	t := titler.String(*p)
	return &t
}

// UpperCode upper-cases country and state codes.
func UpperCode(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

// CleanISBN strips hyphens and whitespace from an ISBN.
func CleanISBN(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// CleanPostcode keeps alphanumeric characters only and upper-cases.
func CleanPostcode(s string) string {
	return strings.ToUpper(nonAlnumPattern.ReplaceAllString(s, ""))
}
