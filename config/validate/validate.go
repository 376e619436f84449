package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

type Kind string

const (
	InvalidField Kind = "InvalidField"
)

// FieldError names the offending field and the rule it broke.
type FieldError struct {
	Kind  Kind
	Field string
	Rule  string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

// Standardized rule helpers

func RuleRequired() string {
	return "is required"
}

func RuleMin(min any, value any) string {
	return fmt.Sprintf("must be at least %v (got %v)", min, value)
}

func RuleOneOf(allowed any, value any) string {
	return fmt.Sprintf("must be one of %v (got %v)", allowed, value)
}

func NewFieldError(field string, rule string) *FieldError {
	return &FieldError{Kind: InvalidField, Field: field, Rule: rule}
}

// Invalid records a failed rule for field and logs it.
func Invalid(v *ValidationErrors, field string, value any, rule string) {
	err := NewFieldError(field, rule)
	LogConfigError(field, value, err)
	v.Add(err)
}

func RequireString(v *ValidationErrors, path string, value string) bool {
	if strings.TrimSpace(value) == "" {
		Invalid(v, path, value, RuleRequired())
		return false
	}
	LogConfigOK(path, value)
	return true
}

func RequireIntMin(v *ValidationErrors, path string, value int, min int) bool {
	if value < min {
		Invalid(v, path, value, RuleMin(min, value))
		return false
	}
	LogConfigOK(path, value)
	return true
}

func RequireOneOf[T comparable](v *ValidationErrors, path string, value T, allowed []T) bool {
	for _, a := range allowed {
		if value == a {
			LogConfigOK(path, value)
			return true
		}
	}
	Invalid(v, path, value, RuleOneOf(allowed, value))
	return false
}

type ValidationErrors struct {
	errors []*FieldError
}

func (v *ValidationErrors) Add(err *FieldError) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

// Fields lists the offending fields in the order they were reported.
func (v *ValidationErrors) Fields() []string {
	out := make([]string, 0, len(v.errors))
	for _, err := range v.errors {
		out = append(out, err.Field)
	}
	return out
}

func (v *ValidationErrors) Has(field string) bool {
	for _, err := range v.errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (v *ValidationErrors) Unwrap() []error {
	out := make([]error, 0, len(v.errors))
	for _, err := range v.errors {
		out = append(out, err)
	}
	return out
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("configuration validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Err returns v as an error, or nil when nothing was reported.
func (v *ValidationErrors) Err() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

// AsFieldError returns the first FieldError wrapped in err.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func LogConfigOK(path string, value any) {
	log.Logger.Debug().
		Str("config", path).
		Interface("value", value).
		Msg("config set")
}

func LogConfigError(path string, value any, err error) {
	log.Logger.Error().
		Str("config", path).
		Interface("value", value).
		Err(err).
		Msg("invalid config value")
}
