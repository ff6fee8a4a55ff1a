package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Package-level validator used by Validate.
var validate *validator.Validate

// RichParamSources lists the change context fields a rich parameter can
// read from.
var RichParamSources = []string{"repo", "branch", "change", "patchset", "url", "gitSshUrl", "changeRef"}

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("rich_param_source", validateRichParamSource); err != nil {
		panic(fmt.Errorf("register validator rich_param_source: %w", err))
	}
}

// validateRichParamSource implements the "rich_param_source" tag.
func validateRichParamSource(fl validator.FieldLevel) bool {
	return slices.Contains(RichParamSources, fl.Field().String())
}

// Validate checks a resolved configuration for values the web UI cannot use.
// Resolution itself never fails; this is a lint for operators.
func Validate(cfg *Configuration) error {
	if cfg == nil {
		return errors.New("configuration is nil")
	}
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// UnknownKeys returns the keys the resolver never reads, in input order.
// Names are compared case-insensitively, as gerrit.config does.
func UnknownKeys(keys []string) []string {
	var unknown []string
	for _, key := range keys {
		if !slices.ContainsFunc(KnownKeys, func(known string) bool { return strings.EqualFold(known, key) }) {
			unknown = append(unknown, key)
		}
	}
	return unknown
}

// formatValidationError renders go-playground/validator errors as concise, user-facing text.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	errorMessages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		errorMessages = append(errorMessages, formatFieldError(fieldError))
	}

	return fmt.Errorf("configuration validation failed:\n  - %s",
		strings.Join(errorMessages, "\n  - "))
}

// formatFieldError creates user-friendly error messages for field validation failures
func formatFieldError(fieldError validator.FieldError) string {
	fieldName := fieldPath(fieldError)
	tag := fieldError.Tag()
	param := fieldError.Param()
	value := fieldError.Value()

	switch tag {
	case "required":
		return fmt.Sprintf("'%s' is required", fieldName)
	case "url":
		return fmt.Sprintf("'%s' must be a valid URL, got '%v'", fieldName, value)
	case "min":
		return fmt.Sprintf("'%s' must be at least %s, got '%v'", fieldName, param, value)
	case "oneof":
		return fmt.Sprintf("'%s' must be one of [%s], got '%v'", fieldName, param, value)
	case "rich_param_source":
		return fmt.Sprintf("'%s' must be one of [%s], got '%v'", fieldName, strings.Join(RichParamSources, " "), value)
	default:
		return fmt.Sprintf("'%s' failed validation '%s', got '%v'", fieldName, tag, value)
	}
}

// fieldPath drops the root struct name from the validator namespace, so
// "Configuration.RichParams[2].From" becomes "RichParams[2].From".
func fieldPath(fieldError validator.FieldError) string {
	ns := fieldError.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fieldError.Field()
}
