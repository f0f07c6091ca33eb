package config

import (
	"fmt"
	"strings"
)

// MaxRecentEntriesLimit bounds recent.maxEntries.
const MaxRecentEntriesLimit = 50

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (ve ValidationError) Error() string {
	if ve.Field == "" {
		return ve.Message
	}
	return fmt.Sprintf("field '%s': %s", ve.Field, ve.Message)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	if len(ve) == 1 {
		return ve[0].Error()
	}

	messages := make([]string, 0, len(ve))
	for _, err := range ve {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(messages, "; "))
}

// HasErrors returns true if there are any validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// Add adds a new validation error
func (ve *ValidationErrors) Add(field, message string, value interface{}) {
	*ve = append(*ve, ValidationError{Field: field, Value: value, Message: message})
}

// IsValidOutputFormat reports whether format names a supported output.
func IsValidOutputFormat(format string) bool {
	switch format {
	case OutputTable, OutputWide, OutputJSON, OutputYAML, OutputName:
		return true
	}
	return strings.HasPrefix(format, OutputGoTemplatePrefix) &&
		len(format) > len(OutputGoTemplatePrefix)
}

// Validate checks the configuration for values the CLI cannot use.
func (c KctxConfig) Validate() error {
	var errs ValidationErrors

	if c.Recent.MaxEntries < 0 || c.Recent.MaxEntries > MaxRecentEntriesLimit {
		errs.Add("recent.maxEntries", fmt.Sprintf("must be between 0 and %d", MaxRecentEntriesLimit), c.Recent.MaxEntries)
	}
	if c.Output.Format != "" && !IsValidOutputFormat(c.Output.Format) {
		errs.Add("output.format", "must be one of table, wide, json, yaml, name or go-template=<template>", c.Output.Format)
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
