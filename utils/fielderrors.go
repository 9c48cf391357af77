package utils

import (
	"sort"
	"strings"
)

// FieldErrors collects per-field validation failures so a form can show
// each message next to the field that caused it.
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, message string) {
	if _, exists := fe[field]; !exists {
		fe[field] = message
	}
}

func (fe FieldErrors) HasErrors() bool {
	return len(fe) > 0
}

// Error joins the messages in field order so FieldErrors can travel as a
// plain error when a caller doesn't care which field failed.
func (fe FieldErrors) Error() string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+fe[f])
	}
	return strings.Join(parts, "; ")
}
