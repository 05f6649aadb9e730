package controllers

import (
	"regexp"
	"strings"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	urlPattern   = regexp.MustCompile(`^https?://`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

type requiredField struct {
	name  string
	value string
}

// missingFields returns the names of required fields that are empty after trimming.
func missingFields(fields []requiredField) []string {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}
