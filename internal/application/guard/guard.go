// Package guard validates free-text input before it reaches persistence.
// The checks are heuristic substring scans, not parsers: false positives and
// negatives are an accepted tradeoff of the best-effort design.
package guard

import (
	"regexp"

	"issuehub/internal/shared/errors"
)

var (
	scriptPattern = regexp.MustCompile(`(?i)<\s*script`)
	emailPattern  = regexp.MustCompile(`\b[\w.%+-]+@[\w.-]+\.[A-Za-z]{2,}\b`)
	// 10 digits grouped 3-3-4 with optional separators.
	phonePattern = regexp.MustCompile(`\b\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`)
)

// ValidateText rejects values containing a script-opening marker or a
// PII-shaped substring (email address or phone number). A nil value is always
// valid. The script check runs first; the first match wins.
func ValidateText(field string, value *string) error {
	if value == nil {
		return nil
	}
	if scriptPattern.MatchString(*value) {
		return errors.NewValidationError(field + " contains disallowed script content")
	}
	if emailPattern.MatchString(*value) || phonePattern.MatchString(*value) {
		return errors.NewValidationError(field + " contains possible PII")
	}
	return nil
}
