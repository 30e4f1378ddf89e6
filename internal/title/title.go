// Package title decides whether document titles are auto-generated
// placeholders and sanitizes titles derived from document content.
package title

import (
	"errors"
	"regexp"
	"strings"
)

// ErrEmptyTitle is returned when a candidate title is empty, or becomes empty
// after illegal characters are stripped.
var ErrEmptyTitle = errors.New("empty title")

var (
	placeholderPattern = regexp.MustCompile(`(?i)^untitled( document)?$`)
	illegalChars       = regexp.MustCompile(`[\\/*?:"<>|]`)
)

// IsPlaceholder reports whether t is an auto-generated Drive title
// ("Untitled" or "Untitled document", case-insensitive, whole string).
func IsPlaceholder(t string) bool {
	return placeholderPattern.MatchString(t)
}

// IsMeaningful reports whether t looks like a human-chosen title: longer
// than five characters after trimming and not a placeholder.
func IsMeaningful(t string) bool {
	return len(strings.TrimSpace(t)) > 5 && !IsPlaceholder(t)
}

// Sanitize bounds candidate to maxLength runes and strips characters that
// are illegal in file names (\ / * ? : " < > |). It returns ErrEmptyTitle
// when the candidate is empty or nothing survives stripping. Truncated
// reports whether the candidate exceeded maxLength.
func Sanitize(candidate string, maxLength int) (clean string, truncated bool, err error) {
	if candidate == "" {
		return "", false, ErrEmptyTitle
	}
	clean = candidate
	if runes := []rune(clean); maxLength > 0 && len(runes) > maxLength {
		clean = string(runes[:maxLength])
		truncated = true
	}
	clean = illegalChars.ReplaceAllString(clean, "")
	if clean == "" {
		return "", truncated, ErrEmptyTitle
	}
	return clean, truncated, nil
}
