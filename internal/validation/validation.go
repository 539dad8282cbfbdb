// Package validation holds the input rules for project fields. Every function
// is pure: it never touches the store and accepts any string, including the
// empty one, without panicking.
package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"employee-management/internal/models"
)

const maxPersonNameLen = 60

var (
	idPattern = regexp.MustCompile(`^[1-9][0-9]*$`)

	// one word of 3-60 letters, or up to five words where the first has 3-30
	// letters and the others 2-30, separated by single spaces.
	namePattern = regexp.MustCompile(`^\s*[a-zA-Z]{3,60}\s*$|^\s*[a-zA-Z]{3,30}( [a-zA-Z]{2,30}){1,4}\s*$`)

	// at most 300 characters on one line with a run of 10 letters somewhere.
	descriptionPattern = regexp.MustCompile(`^.{0,145}[A-Za-z]{10}.{0,145}$`)

	personNamePattern = regexp.MustCompile(`^[a-zA-Z]{2,}(?:(?:\. |[ .'-])[a-zA-Z]+)*\.?$`)
)

// ValidateID parses a positive project id. Zero, negative numbers, leading
// zeros and values that overflow int are rejected.
func ValidateID(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if !idPattern.MatchString(s) {
		return 0, false
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return id, true
}

// Text validators reject invalid UTF-8 up front: the regexps would read the
// bad bytes as U+FFFD and the store refuses them.

func IsValidName(raw string) bool {
	return utf8.ValidString(raw) && namePattern.MatchString(raw)
}

// ValidateName returns the trimmed name if it is valid.
func ValidateName(raw string) (string, bool) {
	if !IsValidName(raw) {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

func IsValidDescription(raw string) bool {
	return utf8.ValidString(raw) && descriptionPattern.MatchString(raw)
}

// ValidateDescription returns the trimmed description if it is valid.
func ValidateDescription(raw string) (string, bool) {
	if !IsValidDescription(raw) {
		return "", false
	}
	return strings.TrimSpace(raw), true
}

// IsValidPersonName accepts names such as "Ravi", "mary-jane o'neil" or
// "Dr. Kumar": letter words joined by a space, period, apostrophe or hyphen.
func IsValidPersonName(raw string) bool {
	if !utf8.ValidString(raw) {
		return false
	}
	s := strings.TrimSpace(raw)
	if len(s) > maxPersonNameLen {
		return false
	}
	return personNamePattern.MatchString(s)
}

// ValidateManager returns the trimmed, lower-cased manager name if it is valid.
func ValidateManager(raw string) (string, bool) {
	if !IsValidPersonName(raw) {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(raw)), true
}

func ValidateStatus(raw string) (models.ProjectStatus, bool) {
	return models.ParseProjectStatus(raw)
}

// ParseSelection parses a comma separated list of 1-based positions into a
// list of n items, e.g. "1, 3". It returns zero-based indexes in input order
// with duplicates removed. Blank input selects nothing; a single bad entry
// rejects the whole input.
func ParseSelection(raw string, n int) ([]int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return []int{}, true
	}

	seen := make(map[int]bool)
	out := make([]int, 0)
	for _, part := range strings.Split(s, ",") {
		pos, ok := ValidateID(part)
		if !ok || pos > n {
			return nil, false
		}
		if seen[pos] {
			continue
		}
		seen[pos] = true
		out = append(out, pos-1)
	}
	return out, true
}
