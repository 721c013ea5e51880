package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	MinNameLength = 2
	MaxNameLength = 40
)

// Letter-only tokens joined by exactly one space, apostrophe or hyphen.
var namePattern = regexp.MustCompile(`^\p{L}+(?:[ '\-]\p{L}+)*$`)

// ParseName trims raw and returns it if it is an acceptable name.
// Length is counted in runes so that names like "Ayşe" count as 4.
func ParseName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(name)
	if n < MinNameLength || n > MaxNameLength {
		return "", ErrInvalidName
	}
	if !namePattern.MatchString(name) {
		return "", ErrInvalidName
	}
	return name, nil
}
