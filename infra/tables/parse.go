package tables

import (
	"strconv"
	"strings"
)

// ParseCount parses a non-negative integer field. Thousands separators and
// surrounding blanks are ignored; blank, negative or non-numeric input yields 0.
func ParseCount(s string) int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseLevel parses a relic requirement. Only a plain run of ASCII digits
// counts; signs, separators and anything else yield 0.
func ParseLevel(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
