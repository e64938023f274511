package helpers

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeCourseCode trims whitespace and upper-cases a course code, e.g.
// " csc101 " -> "CSC101".
func NormalizeCourseCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// NormalizeCourseName trims a course name and renders it in
// word-capitalized form, e.g. "inTRO to COMPUTING" -> "Intro To Computing".
// A cases.Caser is stateful and not safe for concurrent use, so one is
// constructed per call rather than shared at package level.
func NormalizeCourseName(name string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(name)))
}
