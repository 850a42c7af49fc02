package grading

import (
	"regexp"
	"strings"
)

var (
	// "Discrete Mathematics (21MA305)" -> "21MA305"
	courseCodePattern = regexp.MustCompile(`\(([^)]+)\)$`)
	// department letters followed by the numeric run: "MA", "305"
	codeBodyPattern = regexp.MustCompile(`([A-Za-z]+)(\d+)`)
)

const (
	maxBlendedDeptLetters = 2
	blendedTypeDigit      = '2'
	blendedSuffix         = " (Blended)"
)

// CourseCode returns the code in the label's trailing parenthetical.
func CourseCode(label string) (string, bool) {
	m := courseCodePattern.FindStringSubmatch(strings.TrimSpace(label))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// IsBlended reports whether a subject label carries a blended-delivery course
// code: a department segment shorter than three letters whose numeric run has
// '2' as its second digit (21IT321). Three-letter departments are never
// blended.
func IsBlended(label string) bool {
	code, ok := CourseCode(label)
	if !ok {
		return false
	}
	m := codeBodyPattern.FindStringSubmatch(code)
	if m == nil {
		return false
	}
	dept, digits := m[1], m[2]
	if len(dept) > maxBlendedDeptLetters {
		return false
	}
	return len(digits) >= 2 && digits[1] == blendedTypeDigit
}

// DisplayLabel appends the blended marker used on badges and reports.
func DisplayLabel(label string) string {
	if IsBlended(label) {
		return label + blendedSuffix
	}
	return label
}
