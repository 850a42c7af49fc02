package grading_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/grading"
)

func TestIsBlended(t *testing.T) {
	cases := []struct {
		label string
		want  bool
	}{
		{"Discrete Mathematics (21MA305)", false},
		{"X (21IT321)", true},
		{"X (21CSE321)", false},
		{"Data Structures (21CS321)", true},
		{"Physics (25PH121)", true},
		{"Physics (25PH111)", false},
		{"Web Lab (25IT42)", true},
		{"Single digit (21IT2)", false},
		{"Lowercase (21it321)", true},
		{"One letter (21M321)", true},
		{"Four letters (21MECH321)", false},
		{"No code", false},
		{"Code not trailing (21IT321) Lab", false},
		{"Trailing space (21IT321) ", true},
		{"Digits only (21321)", false},
		{"", false},
	}
	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, grading.IsBlended(tc.label))
		})
	}
}

// Department segments of every length from 1 to 5 letters, with and without
// the blended type digit.
func TestIsBlended_DepartmentLengthMatrix(t *testing.T) {
	depts := []string{"M", "IT", "CSE", "MECH", "CIVIL"}
	for _, dept := range depts {
		blendedCode := "21" + dept + "321"
		plainCode := "21" + dept + "305"

		assert.Equal(t, len(dept) < 3, grading.IsBlended("S ("+blendedCode+")"), blendedCode)
		assert.False(t, grading.IsBlended("S ("+plainCode+")"), plainCode)
	}
}

func TestCourseCodeAndDisplayLabel(t *testing.T) {
	code, ok := grading.CourseCode("Discrete Mathematics (21MA305)")
	assert.True(t, ok)
	assert.Equal(t, "21MA305", code)

	_, ok = grading.CourseCode("Discrete Mathematics")
	assert.False(t, ok)

	assert.Equal(t, "Cloud Lab (21IT321) (Blended)", grading.DisplayLabel("Cloud Lab (21IT321)"))
	assert.Equal(t, "Calculus (21MA305)", grading.DisplayLabel("Calculus (21MA305)"))
}
