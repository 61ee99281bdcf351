package resolve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uscsoc/socplan/internal/directory"
	"github.com/uscsoc/socplan/internal/domain"
	"github.com/uscsoc/socplan/internal/logger"
)

const testTerm = domain.TermID(20253)

func newTestService() Service {
	return NewService(logger.New(), directory.Static{Depts: domain.Directory{
		"CSCI": "Computer Science",
		"MATH": "Mathematics",
		"EE":   "Electrical Engineering",
	}})
}

func TestDepartment_ExactCode(t *testing.T) {
	s := newTestService()

	for _, input := range []string{"CSCI", "csci", " Csci "} {
		res, err := s.Department(context.Background(), input, testTerm)
		require.NoError(t, err, input)
		assert.Equal(t, "CSCI", res.Code, input)
		assert.Equal(t, MatchExact, res.Kind, input)
	}
}

func TestDepartment_ExactName(t *testing.T) {
	s := newTestService()

	res, err := s.Department(context.Background(), "computer science", testTerm)
	require.NoError(t, err)
	assert.Equal(t, "CSCI", res.Code)
	assert.Equal(t, MatchExact, res.Kind)
}

// Resolving an already-canonical code returns itself with no fuzzy
// flag.
func TestDepartment_Idempotent(t *testing.T) {
	s := newTestService()

	res, err := s.Department(context.Background(), "CSCI", testTerm)
	require.NoError(t, err)

	res2, err := s.Department(context.Background(), res.Code, testTerm)
	require.NoError(t, err)
	assert.Equal(t, res.Code, res2.Code)
	assert.Equal(t, MatchExact, res2.Kind)
}

func TestDepartment_Fuzzy(t *testing.T) {
	s := newTestService()

	tests := []string{"Computr Scienc", "Compute Science", "CSCU", "Mathematic"}
	wants := []string{"CSCI", "CSCI", "CSCI", "MATH"}

	for i, input := range tests {
		res, err := s.Department(context.Background(), input, testTerm)
		require.NoError(t, err, input)
		assert.Equal(t, wants[i], res.Code, input)
		assert.Equal(t, MatchFuzzy, res.Kind, input)
	}
}

func TestDepartment_NotFound(t *testing.T) {
	s := newTestService()

	_, err := s.Department(context.Background(), "zzzzzzzz", testTerm)
	require.Error(t, err)

	var notFound *domain.DepartmentNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCourse(t *testing.T) {
	s := newTestService()

	tests := []struct {
		input  string
		dept   string
		number string
	}{
		{"CSCI 104", "CSCI", "104"},
		{"csci104", "CSCI", "104"},
		{"CSCI0104A", "CSCI", "104A"},
		{"math 225", "MATH", "225"},
		{"  CSCI  104  ", "CSCI", "104"},
	}

	for _, tt := range tests {
		res, number, err := s.Course(context.Background(), tt.input, testTerm)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.dept, res.Code, tt.input)
		assert.Equal(t, tt.number, number, tt.input)
	}
}

func TestCourse_FuzzyDepartment(t *testing.T) {
	s := newTestService()

	res, number, err := s.Course(context.Background(), "CSCU 101", testTerm)
	require.NoError(t, err)
	assert.Equal(t, "CSCI", res.Code)
	assert.Equal(t, MatchFuzzy, res.Kind)
	assert.Equal(t, "101", number)
}

func TestCourse_BadPattern(t *testing.T) {
	s := newTestService()

	for _, input := range []string{"", "104", "C 104", "not a course"} {
		_, _, err := s.Course(context.Background(), input, testTerm)
		require.Error(t, err, input)

		var notFound *domain.CourseNotFoundError
		assert.ErrorAs(t, err, &notFound, input)
	}
}
