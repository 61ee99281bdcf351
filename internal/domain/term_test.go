package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTerm_Code(t *testing.T) {
	for _, code := range []string{"20251", "20252", "20253", "19993"} {
		term, err := ParseTerm(code)
		require.NoError(t, err)
		assert.Equal(t, code, term.String())
	}
}

func TestParseTerm_Name(t *testing.T) {
	tests := []struct {
		input string
		want  TermID
	}{
		{"Spring 2025", 20251},
		{"Summer 2025", 20252},
		{"Fall 2025", 20253},
		{"fall 2025", 20253},
		{"SPRING 2026", 20261},
	}

	for _, tt := range tests {
		term, err := ParseTerm(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, term, tt.input)
	}
}

func TestParseTerm_Invalid(t *testing.T) {
	for _, input := range []string{"Winter 2025", "Fall 25", "2025", "202530", "20254", "20250", "fall2025", "next term"} {
		_, err := ParseTerm(input)
		require.Error(t, err, input)

		var invalid *InvalidTermError
		assert.ErrorAs(t, err, &invalid, input)
	}
}

func TestParseTerm_EmptyUsesNextTerm(t *testing.T) {
	term, err := ParseTerm("")
	require.NoError(t, err)
	assert.Equal(t, NextTerm(time.Now()), term)
}

func TestNextTerm(t *testing.T) {
	tests := []struct {
		month time.Month
		want  TermID
	}{
		{time.January, 20251},
		{time.February, 20253},
		{time.May, 20253},
		{time.August, 20253},
		{time.September, 20261},
		{time.December, 20261},
	}

	for _, tt := range tests {
		now := time.Date(2025, tt.month, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tt.want, NextTerm(now), tt.month.String())
	}
}

func TestTermID_Name(t *testing.T) {
	assert.Equal(t, "Fall 2025", TermID(20253).Name())
	assert.Equal(t, "Spring 2026", TermID(20261).Name())
	assert.Equal(t, "Summer 2024", TermID(20242).Name())
}
