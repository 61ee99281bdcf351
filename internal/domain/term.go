package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TermID encodes an academic term as YYYYS, where S is the semester
// digit (e.g. 20253 = Fall 2025).
type TermID int

const (
	SemesterSpring = 1
	SemesterSummer = 2
	SemesterFall   = 3
)

var semesterCodes = map[string]int{
	"spring": SemesterSpring,
	"summer": SemesterSummer,
	"fall":   SemesterFall,
}

var semesterNames = map[int]string{
	SemesterSpring: "Spring",
	SemesterSummer: "Summer",
	SemesterFall:   "Fall",
}

// ParseTerm normalizes a term given as a 5-digit code ("20253") or a
// natural name ("Fall 2025", case-insensitive). An empty input resolves
// to the next registration term relative to the current date.
func ParseTerm(input string) (TermID, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return NextTerm(time.Now()), nil
	}

	if len(input) == 5 {
		if n, err := strconv.Atoi(input); err == nil {
			if s := n % 10; s < SemesterSpring || s > SemesterFall {
				return 0, &InvalidTermError{Input: input}
			}
			return TermID(n), nil
		}
	}

	parts := strings.Fields(input)
	if len(parts) == 2 && len(parts[1]) == 4 {
		semester, ok := semesterCodes[strings.ToLower(parts[0])]
		year, err := strconv.Atoi(parts[1])
		if ok && err == nil {
			return TermID(year*10 + semester), nil
		}
	}

	return 0, &InvalidTermError{Input: input}
}

// NextTerm returns the term registration is typically open for at the
// given date: Sep-Dec point at Spring of next year, January at Spring
// of the same year, and Feb-Aug at Fall of the same year.
func NextTerm(now time.Time) TermID {
	year := now.Year()
	if now.Month() >= time.September {
		year++
	}

	semester := SemesterSpring
	if now.Month() >= time.February && now.Month() <= time.August {
		semester = SemesterFall
	}

	return TermID(year*10 + semester)
}

// Year returns the 4-digit year portion of the term.
func (t TermID) Year() int { return int(t) / 10 }

// Semester returns the semester digit of the term.
func (t TermID) Semester() int { return int(t) % 10 }

func (t TermID) String() string { return strconv.Itoa(int(t)) }

// Name renders the term in its natural form, e.g. "Fall 2025".
func (t TermID) Name() string {
	name, ok := semesterNames[t.Semester()]
	if !ok {
		return t.String()
	}
	return fmt.Sprintf("%s %d", name, t.Year())
}
