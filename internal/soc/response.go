package soc

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// The upstream feed is loosely typed: single children are emitted as
// objects instead of one-element arrays, numbers arrive as strings or
// bare literals, and a few text fields degrade to empty objects. The
// types here absorb all of that at the decode boundary so the rest of
// the module sees stable shapes.

type classesResponse struct {
	OfferedCourses struct {
		Course courseList `json:"course"`
	} `json:"OfferedCourses"`
}

type offeredCourse struct {
	CourseData courseData `json:"CourseData"`
}

type courseData struct {
	Prefix       string      `json:"prefix"`
	Number       string      `json:"number"`
	Sequence     flexString  `json:"sequence"`
	Title        string      `json:"title"`
	Description  flexString  `json:"description"`
	Units        string      `json:"units"`
	SectionTitle flexString  `json:"section_title"`
	SectionData  sectionList `json:"SectionData"`
}

type sectionData struct {
	ID               flexString     `json:"id"`
	Type             string         `json:"type"`
	Instructor       instructorData `json:"instructor"`
	Location         flexString     `json:"location"`
	StartTime        flexString     `json:"start_time"`
	EndTime          flexString     `json:"end_time"`
	Day              flexString     `json:"day"`
	SpacesAvailable  flexString     `json:"spaces_available"`
	NumberRegistered flexString     `json:"number_registered"`
}

type courseList []offeredCourse

func (l *courseList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, (*[]offeredCourse)(l))
	}
	one := offeredCourse{}
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*l = courseList{one}
	return nil
}

type sectionList []sectionData

func (l *sectionList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		return json.Unmarshal(b, (*[]sectionData)(l))
	}
	one := sectionData{}
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*l = sectionList{one}
	return nil
}

// flexString accepts a string, a bare number, null, or structured
// noise, collapsing everything to a string.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*f = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
	case b[0] == '{' || b[0] == '[':
		*f = ""
	default:
		*f = flexString(b)
	}
	return nil
}

// Int parses the value as an integer, returning 0 for anything
// non-numeric.
func (f flexString) Int() int {
	n, err := strconv.Atoi(string(f))
	if err != nil {
		return 0
	}
	return n
}

// instructorData is the tagged variant for the instructor payload:
// absent, a single object, or a list of objects.
type instructorData struct {
	raw json.RawMessage
}

func (i *instructorData) UnmarshalJSON(b []byte) error {
	i.raw = append(i.raw[:0], b...)
	return nil
}

type instructorEntry struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// names resolves the payload into first/last name pairs. A nil return
// with no error means no instructor was listed.
func (i instructorData) names() ([][2]string, error) {
	b := bytes.TrimSpace(i.raw)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil, nil
	}

	if b[0] == '[' {
		entries := []instructorEntry{}
		if err := json.Unmarshal(b, &entries); err != nil {
			return nil, err
		}
		names := make([][2]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, [2]string{e.FirstName, e.LastName})
		}
		return names, nil
	}

	one := instructorEntry{}
	if err := json.Unmarshal(b, &one); err != nil {
		return nil, err
	}
	return [][2]string{{one.FirstName, one.LastName}}, nil
}

var unitsRe = regexp.MustCompile(`^(\d+)`)

// parseUnits reads the leading integer of a units field such as "4.0"
// or "2.0, 4.0".
func parseUnits(units string) int {
	m := unitsRe.FindStringSubmatch(strings.TrimSpace(units))
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
