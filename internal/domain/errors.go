package domain

import "fmt"

// InvalidTermError is returned for a term string that is neither a
// 5-digit code nor a "<Season> <Year>" name.
type InvalidTermError struct {
	Input string
}

func (e *InvalidTermError) Error() string {
	return fmt.Sprintf("term %q has an invalid format, expected \"Fall 2025\" or \"20253\"", e.Input)
}

// DepartmentNotFoundError is returned when a department has neither an
// exact nor a sufficiently similar directory match.
type DepartmentNotFoundError struct {
	Dept string
}

func (e *DepartmentNotFoundError) Error() string {
	return fmt.Sprintf("department %q is invalid, expected a department name or code such as \"Computer Science\" or \"CSCI\"", e.Dept)
}

// CourseNotFoundError is returned when a course code cannot be parsed,
// or when the course has no lecture sections in the active term.
type CourseNotFoundError struct {
	Course string
}

func (e *CourseNotFoundError) Error() string {
	return fmt.Sprintf("course %q is invalid, expected a course code such as \"CSCI 100\" or \"CSCI100\"", e.Course)
}

// SectionNotFoundError is returned when a section id is absent from the
// active term's section table. The owning department may simply not
// have been retrieved yet.
type SectionNotFoundError struct {
	Section string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found, it may not be valid until the corresponding department is cached", e.Section)
}

// ScheduleConflictError reports two selected sections that share a
// meeting day and an overlapping time window.
type ScheduleConflictError struct {
	Label1, Label2 string
	Range1, Range2 string
}

func (e *ScheduleConflictError) Error() string {
	return fmt.Sprintf("schedule conflict detected:\nSection 1: %s at %s\nSection 2: %s at %s",
		e.Label1, e.Range1, e.Label2, e.Range2)
}
