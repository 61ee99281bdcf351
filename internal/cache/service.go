package cache

import (
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/uscsoc/socplan/internal/domain"
	"github.com/uscsoc/socplan/internal/resolve"
)

// Service is the term-scoped course data cache. Tables accumulate
// across terms and are filtered by the active term at query time; a
// (dept, term) pair is fetched from the source at most once per
// lifetime.
//
// One Service instance belongs to one session. It takes no locks and
// must not be shared across concurrent sessions without external
// synchronization.
type Service interface {
	Retrieve(ctx context.Context, dept string) error
	GetCourses(ctx context.Context, deptText string) (string, error)
	GetSections(ctx context.Context, courseText string) (string, error)
	IsValidSection(id string) bool
	SectionData(id string) (domain.Section, error)
	SectionsData(ids []string) ([]domain.Section, error)
	ListDepartments(ctx context.Context) (string, error)
	UpdateTerm(term domain.TermID)
	Term() domain.TermID
	WarmAll(ctx context.Context) (domain.Statistics, error)
}

type service struct {
	log       zerolog.Logger
	resolver  resolve.Service
	directory domain.DirectoryProvider
	source    domain.CourseSource

	term     domain.TermID
	courses  map[domain.TermID]map[string][]domain.Course
	sections map[domain.TermID]map[string][]domain.Section
	byID     map[domain.TermID]map[string]domain.Section
	fetched  map[string]struct{}
}

func NewService(log zerolog.Logger, resolver resolve.Service, directory domain.DirectoryProvider, source domain.CourseSource, term domain.TermID) Service {
	return &service{
		log:       log.With().Str("module", "cache").Logger(),
		resolver:  resolver,
		directory: directory,
		source:    source,
		term:      term,
		courses:   make(map[domain.TermID]map[string][]domain.Course),
		sections:  make(map[domain.TermID]map[string][]domain.Section),
		byID:      make(map[domain.TermID]map[string]domain.Section),
		fetched:   make(map[string]struct{}),
	}
}

// Retrieve loads one department's rows for the active term. Already
// fetched (dept, term) pairs are a no-op, so the external source sees
// at most one round trip per pair.
func (s *service) Retrieve(ctx context.Context, dept string) error {
	key := fmt.Sprintf("%s_%s", dept, s.term)
	if _, ok := s.fetched[key]; ok {
		return nil
	}

	courses, sections, err := s.source.Classes(ctx, dept, s.term)
	if err != nil {
		return errors.Wrapf(err, "failed to retrieve %s for term %s", dept, s.term)
	}

	if s.courses[s.term] == nil {
		s.courses[s.term] = make(map[string][]domain.Course)
		s.sections[s.term] = make(map[string][]domain.Section)
		s.byID[s.term] = make(map[string]domain.Section)
	}

	s.courses[s.term][dept] = append(s.courses[s.term][dept], courses...)
	s.sections[s.term][dept] = append(s.sections[s.term][dept], sections...)
	for _, section := range sections {
		s.byID[s.term][section.ID] = section
	}
	s.fetched[key] = struct{}{}

	s.log.Info().
		Str("dept", dept).
		Str("term", s.term.String()).
		Int("courses", len(courses)).
		Int("sections", len(sections)).
		Msg("Department retrieved")
	return nil
}

// GetCourses resolves a loose department string, retrieves the
// department if needed, and renders its courses for the active term as
// CSV. A fuzzy resolution is surfaced as a caveat line, never silently
// substituted.
func (s *service) GetCourses(ctx context.Context, deptText string) (string, error) {
	res, err := s.resolver.Department(ctx, deptText, s.term)
	if err != nil {
		return "", err
	}

	if err := s.Retrieve(ctx, res.Code); err != nil {
		return "", err
	}

	rows := append([]domain.Course{}, s.courses[s.term][res.Code]...)
	if len(rows) == 0 {
		return fmt.Sprintf("(no courses found for %s in %s)", res.Code, s.term.Name()), nil
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })

	var b strings.Builder
	s.writeCaveat(&b, deptText, res)

	w := csv.NewWriter(&b)
	w.Write([]string{"code", "title", "description", "units"})
	for _, c := range rows {
		w.Write([]string{c.Code, c.Title, c.Description, strconv.Itoa(c.Units)})
	}
	w.Flush()

	return b.String(), nil
}

// GetSections resolves a loose course string, retrieves its department
// if needed, and renders the course's lecture sections for the active
// term as CSV. No matching rows is a course-not-found failure, distinct
// from an unresolvable department prefix.
func (s *service) GetSections(ctx context.Context, courseText string) (string, error) {
	res, number, err := s.resolver.Course(ctx, courseText, s.term)
	if err != nil {
		return "", err
	}

	if err := s.Retrieve(ctx, res.Code); err != nil {
		return "", err
	}

	code := fmt.Sprintf("%s %s", res.Code, number)
	rows := []domain.Section{}
	for _, section := range s.sections[s.term][res.Code] {
		if section.Code == code {
			rows = append(rows, section)
		}
	}

	if len(rows) == 0 {
		return "", &domain.CourseNotFoundError{Course: courseText}
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })

	var b strings.Builder
	s.writeCaveat(&b, courseText, res)

	w := csv.NewWriter(&b)
	w.Write([]string{"title", "instructor", "location", "start_time", "end_time", "day", "spaces_left", "number_registered", "units"})
	for _, row := range rows {
		w.Write([]string{
			row.Title,
			row.Instructor,
			row.Location,
			row.StartTime,
			row.EndTime,
			strings.Join(row.Days, ", "),
			strconv.Itoa(row.SpacesLeft()),
			strconv.Itoa(row.NumberRegistered),
			strconv.Itoa(row.Units),
		})
	}
	w.Flush()

	return b.String(), nil
}

func (s *service) writeCaveat(b *strings.Builder, input string, res resolve.Resolution) {
	if res.Kind != resolve.MatchFuzzy {
		return
	}
	fmt.Fprintf(b, "note: interpreted %q as %s\n", input, res.Code)
}

// IsValidSection reports whether a section id is present in the active
// term's table. A false answer can simply mean the owning department
// has not been retrieved yet.
func (s *service) IsValidSection(id string) bool {
	_, ok := s.byID[s.term][id]
	return ok
}

func (s *service) SectionData(id string) (domain.Section, error) {
	section, ok := s.byID[s.term][id]
	if !ok {
		return domain.Section{}, &domain.SectionNotFoundError{Section: id}
	}
	return section, nil
}

// SectionsData fetches rows for all ids, failing on the first absent
// one.
func (s *service) SectionsData(ids []string) ([]domain.Section, error) {
	rows := make([]domain.Section, 0, len(ids))
	for _, id := range ids {
		section, err := s.SectionData(id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, section)
	}
	return rows, nil
}

// ListDepartments renders the active term's department directory, one
// "CODE: Name" line per department.
func (s *service) ListDepartments(ctx context.Context) (string, error) {
	dir, err := s.directory.Directory(ctx, s.term)
	if err != nil {
		return "", err
	}

	codes := make([]string, 0, len(dir))
	for code := range dir {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	lines := make([]string, 0, len(codes))
	for _, code := range codes {
		lines = append(lines, fmt.Sprintf("%s: %s", code, dir[code]))
	}

	return strings.Join(lines, "\n"), nil
}

// UpdateTerm switches the active-term pointer. Tables already fetched
// for other terms stay queryable if the caller switches back.
func (s *service) UpdateTerm(term domain.TermID) {
	s.term = term
}

func (s *service) Term() domain.TermID {
	return s.term
}

// WarmAll retrieves every department in the directory sequentially,
// best effort: a single department's failure is logged and the loop
// continues.
func (s *service) WarmAll(ctx context.Context) (domain.Statistics, error) {
	dir, err := s.directory.Directory(ctx, s.term)
	if err != nil {
		return domain.Statistics{}, errors.Wrap(err, "failed to load department directory")
	}

	codes := make([]string, 0, len(dir))
	for code := range dir {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	stats := domain.Statistics{Term: s.term, Departments: len(codes)}
	for _, code := range codes {
		if err := s.Retrieve(ctx, code); err != nil {
			s.log.Warn().Err(err).Str("dept", code).Msg("failed to retrieve department")
			stats.Failures++
		}
	}

	for _, rows := range s.courses[s.term] {
		stats.Courses += len(rows)
	}
	for _, rows := range s.sections[s.term] {
		stats.Sections += len(rows)
	}

	return stats, nil
}
