package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uscsoc/socplan/internal/cache"
	"github.com/uscsoc/socplan/internal/directory"
	"github.com/uscsoc/socplan/internal/domain"
	"github.com/uscsoc/socplan/internal/logger"
	"github.com/uscsoc/socplan/internal/resolve"
)

const testTerm = domain.TermID(20253)

func section(id, start, end string, days ...string) domain.Section {
	return domain.Section{
		ID:               id,
		Code:             "CSCI 104",
		Dept:             "CSCI",
		Term:             testTerm,
		Title:            "Data Structures and Object Oriented Design",
		Instructor:       "Mark Redekopp",
		Location:         "SGM123",
		StartTime:        start,
		EndTime:          end,
		Days:             days,
		SpacesAvailable:  60,
		NumberRegistered: 40,
		Units:            4,
	}
}

type stubSource struct {
	sections []domain.Section
}

func (s *stubSource) Classes(_ context.Context, dept string, term domain.TermID) ([]domain.Course, []domain.Section, error) {
	return nil, s.sections, nil
}

func newTestService(t *testing.T, sections ...domain.Section) Service {
	t.Helper()
	log := logger.New()
	dir := directory.Static{Depts: domain.Directory{"CSCI": "Computer Science"}}
	c := cache.NewService(log, resolve.NewService(log, dir), dir, &stubSource{sections: sections}, testTerm)
	require.NoError(t, c.Retrieve(context.Background(), "CSCI"))
	return NewService(log, c)
}

func TestBuild_Event(t *testing.T) {
	s := newTestService(t, section("29903", "01:00 PM", "01:50 PM", "Mon", "Wed"))

	events, err := s.Build([]string{"29903"})
	require.NoError(t, err)
	require.Len(t, events, 1)

	e := events[0]
	assert.Equal(t, "CSCI 104 - 29903\nMark Redekopp\n@SGM123", e.Label)
	assert.InDelta(t, 13.0, e.StartHour, 0.001)
	assert.InDelta(t, 13.8333, e.EndHour, 0.001)
	assert.Equal(t, []string{"Mon", "Wed"}, e.Days)
	assert.Contains(t, e.Hover, "Data Structures")
	assert.Contains(t, e.Hover, "4 units")
	assert.Contains(t, e.Hover, "Mon, Wed")
	assert.Contains(t, e.Hover, "01:00 PM - 01:50 PM")
}

func TestBuild_TouchingIntervalsDoNotConflict(t *testing.T) {
	s := newTestService(t,
		section("1", "09:00 AM", "10:30 AM", "Mon"),
		section("2", "10:30 AM", "11:00 AM", "Mon"),
	)

	events, err := s.Build([]string{"1", "2"})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestBuild_OverlapConflicts(t *testing.T) {
	s := newTestService(t,
		section("1", "09:00 AM", "10:30 AM", "Mon"),
		section("2", "10:00 AM", "11:00 AM", "Mon"),
	)

	_, err := s.Build([]string{"1", "2"})
	require.Error(t, err)

	var conflict *domain.ScheduleConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "CSCI 104 - 1", conflict.Label1)
	assert.Equal(t, "CSCI 104 - 2", conflict.Label2)
	assert.Contains(t, conflict.Range1, "09:00 AM - 10:30 AM")
	assert.Contains(t, conflict.Range1, "Mon")
	assert.Contains(t, conflict.Range2, "10:00 AM - 11:00 AM")
}

func TestBuild_DisjointDaysDoNotConflict(t *testing.T) {
	s := newTestService(t,
		section("1", "09:00 AM", "10:30 AM", "Mon"),
		section("2", "10:00 AM", "11:00 AM", "Tue"),
	)

	events, err := s.Build([]string{"1", "2"})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestBuild_UnknownSection(t *testing.T) {
	s := newTestService(t, section("1", "09:00 AM", "10:30 AM", "Mon"))

	_, err := s.Build([]string{"99999"})
	require.Error(t, err)

	var notFound *domain.SectionNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestBuild_InvalidTimeIsAnError(t *testing.T) {
	s := newTestService(t, section("1", "TBA", "TBA", "Mon"))

	_, err := s.Build([]string{"1"})
	assert.Error(t, err)
}

func TestAdd_RejectsConflictAndKeepsSelection(t *testing.T) {
	s := newTestService(t,
		section("1", "09:00 AM", "10:30 AM", "Mon"),
		section("2", "10:00 AM", "11:00 AM", "Mon"),
		section("3", "02:00 PM", "03:00 PM", "Mon"),
	)

	selected, err := s.Add("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, selected)

	_, err = s.Add("2")
	require.Error(t, err)

	var conflict *domain.ScheduleConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"1"}, s.Selected())

	selected, err = s.Add("3")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, selected)
}

func TestAdd_BatchAndDuplicates(t *testing.T) {
	s := newTestService(t,
		section("1", "09:00 AM", "10:30 AM", "Mon"),
		section("2", "11:00 AM", "12:00 PM", "Mon"),
	)

	selected, err := s.Add("1, 2, 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, selected)

	events, err := s.Events()
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestRemove(t *testing.T) {
	s := newTestService(t,
		section("1", "09:00 AM", "10:30 AM", "Mon"),
		section("2", "11:00 AM", "12:00 PM", "Mon"),
	)

	_, err := s.Add("1,2")
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, s.Remove("1"))
	assert.Equal(t, []string{"2"}, s.Remove("not-there"))
	assert.Empty(t, s.Remove("2"))
}

func TestSplitIDs(t *testing.T) {
	assert.Equal(t, []string{"1", "2"}, SplitIDs("1,2"))
	assert.Equal(t, []string{"1", "2"}, SplitIDs(" 1 , 2 "))
	assert.Equal(t, []string{"1"}, SplitIDs("1,"))
	assert.Empty(t, SplitIDs(""))
}
