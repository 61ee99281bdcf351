package schedule

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/uscsoc/socplan/internal/cache"
	"github.com/uscsoc/socplan/internal/domain"
	"github.com/uscsoc/socplan/internal/format"
)

// Service assembles calendar-ready events from selected section ids and
// maintains the session's running selection. The cache owns the data;
// the planner only validates and formats.
type Service interface {
	Build(ids []string) ([]domain.Event, error)
	Add(csvIDs string) ([]string, error)
	Remove(csvIDs string) []string
	Selected() []string
	Events() ([]domain.Event, error)
}

type service struct {
	log   zerolog.Logger
	cache cache.Service
	ids   []string
}

func NewService(log zerolog.Logger, c cache.Service) Service {
	return &service{
		log:   log.With().Str("module", "schedule").Logger(),
		cache: c,
	}
}

// Build fetches the composite rows for each id and derives events,
// rejecting the whole set if any two of them overlap.
func (s *service) Build(ids []string) ([]domain.Event, error) {
	rows, err := s.cache.SectionsData(ids)
	if err != nil {
		return nil, err
	}

	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		event, err := buildEvent(row)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := checkConflicts(events); err != nil {
		return nil, err
	}

	return events, nil
}

// Add parses a comma-separated id string, appends the new ids, and
// re-runs full conflict detection over the whole updated selection. On
// any failure the previous selection is kept.
func (s *service) Add(csvIDs string) ([]string, error) {
	candidate := append([]string{}, s.ids...)
	for _, id := range SplitIDs(csvIDs) {
		if contains(candidate, id) {
			continue
		}
		candidate = append(candidate, id)
	}

	if _, err := s.Build(candidate); err != nil {
		return nil, err
	}

	s.ids = candidate
	s.log.Debug().Strs("sections", s.ids).Msg("selection updated")
	return s.Selected(), nil
}

// Remove drops the listed ids from the selection. Unknown ids are
// ignored.
func (s *service) Remove(csvIDs string) []string {
	for _, id := range SplitIDs(csvIDs) {
		for i, existing := range s.ids {
			if existing == id {
				s.ids = append(s.ids[:i], s.ids[i+1:]...)
				break
			}
		}
	}
	return s.Selected()
}

func (s *service) Selected() []string {
	return append([]string{}, s.ids...)
}

// Events builds the event set for the current selection.
func (s *service) Events() ([]domain.Event, error) {
	return s.Build(s.ids)
}

// SplitIDs parses a comma-separated section-id string, dropping empty
// entries.
func SplitIDs(csvIDs string) []string {
	ids := []string{}
	for _, id := range strings.Split(csvIDs, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func buildEvent(row domain.Section) (domain.Event, error) {
	start, err := format.TimeToDecimal(row.StartTime)
	if err != nil {
		return domain.Event{}, errors.Wrapf(err, "section %s has no usable start time", row.ID)
	}
	end, err := format.TimeToDecimal(row.EndTime)
	if err != nil {
		return domain.Event{}, errors.Wrapf(err, "section %s has no usable end time", row.ID)
	}

	return domain.Event{
		Label:     fmt.Sprintf("%s - %s\n%s\n@%s", row.Code, row.ID, row.Instructor, row.Location),
		StartHour: start,
		EndHour:   end,
		Days:      append([]string{}, row.Days...),
		Hover: fmt.Sprintf("%s (%d units)\n%s %s - %s",
			row.Title, row.Units, strings.Join(row.Days, ", "), row.StartTime, row.EndTime),
	}, nil
}

// checkConflicts compares every unordered pair of events. Two events
// conflict when their day sets intersect and their half-open hour
// intervals overlap; touching boundaries are not conflicts.
func checkConflicts(events []domain.Event) error {
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			a, b := events[i], events[j]
			if !daysIntersect(a.Days, b.Days) {
				continue
			}
			if a.EndHour <= b.StartHour || b.EndHour <= a.StartHour {
				continue
			}
			return &domain.ScheduleConflictError{
				Label1: labelHead(a.Label),
				Label2: labelHead(b.Label),
				Range1: eventRange(a),
				Range2: eventRange(b),
			}
		}
	}
	return nil
}

func daysIntersect(a, b []string) bool {
	for _, day := range a {
		if contains(b, day) {
			return true
		}
	}
	return false
}

func labelHead(label string) string {
	head, _, _ := strings.Cut(label, "\n")
	return head
}

func eventRange(e domain.Event) string {
	return fmt.Sprintf("%s - %s on %s",
		format.DecimalToTime(e.StartHour), format.DecimalToTime(e.EndHour), strings.Join(e.Days, ", "))
}
