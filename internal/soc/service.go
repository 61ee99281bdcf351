package soc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/uscsoc/socplan/internal/domain"
	"github.com/uscsoc/socplan/internal/format"
)

// Service is the client for the schedule-of-classes API. It implements
// domain.CourseSource, serving raw bytes from the on-disk response
// cache before going over the network.
type Service interface {
	domain.CourseSource
}

type service struct {
	log        zerolog.Logger
	baseURL    string
	raw        domain.RawCache
	httpClient *http.Client
}

func NewService(log zerolog.Logger, baseURL string, raw domain.RawCache) Service {
	return &service{
		log:     log.With().Str("module", "soc").Logger(),
		baseURL: baseURL,
		raw:     raw,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Classes fetches one department's offerings for a term and flattens
// the nested payload into course and section rows. Malformed section
// records are logged and skipped so the rest of the department stays
// usable.
func (s *service) Classes(ctx context.Context, dept string, term domain.TermID) ([]domain.Course, []domain.Section, error) {
	body, err := s.fetch(ctx, dept, term)
	if err != nil {
		return nil, nil, err
	}

	resp := &classesResponse{}
	if err := json.Unmarshal(body, resp); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to unmarshal classes response for %s/%s", dept, term)
	}

	courses := []domain.Course{}
	sections := []domain.Section{}
	for _, oc := range resp.OfferedCourses.Course {
		cd := oc.CourseData
		code := fmt.Sprintf("%s %s%s", cd.Prefix, cd.Number, cd.Sequence)

		courses = append(courses, domain.Course{
			Code:        code,
			Dept:        cd.Prefix,
			Term:        term,
			Title:       cd.Title,
			Description: string(cd.Description),
			Units:       parseUnits(cd.Units),
		})

		for _, sd := range cd.SectionData {
			section, err := s.parseSection(cd, sd, code, term)
			if err != nil {
				s.log.Warn().Err(err).Str("code", code).Msg("skipping section record")
				continue
			}
			if section == nil {
				continue
			}
			sections = append(sections, *section)
		}
	}

	return courses, sections, nil
}

func (s *service) fetch(ctx context.Context, dept string, term domain.TermID) ([]byte, error) {
	if s.raw != nil {
		body, ok, err := s.raw.Get(ctx, dept, term)
		if err != nil {
			s.log.Warn().Err(err).Msg("failed to read response cache")
		} else if ok {
			s.log.Debug().Str("dept", dept).Str("term", term.String()).Msg("serving cached response")
			return body, nil
		}
	}

	url := fmt.Sprintf("%s/classes/%s/%s", s.baseURL, dept, term)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if s.raw != nil {
		if err := s.raw.Put(ctx, dept, term, body); err != nil {
			s.log.Warn().Err(err).Msg("failed to store response cache")
		}
	}

	return body, nil
}

// parseSection turns one raw section record into a row. Non-lecture
// meetings and records without an id return (nil, nil) and are dropped
// silently; structurally broken records return an error.
func (s *service) parseSection(cd courseData, sd sectionData, code string, term domain.TermID) (*domain.Section, error) {
	if sd.Type != "Lec" && sd.Type != "Lecture" {
		return nil, nil
	}
	if sd.ID == "" {
		return nil, nil
	}

	instructor, err := sd.Instructor.names()
	if err != nil {
		return nil, errors.Wrapf(err, "bad instructor payload in section %s", sd.ID)
	}

	title := string(cd.SectionTitle)
	if title == "" {
		title = cd.Title
	}

	location := string(sd.Location)
	if location == "" {
		location = "N/A"
	}

	return &domain.Section{
		ID:               string(sd.ID),
		Code:             code,
		Dept:             cd.Prefix,
		Term:             term,
		Title:            title,
		Instructor:       format.Instructors(instructor),
		Location:         location,
		StartTime:        format.Clock(string(sd.StartTime)),
		EndTime:          format.Clock(string(sd.EndTime)),
		Days:             format.Days(string(sd.Day)),
		SpacesAvailable:  sd.SpacesAvailable.Int(),
		NumberRegistered: sd.NumberRegistered.Int(),
		Units:            parseUnits(cd.Units),
	}, nil
}
