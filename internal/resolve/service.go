package resolve

import (
	"context"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/rs/zerolog"
	"github.com/uscsoc/socplan/internal/domain"
)

// fuzzyCutoff is the minimum similarity ratio accepted when no exact
// department match exists.
const fuzzyCutoff = 0.5

var courseRe = regexp.MustCompile(`^([A-Z]{2,4})0*([0-9]{1,3}[A-Z]?)`)

// MatchKind tells the caller whether a resolution was exact or fuzzy.
// Fuzzy matches must be surfaced to the end user as a caveat, never
// silently substituted.
type MatchKind int

const (
	MatchExact MatchKind = iota
	MatchFuzzy
)

// Resolution is a resolved department code plus how it was matched.
type Resolution struct {
	Code string
	Kind MatchKind
}

type Service interface {
	Department(ctx context.Context, raw string, term domain.TermID) (Resolution, error)
	Course(ctx context.Context, raw string, term domain.TermID) (Resolution, string, error)
}

type service struct {
	log       zerolog.Logger
	directory domain.DirectoryProvider
}

func NewService(log zerolog.Logger, directory domain.DirectoryProvider) Service {
	return &service{
		log:       log.With().Str("module", "resolve").Logger(),
		directory: directory,
	}
}

// Department maps a user-supplied department name or code, possibly
// misspelled, to its canonical code for the term. Exact matches win;
// otherwise the single closest candidate above the similarity cutoff is
// accepted and flagged as fuzzy.
func (s *service) Department(ctx context.Context, raw string, term domain.TermID) (Resolution, error) {
	dir, err := s.directory.Directory(ctx, term)
	if err != nil {
		return Resolution{}, errors.Wrap(err, "failed to load department directory")
	}

	needle := strings.ToLower(strings.TrimSpace(raw))

	for code, name := range dir {
		if needle == strings.ToLower(code) || needle == strings.ToLower(name) {
			return Resolution{Code: strings.ToUpper(code), Kind: MatchExact}, nil
		}
	}

	best, ratio := "", 0.0
	for code, name := range dir {
		for _, candidate := range []string{code, name} {
			if r := similarity(needle, strings.ToLower(candidate)); r > ratio {
				best, ratio = code, r
			}
		}
	}

	if ratio < fuzzyCutoff {
		return Resolution{}, &domain.DepartmentNotFoundError{Dept: raw}
	}

	s.log.Debug().Str("input", raw).Str("matched", best).Float64("ratio", ratio).Msg("fuzzy department match")
	return Resolution{Code: strings.ToUpper(best), Kind: MatchFuzzy}, nil
}

// Course parses a loose course-code string such as "csci 0104a" into a
// resolved department and a course number with leading zeros stripped.
func (s *service) Course(ctx context.Context, raw string, term domain.TermID) (Resolution, string, error) {
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), " ", ""))

	m := courseRe.FindStringSubmatch(cleaned)
	if m == nil {
		return Resolution{}, "", &domain.CourseNotFoundError{Course: raw}
	}

	res, err := s.Department(ctx, m[1], term)
	if err != nil {
		return Resolution{}, "", err
	}

	return res, m[2], nil
}

// similarity is the difflib sequence-matcher ratio over characters.
func similarity(a, b string) float64 {
	return difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, "")).Ratio()
}
