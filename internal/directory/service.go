package directory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocolly/colly"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/uscsoc/socplan/internal/domain"
	"gopkg.in/yaml.v3"
)

// Service fetches the department directory for a term. Listings are
// scraped once per term and memoized for the lifetime of the service.
type Service interface {
	domain.DirectoryProvider
}

type service struct {
	log           zerolog.Logger
	baseURL       string
	cacheDir      string
	overridesPath string
	memo          map[domain.TermID]domain.Directory
}

func NewService(log zerolog.Logger, baseURL, cacheDir, overridesPath string) Service {
	return &service{
		log:           log.With().Str("module", "directory").Logger(),
		baseURL:       baseURL,
		cacheDir:      cacheDir,
		overridesPath: overridesPath,
		memo:          make(map[domain.TermID]domain.Directory),
	}
}

// Directory returns the code->name department mapping for a term,
// scraping the term listing page on first use.
func (s *service) Directory(ctx context.Context, term domain.TermID) (domain.Directory, error) {
	if dir, ok := s.memo[term]; ok {
		return dir, nil
	}

	dir, err := s.scrape(term)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch department directory for term %s", term)
	}
	if len(dir) == 0 {
		return nil, errors.Errorf("term %s not found, courses for this semester may not be listed yet", term)
	}

	if err := s.applyOverrides(dir); err != nil {
		s.log.Warn().Err(err).Str("path", s.overridesPath).Msg("failed to apply department overrides")
	}

	s.memo[term] = dir
	s.log.Info().Str("term", term.String()).Int("departments", len(dir)).Msg("Department directory loaded")
	return dir, nil
}

func (s *service) scrape(term domain.TermID) (domain.Directory, error) {
	opts := []func(*colly.Collector){}
	if s.cacheDir != "" {
		opts = append(opts, colly.CacheDir(filepath.Join(s.cacheDir, "pages")))
	}
	c := colly.NewCollector(opts...)

	dir := domain.Directory{}
	c.OnHTML("li", func(e *colly.HTMLElement) {
		if e.Attr("data-type") != "department" {
			return
		}
		code := e.Attr("data-code")
		name := e.Attr("data-title")
		if code == "" || name == "" {
			return
		}
		dir[code] = name
	})

	c.OnRequest(func(r *colly.Request) {
		s.log.Debug().Str("url", r.URL.String()).Msg("visiting")
	})

	if err := c.Visit(fmt.Sprintf("%s/term-%s/", s.baseURL, term)); err != nil {
		return nil, err
	}

	return dir, nil
}

type overridesFile struct {
	Departments []struct {
		Code string `yaml:"code"`
		Name string `yaml:"name"`
	} `yaml:"departments"`
}

// applyOverrides merges a local departments file over the scraped
// directory, preserving scraped entries the file does not mention.
func (s *service) applyOverrides(dir domain.Directory) error {
	if s.overridesPath == "" {
		return nil
	}

	b, err := os.ReadFile(s.overridesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "failed to read overrides file")
	}

	of := &overridesFile{}
	if err := yaml.Unmarshal(b, of); err != nil {
		return errors.Wrap(err, "failed to unmarshal overrides file")
	}

	for _, d := range of.Departments {
		if d.Code == "" || d.Name == "" {
			continue
		}
		dir[d.Code] = d.Name
	}

	return nil
}

// Static serves a fixed directory for every term. It backs test suites
// and offline runs.
type Static struct {
	Depts domain.Directory
}

func (s Static) Directory(_ context.Context, _ domain.TermID) (domain.Directory, error) {
	return s.Depts, nil
}
