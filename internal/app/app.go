package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/uscsoc/socplan/internal/cache"
	"github.com/uscsoc/socplan/internal/config"
	"github.com/uscsoc/socplan/internal/database"
	"github.com/uscsoc/socplan/internal/directory"
	"github.com/uscsoc/socplan/internal/domain"
	"github.com/uscsoc/socplan/internal/logger"
	"github.com/uscsoc/socplan/internal/notification"
	"github.com/uscsoc/socplan/internal/resolve"
	"github.com/uscsoc/socplan/internal/schedule"
	"github.com/uscsoc/socplan/internal/soc"
)

// App wires one session's services together and exposes the plain
// calls the conversational agent invokes. All inputs are loosely
// formatted text; resolution and fuzzy matching happen inside.
type App struct {
	log      zerolog.Logger
	config   *domain.Config
	db       *database.DB
	cache    cache.Service
	planner  schedule.Service
	notifier domain.Notifier
}

// NewApp creates a new session with all dependencies initialized.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewWithLevel(cfg.LogLevel)

	term, err := domain.ParseTerm(cfg.Term)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDB(cfg.DBDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	raw := database.NewResponseRepo(log, db)
	dir := directory.NewService(log, cfg.DirectoryURL, cfg.DBDir, cfg.DepartmentsFile)
	resolver := resolve.NewService(log, dir)
	source := soc.NewService(log, cfg.BaseURL, raw)
	cacheSvc := cache.NewService(log, resolver, dir, source, term)

	return &App{
		log:      log,
		config:   cfg,
		db:       db,
		cache:    cacheSvc,
		planner:  schedule.NewService(log, cacheSvc),
		notifier: notification.NewService(log, cfg.DiscordWebhookURL),
	}, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Term returns the active term.
func (a *App) Term() domain.TermID {
	return a.cache.Term()
}

// UpdateTerm switches the active term without discarding data already
// cached for other terms.
func (a *App) UpdateTerm(text string) error {
	term, err := domain.ParseTerm(text)
	if err != nil {
		return err
	}
	a.cache.UpdateTerm(term)
	return nil
}

// GetCourses renders all courses of a department as CSV.
func (a *App) GetCourses(ctx context.Context, deptText string) (string, error) {
	return a.cache.GetCourses(ctx, deptText)
}

// GetSections renders all lecture sections of a course as CSV.
func (a *App) GetSections(ctx context.Context, courseText string) (string, error) {
	return a.cache.GetSections(ctx, courseText)
}

// ListDepartments renders the active term's department directory.
func (a *App) ListDepartments(ctx context.Context) (string, error) {
	return a.cache.ListDepartments(ctx)
}

// Preload resolves and retrieves a comma-separated list of
// departments so their section ids become valid.
func (a *App) Preload(ctx context.Context, csvDepts string) error {
	for _, dept := range schedule.SplitIDs(csvDepts) {
		if _, err := a.cache.GetCourses(ctx, dept); err != nil {
			return err
		}
	}
	return nil
}

// AddSections adds comma-separated section ids to the schedule,
// rejecting the whole batch on any conflict.
func (a *App) AddSections(csvIDs string) ([]string, error) {
	return a.planner.Add(csvIDs)
}

// RemoveSections drops comma-separated section ids from the schedule.
func (a *App) RemoveSections(csvIDs string) []string {
	return a.planner.Remove(csvIDs)
}

// Schedule returns the calendar-ready events for the current
// selection.
func (a *App) Schedule() ([]domain.Event, error) {
	return a.planner.Events()
}

// Warm sequentially retrieves every department in the active term's
// directory, best effort, and reports the outcome.
func (a *App) Warm(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			if notifyErr := a.notifier.SendError(ctx, err); notifyErr != nil {
				a.log.Warn().Err(notifyErr).Msg("Failed to send error notification")
			}
		}
	}()

	stats, err := a.cache.WarmAll(ctx)
	if err != nil {
		return fmt.Errorf("warm run failed: %w", err)
	}

	a.log.Info().
		Str("term", stats.Term.String()).
		Int("departments", stats.Departments).
		Int("courses", stats.Courses).
		Int("sections", stats.Sections).
		Int("failures", stats.Failures).
		Msg("Warm run complete")

	if notifyErr := a.notifier.SendSuccess(ctx, stats); notifyErr != nil {
		a.log.Warn().Err(notifyErr).Msg("Failed to send success notification")
	}

	return nil
}
