package domain

import "context"

// DirectoryProvider supplies the code↔name department directory for a
// term. Implementations may scrape, read a file, or serve a static map
// in tests; the resolvers depend only on this interface.
type DirectoryProvider interface {
	Directory(ctx context.Context, term TermID) (Directory, error)
}

// CourseSource fetches the parsed course and section rows for one
// department and term from the schedule-of-classes API.
type CourseSource interface {
	Classes(ctx context.Context, dept string, term TermID) ([]Course, []Section, error)
}

// RawCache is a pure byte cache of external responses keyed by
// (dept, term). It is never authoritative; it only saves round trips.
type RawCache interface {
	Get(ctx context.Context, dept string, term TermID) ([]byte, bool, error)
	Put(ctx context.Context, dept string, term TermID, body []byte) error
}

// Notifier receives the outcome of a full warm run.
type Notifier interface {
	SendSuccess(ctx context.Context, stats Statistics) error
	SendError(ctx context.Context, err error) error
}
