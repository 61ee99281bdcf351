package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/uscsoc/socplan/internal/domain"
)

// ResponseRepo implements domain.RawCache on the sqlite store. Bodies
// are opaque bytes of the upstream response, never authoritative.
type ResponseRepo struct {
	log zerolog.Logger
	db  *DB
}

func NewResponseRepo(log zerolog.Logger, db *DB) domain.RawCache {
	return &ResponseRepo{
		log: log.With().Str("repo", "responses").Logger(),
		db:  db,
	}
}

// Get returns the stored response body for a (dept, term) pair, with a
// found flag distinguishing a miss from an empty body.
func (r *ResponseRepo) Get(ctx context.Context, dept string, term domain.TermID) ([]byte, bool, error) {
	queryBuilder := r.db.squirrel.
		Select("body").
		From("soc_responses").
		Where(sq.Eq{"dept": dept, "term": int(term)})

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, false, errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Get")

	var body []byte
	err = r.db.handler.QueryRowContext(ctx, query, args...).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "error executing query")
	}

	return body, true, nil
}

// Put inserts or replaces the response body for a (dept, term) pair.
func (r *ResponseRepo) Put(ctx context.Context, dept string, term domain.TermID, body []byte) error {
	queryBuilder := r.db.squirrel.
		Replace("soc_responses").
		Columns("dept", "term", "body", "fetched_at").
		Values(dept, int(term), body, time.Now().Format(time.RFC3339))

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return errors.Wrap(err, "error building query")
	}

	r.log.Trace().Str("query", query).Interface("args", args).Msg("Put")

	_, err = r.db.handler.ExecContext(ctx, query, args...)
	if err != nil {
		return errors.Wrap(err, "error executing query")
	}

	return nil
}
