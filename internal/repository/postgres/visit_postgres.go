package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"greetapi/internal/model"
	"greetapi/internal/repository"
)

// VisitPostgres is a PostgreSQL implementation of repository.VisitRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type VisitPostgres struct {
	db *sql.DB
}

// NewVisitPostgres creates a new VisitPostgres repository.
func NewVisitPostgres(db *sql.DB) *VisitPostgres {
	return &VisitPostgres{db: db}
}

var _ repository.VisitRepository = (*VisitPostgres)(nil)

// IsNoRowsError reports whether err is the driver's no-rows sentinel.
func IsNoRowsError(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Record upserts the visit counter for a username in a single statement.
func (r *VisitPostgres) Record(ctx context.Context, username string, at time.Time) (*model.Visit, error) {
	const q = `
		INSERT INTO visits (username, count, first_seen, last_seen)
		VALUES ($1, 1, $2, $2)
		ON CONFLICT (username) DO UPDATE
		SET count = visits.count + 1, last_seen = EXCLUDED.last_seen
		RETURNING username, count, first_seen, last_seen
	`
	row := r.db.QueryRowContext(ctx, q, username, at)
	var v model.Visit
	if err := row.Scan(&v.Username, &v.Count, &v.FirstSeen, &v.LastSeen); err != nil {
		return nil, err
	}
	return &v, nil
}

// FindByUsername fetches a single visit row.
func (r *VisitPostgres) FindByUsername(ctx context.Context, username string) (*model.Visit, error) {
	const q = `
		SELECT username, count, first_seen, last_seen
		FROM visits
		WHERE username = $1
	`
	row := r.db.QueryRowContext(ctx, q, username)
	var v model.Visit
	if err := row.Scan(&v.Username, &v.Count, &v.FirstSeen, &v.LastSeen); err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns visits using LIMIT/OFFSET pagination and a total count.
// Most recently greeted usernames come first.
func (r *VisitPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Visit], error) {
	const qCount = `SELECT COUNT(*) FROM visits`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT username, count, first_seen, last_seen
		FROM visits
		ORDER BY last_seen DESC, username ASC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Visit, 0)
	for rows.Next() {
		var v model.Visit
		if err := rows.Scan(&v.Username, &v.Count, &v.FirstSeen, &v.LastSeen); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Visit]{
		Items: items,
		Total: total,
	}, nil
}

// Delete removes a visit row. It does not return an error if the row does not exist.
func (r *VisitPostgres) Delete(ctx context.Context, username string) error {
	const q = `DELETE FROM visits WHERE username = $1`
	res, err := r.db.ExecContext(ctx, q, username)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}
