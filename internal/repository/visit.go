package repository

import (
	"context"
	"time"

	"greetapi/internal/model"
)

// VisitRepository defines data access for greeting visits using SQL queries only.
// No business logic here — strictly persistence operations.
type VisitRepository interface {
	// Record upserts the visit row for a username: the first greeting inserts
	// the row, later greetings increment the counter and bump last_seen.
	// Returns the stored row after the update.
	Record(ctx context.Context, username string, at time.Time) (*model.Visit, error)

	// FindByUsername returns the visit row for a username.
	FindByUsername(ctx context.Context, username string) (*model.Visit, error)

	// List returns a paginated list of visits and total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Visit], error)

	// Delete removes the visit row for a username. It returns nil if the row
	// was deleted or did not exist.
	Delete(ctx context.Context, username string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
