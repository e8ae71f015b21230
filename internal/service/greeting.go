package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"time"

	"greetapi/internal/model"
	"greetapi/internal/repository"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrInvalidUsername  = errors.New("username has invalid format")
	ErrNotFound         = errors.New("visit not found")
)

// usernamePattern constrains path-segment usernames. Segments never contain
// '/' (the router guarantees that); this additionally rejects control
// characters, spaces, and oversized input.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// ValidUsername reports whether s is an acceptable greeting username.
func ValidUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// VisitListResult is the service-level DTO for paginated visits.
type VisitListResult struct {
	Items []model.Visit `json:"data"`
	Total int           `json:"total"`
}

// GreetingService defines the use cases behind the greeting routes.
type GreetingService interface {
	// Greet validates the username and records one visit, returning the
	// stored counter row.
	Greet(ctx context.Context, username string) (*model.Visit, error)

	// Lookup returns the visit record for a single username.
	Lookup(ctx context.Context, username string) (*model.Visit, error)

	// Stats returns visit records using limit/offset and a total count.
	Stats(ctx context.Context, limit, offset int) (*VisitListResult, error)

	// Forget removes the visit record for a username.
	Forget(ctx context.Context, username string) error
}

// greetingService is a concrete implementation of GreetingService.
type greetingService struct {
	repo repository.VisitRepository
	now  func() time.Time
}

// NewGreetingService constructs a new GreetingService.
func NewGreetingService(repo repository.VisitRepository) GreetingService {
	return &greetingService{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func validate(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if !ValidUsername(username) {
		return ErrInvalidUsername
	}
	return nil
}

func (s *greetingService) Greet(ctx context.Context, username string) (*model.Visit, error) {
	if err := validate(username); err != nil {
		return nil, err
	}
	return s.repo.Record(ctx, username, s.now())
}

func (s *greetingService) Lookup(ctx context.Context, username string) (*model.Visit, error) {
	if err := validate(username); err != nil {
		return nil, err
	}
	v, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// Stats returns paginated visits without exposing repository types.
func (s *greetingService) Stats(ctx context.Context, limit, offset int) (*VisitListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &VisitListResult{Items: res.Items, Total: res.Total}, nil
}

// Forget looks the record up first so a missing username surfaces as ErrNotFound.
func (s *greetingService) Forget(ctx context.Context, username string) error {
	if err := validate(username); err != nil {
		return err
	}
	if _, err := s.repo.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, username)
}
