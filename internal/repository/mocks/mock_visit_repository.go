package mocks

import (
	"context"
	"time"

	"greetapi/internal/model"
	"greetapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockVisitRepository struct {
	mock.Mock
}

func (m *MockVisitRepository) Record(ctx context.Context, username string, at time.Time) (*model.Visit, error) {
	args := m.Called(ctx, username, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Visit), args.Error(1)
}

func (m *MockVisitRepository) FindByUsername(ctx context.Context, username string) (*model.Visit, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Visit), args.Error(1)
}

func (m *MockVisitRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Visit], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Visit]), args.Error(1)
}

func (m *MockVisitRepository) Delete(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}
