package mocks

import (
	"context"

	"greetapi/internal/model"
	"greetapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockGreetingService struct {
	mock.Mock
}

func (m *MockGreetingService) Greet(ctx context.Context, username string) (*model.Visit, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Visit), args.Error(1)
}

func (m *MockGreetingService) Lookup(ctx context.Context, username string) (*model.Visit, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Visit), args.Error(1)
}

func (m *MockGreetingService) Stats(ctx context.Context, limit, offset int) (*service.VisitListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VisitListResult), args.Error(1)
}

func (m *MockGreetingService) Forget(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}
