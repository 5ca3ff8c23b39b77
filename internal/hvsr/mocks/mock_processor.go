package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hvsrweb/internal/model"
)

type MockProcessor struct {
	mock.Mock
}

func (m *MockProcessor) Process(ctx context.Context, rec *model.Record, settings model.Settings) (*model.Result, error) {
	args := m.Called(ctx, rec, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Result), args.Error(1)
}

func (m *MockProcessor) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
