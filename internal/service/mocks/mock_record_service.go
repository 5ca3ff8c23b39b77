package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hvsrweb/internal/model"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) Upload(ctx context.Context, filename string, data []byte) (*model.Record, error) {
	args := m.Called(ctx, filename, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordService) Demo(ctx context.Context) (*model.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordService) Get(ctx context.Context, id string) (*model.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}
