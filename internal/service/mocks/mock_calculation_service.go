package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hvsrweb/internal/model"
	"hvsrweb/internal/service"
)

type MockCalculationService struct {
	mock.Mock
}

func (m *MockCalculationService) Calculate(ctx context.Context, recordID string, settings model.Settings) (*model.Calculation, error) {
	args := m.Called(ctx, recordID, settings)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Calculation), args.Error(1)
}

func (m *MockCalculationService) Get(ctx context.Context, id string) (*model.Calculation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Calculation), args.Error(1)
}

func (m *MockCalculationService) Export(ctx context.Context, id, format string) (*service.ExportFile, error) {
	args := m.Called(ctx, id, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

func (m *MockCalculationService) Figure(ctx context.Context, id string) (*service.ExportFile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}
