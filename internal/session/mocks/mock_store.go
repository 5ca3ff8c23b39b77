package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"hvsrweb/internal/model"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) PutRecord(ctx context.Context, rec *model.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockStore) Record(ctx context.Context, id string) (*model.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockStore) DeleteRecord(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockStore) PutCalculation(ctx context.Context, calc *model.Calculation) error {
	args := m.Called(ctx, calc)
	return args.Error(0)
}

func (m *MockStore) Calculation(ctx context.Context, id string) (*model.Calculation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Calculation), args.Error(1)
}
