package testutil

import (
	"context"

	"github.com/drigmma/zabugorn/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockRequestRepository is a mock for repository.RequestRepository
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) Save(req *domain.Request) (int64, error) {
	args := m.Called(req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRequestRepository) LinkSheetRow(requestID, sheetRow int64) error {
	args := m.Called(requestID, sheetRow)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateStatus(requestID int64, status domain.Status) error {
	args := m.Called(requestID, status)
	return args.Error(0)
}

func (m *MockRequestRepository) Delete(requestID int64) error {
	args := m.Called(requestID)
	return args.Error(0)
}

func (m *MockRequestRepository) GetByID(requestID int64) (*domain.Request, error) {
	args := m.Called(requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Request), args.Error(1)
}

func (m *MockRequestRepository) ListRecent(limit int) ([]domain.Request, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Request), args.Error(1)
}

// MockAppender is a mock for sheets.Appender
type MockAppender struct {
	mock.Mock
}

func (m *MockAppender) AppendRow(ctx context.Context, values []interface{}) (int64, error) {
	args := m.Called(ctx, values)
	return args.Get(0).(int64), args.Error(1)
}
