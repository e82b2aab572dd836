package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/drigmma/zabugorn/internal/domain"
	"github.com/drigmma/zabugorn/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRequestService_Submit(t *testing.T) {
	tests := []struct {
		name          string
		mockID        int64
		mockError     error
		expectedError bool
	}{
		{
			name:   "successful save",
			mockID: 42,
		},
		{
			name:          "save fails",
			mockID:        0,
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockRequestRepository)
			req := testutil.NewTestRequest(0, 123)

			mockRepo.On("Save", req).Return(tt.mockID, tt.mockError)

			svc := NewRequestService(mockRepo, nil, testutil.NewTestLogger())

			id, err := svc.Submit(req)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.mockID, id)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRequestService_MirrorAppend(t *testing.T) {
	mockRepo := new(testutil.MockRequestRepository)
	mockMirror := new(testutil.MockAppender)
	req := testutil.NewTestRequest(42, 123)

	mockMirror.On("AppendRow", mock.Anything, mock.Anything).Return(int64(7), nil)
	mockRepo.On("LinkSheetRow", int64(42), int64(7)).Return(nil)

	svc := NewRequestService(mockRepo, mockMirror, testutil.NewTestLogger())

	svc.MirrorAppend(context.Background(), 42, req)

	mockMirror.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRequestService_MirrorAppend_AppendFails(t *testing.T) {
	mockRepo := new(testutil.MockRequestRepository)
	mockMirror := new(testutil.MockAppender)
	req := testutil.NewTestRequest(42, 123)

	mockMirror.On("AppendRow", mock.Anything, mock.Anything).
		Return(int64(0), fmt.Errorf("sheets unavailable"))

	svc := NewRequestService(mockRepo, mockMirror, testutil.NewTestLogger())

	// Failure is swallowed; the repository is never touched
	svc.MirrorAppend(context.Background(), 42, req)

	mockMirror.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "LinkSheetRow", mock.Anything, mock.Anything)
}

func TestRequestService_MirrorAppend_LinkFails(t *testing.T) {
	mockRepo := new(testutil.MockRequestRepository)
	mockMirror := new(testutil.MockAppender)
	req := testutil.NewTestRequest(42, 123)

	mockMirror.On("AppendRow", mock.Anything, mock.Anything).Return(int64(7), nil)
	mockRepo.On("LinkSheetRow", int64(42), int64(7)).Return(fmt.Errorf("db error"))

	// Link failure is also swallowed
	svc := NewRequestService(mockRepo, mockMirror, testutil.NewTestLogger())

	svc.MirrorAppend(context.Background(), 42, req)

	mockMirror.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRequestService_MirrorAppend_NotConfigured(t *testing.T) {
	mockRepo := new(testutil.MockRequestRepository)
	req := testutil.NewTestRequest(42, 123)

	svc := NewRequestService(mockRepo, nil, testutil.NewTestLogger())

	// No mirror configured is not an error
	svc.MirrorAppend(context.Background(), 42, req)

	mockRepo.AssertNotCalled(t, "LinkSheetRow", mock.Anything, mock.Anything)
}

func TestRequestService_StatusTransitions(t *testing.T) {
	tests := []struct {
		name     string
		call     func(*RequestService) error
		expected domain.Status
	}{
		{
			name:     "claim sets in_progress",
			call:     func(s *RequestService) error { return s.Claim(42) },
			expected: domain.StatusInProgress,
		},
		{
			name:     "reject sets rejected",
			call:     func(s *RequestService) error { return s.Reject(42) },
			expected: domain.StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockRequestRepository)
			mockRepo.On("UpdateStatus", int64(42), tt.expected).Return(nil)

			svc := NewRequestService(mockRepo, nil, testutil.NewTestLogger())

			assert.NoError(t, tt.call(svc))
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestRequestService_Remove(t *testing.T) {
	mockRepo := new(testutil.MockRequestRepository)
	mockRepo.On("Delete", int64(42)).Return(nil)

	svc := NewRequestService(mockRepo, nil, testutil.NewTestLogger())

	assert.NoError(t, svc.Remove(42))
	mockRepo.AssertExpectations(t)
}

func TestRequestService_Get(t *testing.T) {
	mockRepo := new(testutil.MockRequestRepository)
	expected := testutil.NewTestRequest(42, 123)
	mockRepo.On("GetByID", int64(42)).Return(expected, nil)
	mockRepo.On("GetByID", int64(99)).Return(nil, nil)

	svc := NewRequestService(mockRepo, nil, testutil.NewTestLogger())

	req, err := svc.Get(42)
	assert.NoError(t, err)
	assert.Equal(t, expected, req)

	// A deleted request is nil, not an error
	req, err = svc.Get(99)
	assert.NoError(t, err)
	assert.Nil(t, req)

	mockRepo.AssertExpectations(t)
}

func TestRequestService_Recent(t *testing.T) {
	mockRepo := new(testutil.MockRequestRepository)
	expected := []domain.Request{*testutil.NewTestRequest(42, 123)}
	mockRepo.On("ListRecent", ListPageSize).Return(expected, nil)

	svc := NewRequestService(mockRepo, nil, testutil.NewTestLogger())

	requests, err := svc.Recent()

	assert.NoError(t, err)
	assert.Equal(t, expected, requests)
	mockRepo.AssertExpectations(t)
}
