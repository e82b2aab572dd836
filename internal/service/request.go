package service

import (
	"context"
	"time"

	"github.com/drigmma/zabugorn/internal/domain"
	"github.com/drigmma/zabugorn/internal/repository"
	"github.com/drigmma/zabugorn/internal/sheets"

	"go.uber.org/zap"
)

// ListPageSize is the page size for the operator request listing
const ListPageSize = 50

// RequestService owns the request lifecycle: authoritative persistence,
// the best-effort spreadsheet mirror and operator status transitions.
type RequestService struct {
	repo   repository.RequestRepository
	mirror sheets.Appender // nil when the mirror is not configured
	logger *zap.Logger
}

// NewRequestService creates a new request service
func NewRequestService(repo repository.RequestRepository, mirror sheets.Appender, logger *zap.Logger) *RequestService {
	return &RequestService{
		repo:   repo,
		mirror: mirror,
		logger: logger,
	}
}

// Submit persists a completed request. This is the authoritative write:
// if it fails, the submission failed.
func (s *RequestService) Submit(req *domain.Request) (int64, error) {
	return s.repo.Save(req)
}

// MirrorAppend copies an already-saved request to the spreadsheet and
// links the resulting row back. Every failure is logged and swallowed:
// the committed request row stays untouched and sheet_row stays null.
func (s *RequestService) MirrorAppend(ctx context.Context, requestID int64, req *domain.Request) {
	if s.mirror == nil {
		s.logger.Info("Google Sheets not configured, skipping mirror append",
			zap.Int64("request_id", requestID),
		)
		return
	}

	row, err := s.mirror.AppendRow(ctx, sheets.RequestRow(req, time.Now()))
	if err != nil {
		s.logger.Warn("Failed to append request to sheet",
			zap.Int64("request_id", requestID),
			zap.Error(err),
		)
		return
	}

	if err := s.repo.LinkSheetRow(requestID, row); err != nil {
		s.logger.Warn("Failed to link sheet row",
			zap.Int64("request_id", requestID),
			zap.Int64("sheet_row", row),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Request mirrored to sheet",
		zap.Int64("request_id", requestID),
		zap.Int64("sheet_row", row),
	)
}

// Claim marks a request as taken into work
func (s *RequestService) Claim(requestID int64) error {
	return s.repo.UpdateStatus(requestID, domain.StatusInProgress)
}

// Reject marks a request as rejected
func (s *RequestService) Reject(requestID int64) error {
	return s.repo.UpdateStatus(requestID, domain.StatusRejected)
}

// Remove hard-deletes a request. The mirror row is left alone.
func (s *RequestService) Remove(requestID int64) error {
	return s.repo.Delete(requestID)
}

// Get returns a request, or nil if it no longer exists
func (s *RequestService) Get(requestID int64) (*domain.Request, error) {
	return s.repo.GetByID(requestID)
}

// Recent returns the newest requests for the operator listing
func (s *RequestService) Recent() ([]domain.Request, error) {
	return s.repo.ListRecent(ListPageSize)
}
