package repository

import (
	"github.com/drigmma/zabugorn/internal/domain"
)

// RequestRepository defines request persistence operations.
// Saving is atomic and authoritative; the sheet row linkage is filled
// in later, best-effort, and may never be set.
type RequestRepository interface {
	Save(req *domain.Request) (int64, error)
	LinkSheetRow(requestID, sheetRow int64) error
	UpdateStatus(requestID int64, status domain.Status) error
	Delete(requestID int64) error
	GetByID(requestID int64) (*domain.Request, error)
	ListRecent(limit int) ([]domain.Request, error)
}
