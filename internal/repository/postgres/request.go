package postgres

import (
	"database/sql"

	"github.com/drigmma/zabugorn/internal/domain"
)

// RequestRepo implements repository.RequestRepository
type RequestRepo struct {
	db *sql.DB
}

// NewRequestRepo creates a new request repository
func NewRequestRepo(db *sql.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

// Save inserts a new request and returns its id.
// Status is set to 'new' and sheet_row stays null.
func (r *RequestRepo) Save(req *domain.Request) (int64, error) {
	query := `
		INSERT INTO requests (user_id, username, name, phones, brand_model, exterior, interior, package, budget, year, wishes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 'new')
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(query,
		req.UserID,
		req.Username,
		req.Name,
		req.Phones,
		req.BrandModel,
		req.Exterior,
		req.Interior,
		req.Package,
		req.Budget,
		req.Year,
		req.Wishes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// LinkSheetRow records the spreadsheet row a request was mirrored to
func (r *RequestRepo) LinkSheetRow(requestID, sheetRow int64) error {
	query := `UPDATE requests SET sheet_row = $1 WHERE id = $2`
	_, err := r.db.Exec(query, sheetRow, requestID)
	return err
}

// UpdateStatus sets the request status; last write wins
func (r *RequestRepo) UpdateStatus(requestID int64, status domain.Status) error {
	query := `UPDATE requests SET status = $1 WHERE id = $2`
	_, err := r.db.Exec(query, string(status), requestID)
	return err
}

// Delete removes the request row entirely
func (r *RequestRepo) Delete(requestID int64) error {
	query := `DELETE FROM requests WHERE id = $1`
	_, err := r.db.Exec(query, requestID)
	return err
}

// GetByID returns a request, or nil if it does not exist
func (r *RequestRepo) GetByID(requestID int64) (*domain.Request, error) {
	query := `
		SELECT id, user_id, username, name, phones, brand_model, exterior, interior, package, budget, year, wishes, status, sheet_row, created_at
		FROM requests
		WHERE id = $1
	`

	req, err := scanRequest(r.db.QueryRow(query, requestID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return req, nil
}

// ListRecent returns the newest requests, newest first
func (r *RequestRepo) ListRecent(limit int) ([]domain.Request, error) {
	query := `
		SELECT id, user_id, username, name, phones, brand_model, exterior, interior, package, budget, year, wishes, status, sheet_row, created_at
		FROM requests
		ORDER BY id DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}

	return requests, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.Request, error) {
	var req domain.Request
	var status string
	var sheetRow sql.NullInt64

	err := row.Scan(
		&req.ID, &req.UserID, &req.Username, &req.Name, &req.Phones,
		&req.BrandModel, &req.Exterior, &req.Interior, &req.Package,
		&req.Budget, &req.Year, &req.Wishes, &status, &sheetRow, &req.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	req.Status = domain.Status(status)
	if sheetRow.Valid {
		req.SheetRow = &sheetRow.Int64
	}

	return &req, nil
}
