package domain

import "time"

// Status is the lifecycle status of a request
type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusRejected   Status = "rejected"
)

// Request represents one completed car purchase request
type Request struct {
	ID         int64
	UserID     int64
	Username   string
	Name       string
	Phones     string // one or more numbers, comma-separated
	BrandModel string
	Exterior   string
	Interior   string
	Package    string
	Budget     string
	Year       string
	Wishes     string
	Status     Status
	SheetRow   *int64 // spreadsheet row index, nil until mirrored
	CreatedAt  time.Time
}
