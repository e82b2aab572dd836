// Package sheets mirrors completed requests to a Google Sheets
// spreadsheet. The mirror is strictly best-effort: callers log and
// drop every error, and the authoritative Postgres row is never
// affected by anything that happens here.
package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/drigmma/zabugorn/internal/config"
	"github.com/drigmma/zabugorn/internal/domain"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// Appender appends one row and returns its 1-based row index
type Appender interface {
	AppendRow(ctx context.Context, values []interface{}) (int64, error)
}

// Client talks to the Google Sheets API with service account credentials
type Client struct {
	svc           *sheetsapi.Service
	spreadsheetID string
	sheetName     string
}

// NewClient builds a sheets client from config. Credentials come from
// a service account file or inline JSON.
func NewClient(ctx context.Context, cfg config.SheetsConfig) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	default:
		return nil, fmt.Errorf("no google credentials configured")
	}
	opts = append(opts, option.WithScopes(sheetsapi.SpreadsheetsScope))

	svc, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
	}, nil
}

// AppendRow appends values to the bottom of the sheet and returns the
// row index the spreadsheet assigned.
func (c *Client) AppendRow(ctx context.Context, values []interface{}) (int64, error) {
	vr := &sheetsapi.ValueRange{Values: [][]interface{}{values}}

	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, c.sheetName, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, fmt.Errorf("append row: %w", err)
	}
	if resp.Updates == nil || resp.Updates.UpdatedRange == "" {
		return 0, fmt.Errorf("append response has no updated range")
	}

	return rowFromRange(resp.Updates.UpdatedRange)
}

// rowFromRange extracts the row index from an A1-notation range like
// "'Telegram Car Requests'!A5:K5".
func rowFromRange(a1 string) (int64, error) {
	ref := a1
	if i := strings.LastIndex(ref, "!"); i >= 0 {
		ref = ref[i+1:]
	}
	if i := strings.Index(ref, ":"); i >= 0 {
		ref = ref[:i]
	}

	digits := strings.TrimLeft(ref, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	row, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected range %q: %w", a1, err)
	}
	return row, nil
}

// RequestRow builds the mirror row for a request. The column order is
// fixed: back-office filters depend on it.
func RequestRow(req *domain.Request, now time.Time) []interface{} {
	return []interface{}{
		now.Format("2006-01-02 15:04:05"),
		req.Name,
		req.Phones,
		req.Username,
		req.BrandModel,
		req.Exterior,
		req.Interior,
		req.Package,
		req.Budget,
		req.Year,
		req.Wishes,
	}
}
