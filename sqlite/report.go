package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jarvis322/namescan"
)

// Compile-time interface verification.
var _ namescan.ReportStore = (*ReportStore)(nil)

// ReportStore implements namescan.ReportStore using SQLite. Stored
// reports keep the match records and summary counts; per-document
// fetch outcomes are not retained beyond the failed count.
type ReportStore struct {
	db *DB
}

// NewReportStore creates a new ReportStore.
func NewReportStore(db *DB) *ReportStore {
	return &ReportStore{db: db}
}

// SaveReport stores the report, assigning its ID and StartedAt.
func (s *ReportStore) SaveReport(ctx context.Context, report *namescan.Report) error {
	report.ID = uuid.New().String()
	report.StartedAt = time.Now().UTC()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO reports (id, started_at, documents, failed, total)
		VALUES (?, ?, ?, ?, ?)
	`, report.ID, report.StartedAt.Format(time.RFC3339),
		len(report.Results), report.FailedCount(), report.Total()); err != nil {
		return err
	}

	for i, rec := range report.Records {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO report_records (report_id, position, name, document_title, document_url, page, context)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, report.ID, i, rec.Name, rec.DocumentTitle, rec.DocumentURL, rec.Page, rec.Context); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindReportByID retrieves a stored report with its match records in
// original order. Returns ENOTFOUND if the report does not exist.
func (s *ReportStore) FindReportByID(ctx context.Context, id string) (*namescan.Report, error) {
	report := &namescan.Report{}
	var startedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, started_at FROM reports WHERE id = ?
	`, id).Scan(&report.ID, &startedAt)

	if err == sql.ErrNoRows {
		return nil, namescan.Errorf(namescan.ENOTFOUND, "report not found")
	}
	if err != nil {
		return nil, err
	}

	report.StartedAt, err = parseRFC3339(startedAt, "started_at")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, document_title, document_url, page, context
		FROM report_records
		WHERE report_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var rec namescan.MatchRecord
		if err := rows.Scan(&rec.Name, &rec.DocumentTitle, &rec.DocumentURL, &rec.Page, &rec.Context); err != nil {
			return nil, err
		}
		report.Records = append(report.Records, rec)
	}

	return report, rows.Err()
}

// ListReports returns summaries of stored reports, newest first.
func (s *ReportStore) ListReports(ctx context.Context) ([]namescan.ReportSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, documents, failed, total
		FROM reports
		ORDER BY started_at DESC, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []namescan.ReportSummary
	for rows.Next() {
		var sum namescan.ReportSummary
		var startedAt string
		if err := rows.Scan(&sum.ID, &startedAt, &sum.Documents, &sum.Failed, &sum.Total); err != nil {
			return nil, err
		}
		if sum.StartedAt, err = parseRFC3339(startedAt, "started_at"); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}

	return summaries, rows.Err()
}
