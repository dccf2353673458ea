package namescan

import (
	"context"
	"io"
	"time"
)

// Report is the outcome of one analysis run: per-document results in
// selection order plus the concatenated match records. Rebuilt fully on
// each run; no incremental update semantics.
type Report struct {
	// ID and StartedAt are assigned when the report is persisted.
	ID        string
	StartedAt time.Time

	// Results holds one entry per selected document, in selection
	// order, whether it succeeded or failed.
	Results []DocumentResult

	// Records is every successful document's matches concatenated
	// exactly once, in selection order.
	Records []MatchRecord
}

// BuildReport aggregates per-document results into a report. Each
// document's records are appended exactly once; failed documents
// contribute zero records.
func BuildReport(results []DocumentResult) *Report {
	report := &Report{Results: results}
	for _, r := range results {
		if r.Failed() || r.Duplicate {
			continue
		}
		report.Records = append(report.Records, r.Matches...)
	}
	return report
}

// Total returns the number of match records.
func (r *Report) Total() int {
	return len(r.Records)
}

// FailedCount returns the number of documents that could not be scanned.
func (r *Report) FailedCount() int {
	var n int
	for i := range r.Results {
		if r.Results[i].Failed() {
			n++
		}
	}
	return n
}

// ReportSummary is a listing entry for a stored report.
type ReportSummary struct {
	ID        string
	StartedAt time.Time
	Documents int
	Failed    int
	Total     int
}

// ReportStore persists analysis reports between sessions.
type ReportStore interface {
	// SaveReport stores the report, assigning its ID and StartedAt.
	SaveReport(ctx context.Context, report *Report) error

	// FindReportByID retrieves a stored report.
	// Returns ENOTFOUND if the report does not exist.
	FindReportByID(ctx context.Context, id string) (*Report, error)

	// ListReports returns summaries of stored reports, newest first.
	ListReports(ctx context.Context) ([]ReportSummary, error)
}

// ReportWriter serializes a report to an external format.
type ReportWriter interface {
	WriteReport(w io.Writer, report *Report) error
}
