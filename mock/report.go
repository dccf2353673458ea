package mock

import (
	"context"
	"io"

	"github.com/jarvis322/namescan"
)

var _ namescan.ReportStore = (*ReportStore)(nil)

// ReportStore is a mock implementation of namescan.ReportStore.
type ReportStore struct {
	SaveReportFn     func(ctx context.Context, report *namescan.Report) error
	FindReportByIDFn func(ctx context.Context, id string) (*namescan.Report, error)
	ListReportsFn    func(ctx context.Context) ([]namescan.ReportSummary, error)
}

func (s *ReportStore) SaveReport(ctx context.Context, report *namescan.Report) error {
	return s.SaveReportFn(ctx, report)
}

func (s *ReportStore) FindReportByID(ctx context.Context, id string) (*namescan.Report, error) {
	return s.FindReportByIDFn(ctx, id)
}

func (s *ReportStore) ListReports(ctx context.Context) ([]namescan.ReportSummary, error) {
	return s.ListReportsFn(ctx)
}

var _ namescan.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of namescan.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(w io.Writer, report *namescan.Report) error
}

func (r *ReportWriter) WriteReport(w io.Writer, report *namescan.Report) error {
	return r.WriteReportFn(w, report)
}
