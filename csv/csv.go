// Package csv serializes analysis reports as a delimited table, the
// only externally durable format. Columns are Name, Document, Page,
// Context, Link, in that order, UTF-8, and round-trip losslessly.
package csv

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/jarvis322/namescan"
)

// header is the fixed column order of the export format.
var header = []string{"Name", "Document", "Page", "Context", "Link"}

// Ensure Writer implements namescan.ReportWriter at compile time.
var _ namescan.ReportWriter = (*Writer)(nil)

// Writer writes reports in the five-column export format.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteReport writes the header row followed by one row per match
// record, in report order.
func (wr *Writer) WriteReport(w io.Writer, report *namescan.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range report.Records {
		row := []string{
			rec.Name,
			rec.DocumentTitle,
			strconv.Itoa(rec.Page),
			rec.Context,
			rec.DocumentURL,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadRecords parses the export format back into match records. The
// header row is required and its column order verified.
func ReadRecords(r io.Reader) ([]namescan.MatchRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	first, err := cr.Read()
	if err == io.EOF {
		return nil, namescan.Errorf(namescan.EINVALID, "missing header row")
	}
	if err != nil {
		return nil, namescan.Errorf(namescan.EINVALID, "read header: %v", err)
	}
	for i, col := range header {
		if first[i] != col {
			return nil, namescan.Errorf(namescan.EINVALID, "unexpected column %q, want %q", first[i], col)
		}
	}

	var records []namescan.MatchRecord
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, namescan.Errorf(namescan.EINVALID, "read row: %v", err)
		}

		page, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, namescan.Errorf(namescan.EINVALID, "invalid page number %q", row[2])
		}

		records = append(records, namescan.MatchRecord{
			Name:          row[0],
			DocumentTitle: row[1],
			Page:          page,
			Context:       row[3],
			DocumentURL:   row[4],
		})
	}

	return records, nil
}

// ReadNames parses a one-name-per-row CSV (first column) into a name
// list, skipping blank rows. Used for user-supplied dictionary
// extensions.
func ReadNames(r io.Reader) ([]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var names []string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, namescan.Errorf(namescan.EINVALID, "read names: %v", err)
		}
		if len(row) == 0 {
			continue
		}
		if name := strings.TrimSpace(row[0]); name != "" {
			names = append(names, name)
		}
	}

	return names, nil
}
