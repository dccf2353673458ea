package main

import (
	"fmt"

	"github.com/jarvis322/namescan"
)

// Run executes the history list command.
func (c *HistoryListCmd) Run(deps *Dependencies) error {
	summaries, err := deps.Reports.ListReports(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namescan.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No reports stored. Use 'namescan scan' to create one.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d documents  %d failed  %d matches\n",
			s.ID, s.StartedAt.Format("2006-01-02 15:04"), s.Documents, s.Failed, s.Total)
	}

	return nil
}

// Run executes the history show command.
func (c *HistoryShowCmd) Run(deps *Dependencies) error {
	report, err := deps.Reports.FindReportByID(deps.Ctx, c.ID)
	if err != nil {
		if namescan.ErrorCode(err) == namescan.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: report %q not found. Use 'namescan history' to list reports.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", namescan.ErrorMessage(err))
		}
		return err
	}

	return deps.Writer.WriteReport(deps.Stdout, report)
}
