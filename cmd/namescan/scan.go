package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jarvis322/namescan"
	"github.com/jarvis322/namescan/csv"
	"github.com/jarvis322/namescan/scan"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	dict, err := c.dictionary(deps.Config)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namescan.ErrorMessage(err))
		return err
	}
	if dict.Len() == 0 {
		fmt.Fprintf(deps.Stderr, "error: no names to search for\n")
		return namescan.Errorf(namescan.EINVALID, "no names to search for")
	}

	docs, status := deps.Resolver.Resolve(deps.Ctx)
	fmt.Fprintf(deps.Stderr, "index: %s\n", status)

	selected, err := c.selectDocuments(docs, deps.Normalize)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namescan.ErrorMessage(err))
		return err
	}

	window := c.Window
	if window <= 0 {
		window = deps.Config.Window
	}
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = deps.Config.Concurrency
	}

	runner := &scan.Runner{
		Fetcher:     deps.Fetcher,
		Extractor:   deps.Extractor,
		Matcher:     scan.NewMatcher(dict, deps.Normalize, scan.WithWindow(window)),
		Limiter:     deps.Limiter,
		RetryDelays: scan.DefaultRetryDelays(),
		Concurrency: concurrency,
		Dedupe:      c.Dedupe,
	}

	fmt.Fprintf(deps.Stderr, "scanning %d documents for %d names\n", len(selected), dict.Len())
	report := runner.Run(deps.Ctx, selected)

	for _, r := range report.Results {
		if r.Failed() {
			fmt.Fprintf(deps.Stderr, "failed: %s: %s\n", r.Document.Title, namescan.ErrorMessage(r.Err))
		}
	}

	if err := deps.Reports.SaveReport(deps.Ctx, report); err != nil {
		fmt.Fprintf(deps.Stderr, "warning: report not saved: %s\n", namescan.ErrorMessage(err))
	} else {
		fmt.Fprintf(deps.Stderr, "saved report %s\n", report.ID)
	}

	out := io.Writer(deps.Stdout)
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return namescan.Errorf(namescan.EINTERNAL, "cannot create output file %q: %v", c.Out, err)
		}
		defer f.Close()
		out = f
	}
	if err := deps.Writer.WriteReport(out, report); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", namescan.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "%d matches across %d documents (%d failed)\n",
		report.Total(), len(selected), report.FailedCount())
	return nil
}

// dictionary assembles the name set from the built-in dataset, config
// defaults, flags and an optional CSV file.
func (c *ScanCmd) dictionary(cfg *Config) (*namescan.Dictionary, error) {
	dict := namescan.NewDictionary()
	if !c.NoBase {
		for _, name := range namescan.BaseNames() {
			dict.Add(name)
		}
	}
	for _, name := range cfg.Names {
		dict.Add(name)
	}
	for _, path := range []string{cfg.NamesFile, c.NamesFile} {
		if path == "" {
			continue
		}
		names, err := readNamesFile(path)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			dict.Add(name)
		}
	}
	for _, name := range c.Name {
		dict.Add(name)
	}
	return dict, nil
}

// selectDocuments picks the documents to scan based on the selection
// flags. Document numbers are 1-based, as printed by the docs command.
func (c *ScanCmd) selectDocuments(docs []namescan.Document, fold namescan.Normalizer) ([]namescan.Document, error) {
	switch {
	case c.All:
		return docs, nil
	case len(c.Doc) > 0:
		selected := make([]namescan.Document, 0, len(c.Doc))
		for _, n := range c.Doc {
			if n < 1 || n > len(docs) {
				return nil, namescan.Errorf(namescan.EINVALID, "document number %d out of range (1-%d)", n, len(docs))
			}
			selected = append(selected, docs[n-1])
		}
		return selected, nil
	case c.Match != "":
		want := fold(c.Match)
		if want == "" {
			want = strings.ToLower(c.Match)
		}
		var selected []namescan.Document
		for _, doc := range docs {
			if strings.Contains(fold(doc.Title), want) {
				selected = append(selected, doc)
			}
		}
		if len(selected) == 0 {
			return nil, namescan.Errorf(namescan.ENOTFOUND, "no document title contains %q", c.Match)
		}
		return selected, nil
	default:
		return nil, namescan.Errorf(namescan.EINVALID, "select documents with --all, --doc or --match")
	}
}

func readNamesFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, namescan.Errorf(namescan.EINVALID, "cannot open names file %q: %v", path, err)
	}
	defer f.Close()
	names, err := csv.ReadNames(f)
	if err != nil {
		return nil, namescan.Errorf(namescan.EINVALID, "cannot read names file %q: %v", path, err)
	}
	return names, nil
}
