package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jarvis322/namescan/csv"
	"github.com/jarvis322/namescan/goquery"
	nshttp "github.com/jarvis322/namescan/http"
	"github.com/jarvis322/namescan/index"
	"github.com/jarvis322/namescan/pdf"
	"github.com/jarvis322/namescan/scan"
	nsslog "github.com/jarvis322/namescan/slog"
	"github.com/jarvis322/namescan/sqlite"
	"github.com/jarvis322/namescan/turkish"
)

// defaultRatePerHost paces fetches against a single host. The document
// library serves large files from one origin, so stay polite.
const defaultRatePerHost = 2.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the index cache and report store.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("namescan"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'namescan --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := LoadConfig(configPath(cli.Config))
	if err != nil {
		return err
	}
	deps.Config = cfg

	if cfg.DBPath != "" && os.Getenv("NAMESCAN_DB") == "" {
		m.DBPath = cfg.DBPath
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NAMESCAN_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()
	deps.DB = m.DB

	logger := newLogger(stderr, cli.Verbose)

	timeout := nshttp.DefaultFetchTimeout
	if cli.Scan.Timeout > 0 {
		timeout = time.Duration(cli.Scan.Timeout) * time.Second
	} else if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	fetcher := nsslog.NewLoggingFetcher(nshttp.NewFetcher(nshttp.WithTimeout(timeout)), logger)
	defer fetcher.Close()

	indexURL := index.DefaultIndexURL
	if cfg.IndexURL != "" {
		indexURL = cfg.IndexURL
	}

	rate := defaultRatePerHost
	if cfg.RatePerHost > 0 {
		rate = cfg.RatePerHost
	}

	deps.Fetcher = fetcher
	deps.Extractor = pdf.NewExtractor()
	deps.Limiter = scan.NewHostLimiter(rate)
	deps.Reports = sqlite.NewReportStore(m.DB)
	deps.Writer = csv.NewWriter()
	deps.Normalize = turkish.Normalize
	deps.Resolver = nsslog.NewLoggingResolver(&index.Resolver{
		Fetcher:  fetcher,
		Links:    goquery.NewLinkExtractor(),
		Sitemap:  nshttp.NewSitemapSource(fetcher),
		Cache:    sqlite.NewIndexCache(m.DB),
		IndexURL: indexURL,
		Fallback: index.DefaultFallback(),
	}, logger)

	return kongCtx.Run(deps)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func configPath(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv("NAMESCAN_CONFIG")
}

func defaultDBPath() string {
	if path := os.Getenv("NAMESCAN_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "namescan.db"
	}
	dir := filepath.Join(home, ".namescan")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "namescan.db")
}
