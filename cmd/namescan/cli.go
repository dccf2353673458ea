package main

import (
	"context"
	"io"

	"github.com/jarvis322/namescan"
	"github.com/jarvis322/namescan/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	DB        *sqlite.DB
	Config    *Config
	Fetcher   namescan.Fetcher
	Extractor namescan.Extractor
	Resolver  namescan.IndexResolver
	Limiter   namescan.HostLimiter
	Reports   namescan.ReportStore
	Writer    namescan.ReportWriter
	Normalize namescan.Normalizer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Path to a YAML config file" type:"path"`
	Verbose bool   `short:"v" help:"Log fetch and resolution details"`

	Docs    DocsCmd    `cmd:"" help:"List documents in the remote index"`
	Scan    ScanCmd    `cmd:"" help:"Scan documents for dictionary names"`
	Names   NamesCmd   `cmd:"" help:"Show the name dictionary and search links"`
	History HistoryCmd `cmd:"" help:"Inspect stored reports"`
}

// DocsCmd is the "docs" subcommand.
type DocsCmd struct {
	Refresh bool `short:"r" help:"Bypass the cached index and refetch"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	All         bool     `short:"a" help:"Scan every document in the index" xor:"selection"`
	Doc         []int    `short:"d" help:"Document number from 'namescan docs' (repeatable)" xor:"selection"`
	Match       string   `short:"m" help:"Scan documents whose title contains this text" xor:"selection"`
	Name        []string `short:"n" help:"Additional name to search for (repeatable)"`
	NamesFile   string   `help:"CSV file with one name per row, first column" type:"path"`
	NoBase      bool     `help:"Skip the built-in name dictionary"`
	Window      int      `short:"w" help:"Context radius in characters around each match"`
	Timeout     int      `short:"t" help:"Per-request timeout in seconds"`
	Concurrency int      `short:"c" help:"Concurrent document limit"`
	Dedupe      bool     `help:"Skip documents with identical content"`
	Out         string   `short:"o" help:"Write the CSV report to this file instead of stdout" type:"path"`
}

// NamesCmd is the "names" subcommand.
type NamesCmd struct {
	Name      []string `short:"n" help:"Additional name to include (repeatable)"`
	NamesFile string   `help:"CSV file with one name per row, first column" type:"path"`
	Links     bool     `short:"l" help:"Include a web search link per name"`
}

// HistoryCmd groups the report inspection subcommands.
type HistoryCmd struct {
	List HistoryListCmd `cmd:"" default:"1" help:"List stored reports, newest first"`
	Show HistoryShowCmd `cmd:"" help:"Print a stored report as CSV"`
}

// HistoryListCmd is the "history list" subcommand.
type HistoryListCmd struct{}

// HistoryShowCmd is the "history show" subcommand.
type HistoryShowCmd struct {
	ID string `arg:"" help:"Report ID from 'namescan history'"`
}
