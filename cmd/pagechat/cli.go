package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagechat"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	SessionID string
	Fetcher   pagechat.Fetcher
	Extractor pagechat.Extractor
	Converter pagechat.Converter
	Client    pagechat.ChatClient
	Store     pagechat.HistoryStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Endpoint string        `env:"PAGECHAT_ENDPOINT" help:"Base URL of the completion service"`
	DB       string        `env:"PAGECHAT_DB" default:":memory:" help:"History database path"`
	Session  string        `env:"PAGECHAT_SESSION" help:"Session ID scoping stored history (default: new session)"`
	Render   bool          `help:"Render pages in headless Chrome before extraction"`
	Settle   time.Duration `default:"1s" help:"Wait after page load before extraction (with --render)"`
	Timeout  time.Duration `default:"10s" help:"Page fetch timeout"`
	Strategy string        `default:"selectors" enum:"selectors,readability,trafilatura" help:"Content extraction strategy (selectors, readability, trafilatura)"`
	Verbose  bool          `short:"v" help:"Log operations to stderr"`

	Extract ExtractCmd `cmd:"" help:"Print the readable content of a page"`
	Ask     AskCmd     `cmd:"" help:"Ask a single question about a page"`
	Chat    ChatCmd    `cmd:"" help:"Start an interactive conversation about a page"`
	History HistoryCmd `cmd:"" help:"Show the stored conversation for a page (needs PAGECHAT_DB and PAGECHAT_SESSION set; the defaults keep nothing between runs)"`
	Clear   ClearCmd   `cmd:"" help:"Delete the stored conversation for a page (needs PAGECHAT_DB and PAGECHAT_SESSION set; the defaults keep nothing between runs)"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Markdown bool   `short:"m" help:"Print the extracted region as Markdown"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Question string `arg:"" help:"Question to ask about the page"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// pageURL returns the URL argument of the named command.
func (c *CLI) pageURL(cmd string) string {
	switch cmd {
	case "extract":
		return c.Extract.URL
	case "ask":
		return c.Ask.URL
	case "chat":
		return c.Chat.URL
	case "history":
		return c.History.URL
	case "clear":
		return c.Clear.URL
	}
	return ""
}
