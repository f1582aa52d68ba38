package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/goquery"
	"github.com/fwojciec/pagechat/htmltomarkdown"
	pchttp "github.com/fwojciec/pagechat/http"
	"github.com/fwojciec/pagechat/readability"
	"github.com/fwojciec/pagechat/rod"
	"github.com/fwojciec/pagechat/session"
	pcslog "github.com/fwojciec/pagechat/slog"
	"github.com/fwojciec/pagechat/sqlite"
	"github.com/fwojciec/pagechat/trafilatura"
	"github.com/google/uuid"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database holding conversation history.
	DB *sqlite.DB

	// Fetcher used for the current command, closed by Close.
	Fetcher pagechat.Fetcher
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Fetcher != nil {
		err = m.Fetcher.Close()
	}
	if m.DB != nil {
		if dbErr := m.DB.Close(); dbErr != nil && err == nil {
			err = dbErr
		}
	}
	return err
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagechat"),
		kong.Description("Ask questions about the content of a web page."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagechat --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]
	pageURL := cli.pageURL(cmd)

	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	deps.SessionID = cli.Session
	if deps.SessionID == "" {
		deps.SessionID = uuid.NewString()
	}

	m.DB = sqlite.NewDB(cli.DB)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGECHAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
	}
	defer m.Close()
	deps.Store = pcslog.NewLoggingHistoryStore(sqlite.NewHistoryStore(m.DB), deps.Logger)

	// Wire command-specific dependencies based on command
	if cmd == "extract" || cmd == "ask" || cmd == "chat" {
		fetcher, err := newFetcher(cli)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed to use --render")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		m.Fetcher = fetcher
		deps.Fetcher = pcslog.NewLoggingFetcher(fetcher, deps.Logger)
		deps.Extractor = pcslog.NewLoggingExtractor(newExtractor(cli.Strategy, pageURL), deps.Logger)
	}

	if cmd == "extract" {
		deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithBaseURL(pageURL))
	}

	if cmd == "ask" || cmd == "chat" {
		if cli.Endpoint == "" {
			fmt.Fprintln(stderr, "PAGECHAT_ENDPOINT environment variable not set. Point it at the completion service, e.g. https://chat.example.com")
			return pagechat.Errorf(pagechat.EINVALID, "PAGECHAT_ENDPOINT not set")
		}
		deps.Client = pcslog.NewLoggingChatClient(pchttp.NewChatClient(cli.Endpoint), deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newFetcher returns a rendering fetcher when --render is set and a plain
// HTTP fetcher otherwise.
func newFetcher(cli *CLI) (pagechat.Fetcher, error) {
	if cli.Render {
		return rod.NewFetcher(
			rod.WithFetchTimeout(cli.Timeout+cli.Settle),
			rod.WithSettleDelay(cli.Settle),
		)
	}
	return pchttp.NewFetcher(pchttp.WithTimeout(cli.Timeout)), nil
}

// newExtractor returns the extractor for the named strategy.
func newExtractor(strategy, pageURL string) pagechat.Extractor {
	switch strategy {
	case "readability":
		return readability.NewExtractor(readability.WithPageURL(pageURL))
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

// newSession returns a session for pageURL with its stored history loaded.
func newSession(deps *Dependencies, pageURL string) *session.Session {
	s := session.New(session.Config{
		PageURL:   pageURL,
		Key:       pagechat.HistoryKey(deps.SessionID, pageURL),
		Fetcher:   deps.Fetcher,
		Extractor: deps.Extractor,
		Client:    deps.Client,
		Store:     deps.Store,
		Logger:    deps.Logger,
	})
	s.Load(deps.Ctx)
	return s
}

// printMessage writes one history entry.
func printMessage(w io.Writer, msg pagechat.Message) {
	fmt.Fprintf(w, "%s: %s\n", msg.Role, msg.Content)
}
