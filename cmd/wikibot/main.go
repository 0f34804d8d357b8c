package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/warnespe001/wikibot"
	"github.com/warnespe001/wikibot/goquery"
	"github.com/warnespe001/wikibot/htmltomarkdown"
	wikihttp "github.com/warnespe001/wikibot/http"
	wikislog "github.com/warnespe001/wikibot/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is fine; flags and the environment still apply.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used for wiki requests. Set before calling Run() to replace
	// the HTTP fetcher, e.g. in tests.
	Fetcher wikibot.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
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
		kong.Name("wikibot"),
		kong.Description("Risk of Rain 2 wiki lookups for chat."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikibot --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if m.Fetcher == nil {
		m.Fetcher = wikihttp.NewFetcher(wikihttp.WithTimeout(cli.Timeout))
	}
	defer m.Close()

	fetcher := wikislog.NewLoggingFetcher(m.Fetcher, logger)
	deps.Logger = logger
	deps.Prefix = cli.Prefix
	deps.Resolver = wikislog.NewLoggingResolver(goquery.NewResolver(fetcher, cli.WikiURL), logger)
	deps.Pages = wikislog.NewLoggingPageService(
		goquery.NewPageService(fetcher, goquery.WithConverter(htmltomarkdown.NewConverter())),
		logger,
	)
	deps.Sections = wikislog.NewLoggingSectionLocator(
		goquery.NewSectionLocator(fetcher, wikibot.NewtAltarImage),
		logger,
	)

	return kongCtx.Run(deps)
}
