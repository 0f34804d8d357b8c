package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/warnespe001/wikibot"
	"github.com/warnespe001/wikibot/bot"
	wikislog "github.com/warnespe001/wikibot/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Prefix   string
	Resolver wikibot.SearchResolver
	Pages    wikibot.PageService
	Sections wikibot.SectionLocator
}

// NewHandler builds a command handler replying through transport.
func (d *Dependencies) NewHandler(transport wikibot.Transport) *bot.Handler {
	return &bot.Handler{
		Resolver:  d.Resolver,
		Pages:     d.Pages,
		Sections:  d.Sections,
		Transport: wikislog.NewLoggingTransport(transport, d.Logger),
		Logger:    d.Logger,
		Prefix:    d.Prefix,
	}
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	WikiURL string        `name:"wiki-url" env:"WIKIBOT_WIKI_URL" default:"https://riskofrain2.fandom.com" help:"Base URL of the wiki"`
	Prefix  string        `env:"WIKIBOT_PREFIX" default:"!" help:"Command prefix"`
	Timeout time.Duration `env:"WIKIBOT_TIMEOUT" default:"10s" help:"HTTP timeout per wiki request"`
	Debug   bool          `help:"Enable debug logging"`

	Serve ServeCmd `cmd:"" help:"Connect to Discord and answer commands"`
	Query QueryCmd `cmd:"" help:"Run one command and print the reply"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Token          string        `env:"DISCORD_TOKEN" required:"" help:"Discord bot token"`
	Channels       []string      `env:"WIKIBOT_CHANNELS" sep:"," help:"Channel IDs the bot answers in (default: all)"`
	ReconnectGrace time.Duration `name:"reconnect-grace" env:"WIKIBOT_RECONNECT_GRACE" default:"5m" help:"Exit if Discord stays disconnected this long"`
}

// QueryCmd is the "query" subcommand.
type QueryCmd struct {
	Command []string `arg:"" passthrough:"" help:"Command text, e.g. '!wiki commando'"`
}
