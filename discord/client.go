package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Client owns the Discord gateway connection.
type Client struct {
	session *discordgo.Session
	states  chan bool
}

// NewClient creates a Client authenticating with a bot token.
func NewClient(token string) (*Client, error) {
	if token == "" {
		return nil, fmt.Errorf("discord token required")
	}
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentGuildMessages | discordgo.IntentMessageContent

	c := &Client{session: session, states: make(chan bool, 16)}
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Connect) { c.report(true) })
	session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) { c.report(false) })
	return c, nil
}

// report records a gateway state change, dropping it if nobody is watching.
func (c *Client) report(up bool) {
	select {
	case c.states <- up:
	default:
	}
}

// Watch blocks until ctx is done, or returns an error once the gateway has
// been disconnected for longer than grace.
func (c *Client) Watch(ctx context.Context, grace time.Duration, logger *slog.Logger) error {
	return WatchConnection(ctx, c.states, grace, logger)
}

// Transport returns a Transport sending through this client's session.
func (c *Client) Transport() *Transport {
	return NewTransport(c.session)
}

// Open registers the listener and connects to the gateway.
func (c *Client) Open(l *Listener) error {
	c.session.AddHandler(l.OnMessageCreate)
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("failed to connect to discord: %w", err)
	}
	return nil
}

// Username returns the bot account's name and id once connected.
func (c *Client) Username() (name, id string) {
	if c.session.State == nil || c.session.State.User == nil {
		return "", ""
	}
	return c.session.State.User.Username, c.session.State.User.ID
}

// Close disconnects from the gateway.
func (c *Client) Close() error {
	return c.session.Close()
}
