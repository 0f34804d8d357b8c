package discord

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
	"github.com/warnespe001/wikibot"
)

// Listener turns Discord message events into wikibot messages.
// Messages from bots and from channels outside the allow-list are dropped.
type Listener struct {
	ctx      context.Context
	handler  wikibot.MessageHandler
	channels map[string]bool
	logger   *slog.Logger
}

// NewListener creates a Listener. An empty channel list allows every channel.
func NewListener(ctx context.Context, handler wikibot.MessageHandler, channels []string, logger *slog.Logger) *Listener {
	allow := make(map[string]bool, len(channels))
	for _, ch := range channels {
		if ch != "" {
			allow[ch] = true
		}
	}
	return &Listener{
		ctx:      ctx,
		handler:  handler,
		channels: allow,
		logger:   logger,
	}
}

// Allowed reports whether the bot may answer in channelID.
func (l *Listener) Allowed(channelID string) bool {
	return len(l.channels) == 0 || l.channels[channelID]
}

// OnMessageCreate is registered with the discordgo session.
func (l *Listener) OnMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil {
		return
	}
	if m.Author.Bot || (s != nil && s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID) {
		return
	}
	if !l.Allowed(m.ChannelID) {
		return
	}

	msg := wikibot.Message{
		Text:      m.Content,
		SenderID:  m.Author.ID,
		ChannelID: m.ChannelID,
	}
	// Delivery failures are already logged by the transport.
	if err := l.handler.Handle(l.ctx, msg); err != nil {
		l.logger.Debug("handle message", "channel", m.ChannelID, "sender", m.Author.ID, "err", err)
	}
}
