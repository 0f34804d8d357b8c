// Package discord connects the bot to Discord through discordgo.
package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/warnespe001/wikibot"
)

// MaxMessageLength is Discord's limit on message content, in characters.
const MaxMessageLength = 2000

// Session is the subset of *discordgo.Session used to send messages.
type Session interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Ensure Transport implements wikibot.Transport at compile time.
var _ wikibot.Transport = (*Transport)(nil)

// Transport sends bot replies to Discord channels.
type Transport struct {
	session Session
}

// NewTransport creates a Transport sending through session.
func NewTransport(session Session) *Transport {
	return &Transport{session: session}
}

// SendText posts text, split into several messages if it exceeds the limit.
func (t *Transport) SendText(ctx context.Context, channelID, text string) error {
	for _, part := range splitMessage(text, MaxMessageLength) {
		if _, err := t.session.ChannelMessageSend(channelID, part, discordgo.WithContext(ctx)); err != nil {
			return err
		}
	}
	return nil
}

// SendImage posts url as an embedded image.
func (t *Transport) SendImage(ctx context.Context, channelID, url string) error {
	embed := &discordgo.MessageEmbed{
		Image: &discordgo.MessageEmbedImage{URL: url},
	}
	_, err := t.session.ChannelMessageSendEmbed(channelID, embed, discordgo.WithContext(ctx))
	return err
}

// splitMessage breaks text into parts of at most limit runes, preferring
// line boundaries.
func splitMessage(text string, limit int) []string {
	if len([]rune(text)) <= limit {
		return []string{text}
	}

	var parts []string
	var cur strings.Builder
	curLen := 0
	flush := func() {
		if curLen > 0 {
			parts = append(parts, cur.String())
			cur.Reset()
			curLen = 0
		}
	}

	for _, line := range strings.SplitAfter(text, "\n") {
		runes := []rune(line)
		if curLen+len(runes) > limit {
			flush()
		}
		for len(runes) > limit {
			parts = append(parts, string(runes[:limit]))
			runes = runes[limit:]
		}
		cur.WriteString(string(runes))
		curLen += len(runes)
	}
	flush()
	return parts
}
