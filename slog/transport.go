package slog

import (
	"context"
	"log/slog"

	"github.com/warnespe001/wikibot"
)

// Ensure LoggingTransport implements wikibot.Transport.
var _ wikibot.Transport = (*LoggingTransport)(nil)

// LoggingTransport wraps a Transport and logs failed sends.
type LoggingTransport struct {
	next   wikibot.Transport
	logger *slog.Logger
}

// NewLoggingTransport creates a new LoggingTransport.
func NewLoggingTransport(next wikibot.Transport, logger *slog.Logger) *LoggingTransport {
	return &LoggingTransport{next: next, logger: logger}
}

// SendText delegates to the wrapped transport.
func (t *LoggingTransport) SendText(ctx context.Context, channelID, text string) error {
	err := t.next.SendText(ctx, channelID, text)
	if err != nil {
		t.logger.Error("send text", "channel", channelID, "bytes", len(text), "err", err)
	}
	return err
}

// SendImage delegates to the wrapped transport.
func (t *LoggingTransport) SendImage(ctx context.Context, channelID, url string) error {
	err := t.next.SendImage(ctx, channelID, url)
	if err != nil {
		t.logger.Error("send image", "channel", channelID, "url", url, "err", err)
	}
	return err
}
