package mock

import (
	"context"
	"sync"

	"github.com/warnespe001/wikibot"
)

var _ wikibot.Transport = (*Transport)(nil)

// Transport is a mock implementation of wikibot.Transport.
type Transport struct {
	SendTextFn  func(ctx context.Context, channelID, text string) error
	SendImageFn func(ctx context.Context, channelID, url string) error
}

func (t *Transport) SendText(ctx context.Context, channelID, text string) error {
	return t.SendTextFn(ctx, channelID, text)
}

func (t *Transport) SendImage(ctx context.Context, channelID, url string) error {
	return t.SendImageFn(ctx, channelID, url)
}

// Sent is a message recorded by a RecordingTransport.
type Sent struct {
	ChannelID string
	Text      string
	ImageURL  string
}

// RecordingTransport records every message it is asked to send.
type RecordingTransport struct {
	mu   sync.Mutex
	sent []Sent
}

var _ wikibot.Transport = (*RecordingTransport)(nil)

func (t *RecordingTransport) SendText(_ context.Context, channelID, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = append(t.sent, Sent{ChannelID: channelID, Text: text})
	return nil
}

func (t *RecordingTransport) SendImage(_ context.Context, channelID, url string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = append(t.sent, Sent{ChannelID: channelID, ImageURL: url})
	return nil
}

// Sent returns a copy of the recorded messages in send order.
func (t *RecordingTransport) Sent() []Sent {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Sent(nil), t.sent...)
}
