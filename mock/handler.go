package mock

import (
	"context"

	"github.com/warnespe001/wikibot"
)

var _ wikibot.MessageHandler = (*MessageHandler)(nil)

// MessageHandler is a mock implementation of wikibot.MessageHandler.
type MessageHandler struct {
	HandleFn func(ctx context.Context, msg wikibot.Message) error
}

func (h *MessageHandler) Handle(ctx context.Context, msg wikibot.Message) error {
	return h.HandleFn(ctx, msg)
}
