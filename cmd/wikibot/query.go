package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/warnespe001/wikibot"
)

// queryChannel identifies the terminal as a channel.
const queryChannel = "stdout"

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	handler := deps.NewHandler(&writerTransport{w: deps.Stdout})

	msg := wikibot.Message{
		Text:      strings.Join(c.Command, " "),
		SenderID:  "cli",
		ChannelID: queryChannel,
	}
	if err := handler.Handle(deps.Ctx, msg); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikibot.ErrorMessage(err))
		return err
	}
	return nil
}

// writerTransport prints replies to a writer.
type writerTransport struct {
	w io.Writer
}

func (t *writerTransport) SendText(_ context.Context, _ string, text string) error {
	_, err := fmt.Fprintln(t.w, text)
	return err
}

func (t *writerTransport) SendImage(_ context.Context, _ string, url string) error {
	_, err := fmt.Fprintln(t.w, url)
	return err
}
