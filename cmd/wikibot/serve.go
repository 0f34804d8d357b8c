package main

import (
	"fmt"

	"github.com/warnespe001/wikibot/discord"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is cancelled
// or the gateway stays disconnected past the reconnect grace period.
func (c *ServeCmd) Run(deps *Dependencies) error {
	client, err := discord.NewClient(c.Token)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	g, ctx := errgroup.WithContext(deps.Ctx)

	handler := deps.NewHandler(client.Transport())
	listener := discord.NewListener(ctx, handler, c.Channels, deps.Logger)

	if err := client.Open(listener); err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: check DISCORD_TOKEN and that the message content intent is enabled")
		return err
	}

	name, id := client.Username()
	deps.Logger.Info("connected", "user", name, "id", id, "channels", c.Channels)

	g.Go(func() error {
		return client.Watch(ctx, c.ReconnectGrace, deps.Logger)
	})
	g.Go(func() error {
		<-ctx.Done()
		deps.Logger.Info("shutting down")
		return client.Close()
	})

	return g.Wait()
}
