// Package bot runs chat commands through the wiki pipeline.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/warnespe001/wikibot"
)

// DefaultSourceURL is the bot's source repository, sent for the github command.
const DefaultSourceURL = "https://github.com/warnespe001/wikibot"

// Ensure Handler implements wikibot.MessageHandler at compile time.
var _ wikibot.MessageHandler = (*Handler)(nil)

// Handler parses chat messages and answers wiki commands.
// It holds no per-command state, so one Handler serves concurrent messages.
type Handler struct {
	Resolver  wikibot.SearchResolver
	Pages     wikibot.PageService
	Sections  wikibot.SectionLocator
	// Transport delivers replies. Wrap it in slog.LoggingTransport to log
	// delivery failures.
	Transport wikibot.Transport

	// Logger receives command and pipeline errors. Defaults to slog.Default().
	Logger *slog.Logger

	// Prefix marks commands. Defaults to wikibot.DefaultPrefix.
	Prefix string

	// SourceURL is linked by the github command. Defaults to DefaultSourceURL.
	SourceURL string
}

// Handle answers msg if it is a command. Pipeline failures are logged and
// turned into short replies or silence; the returned error only reports
// failures to deliver the primary reply.
func (h *Handler) Handle(ctx context.Context, msg wikibot.Message) error {
	cmd, ok := wikibot.ParseCommand(msg.Text, h.Prefix)
	if !ok {
		return nil
	}

	logger := h.logger().With(
		"request_id", uuid.NewString(),
		"cmd", cmd.Name,
		"channel", msg.ChannelID,
		"sender", msg.SenderID,
	)
	logger.Info("received command", "args", cmd.Args)

	switch cmd.Name {
	case wikibot.CommandWiki:
		return h.wiki(ctx, logger, msg.ChannelID, cmd)
	case wikibot.CommandNewt:
		return h.newt(ctx, logger, msg.ChannelID, cmd)
	case wikibot.CommandPing:
		return h.reply(ctx, msg.ChannelID, "Pong!")
	case wikibot.CommandGitHub, wikibot.CommandGit:
		return h.reply(ctx, msg.ChannelID, fmt.Sprintf("You can find the source code for this bot at %s !", h.sourceURL()))
	case wikibot.CommandHelp:
		return h.reply(ctx, msg.ChannelID, h.help())
	default:
		logger.Info("unknown command")
		return nil
	}
}

func (h *Handler) wiki(ctx context.Context, logger *slog.Logger, channelID string, cmd wikibot.Command) error {
	query := cmd.Query()
	if query == "" {
		return h.reply(ctx, channelID, h.usage(wikibot.CommandWiki))
	}

	url, err := h.Resolver.ResolveURL(ctx, query)
	if err != nil {
		return h.fail(ctx, logger, channelID, query, err)
	}

	record, err := h.Pages.FetchPage(ctx, url)
	if err != nil {
		return h.fail(ctx, logger, channelID, query, err)
	}

	return h.send(ctx, logger, channelID, record)
}

func (h *Handler) newt(ctx context.Context, logger *slog.Logger, channelID string, cmd wikibot.Command) error {
	query := cmd.Query()
	if query == "" {
		return h.reply(ctx, channelID, h.usage(wikibot.CommandNewt))
	}

	url, err := h.Resolver.ResolveURL(ctx, query)
	if err != nil {
		return h.fail(ctx, logger, channelID, query, err)
	}

	record, err := h.Sections.LocateSection(ctx, url, wikibot.NewtAltarSection)
	if err != nil {
		return h.fail(ctx, logger, channelID, query, err)
	}

	return h.send(ctx, logger, channelID, record)
}

// send renders record and delivers the text followed by each image.
// Image failures do not stop the remaining images. Delivery errors are
// logged by the transport decorator, not here.
func (h *Handler) send(ctx context.Context, logger *slog.Logger, channelID string, record *wikibot.PageRecord) error {
	text := wikibot.Render(record)
	if text == "" {
		logger.Debug("nothing to send", "url", record.SourceURL, "categories", record.Categories)
		return nil
	}

	if err := h.Transport.SendText(ctx, channelID, text); err != nil {
		return err
	}

	for _, img := range record.Images {
		_ = h.Transport.SendImage(ctx, channelID, img)
	}
	return nil
}

// fail logs a pipeline error and sends a short explanation for the errors
// a user can act on. Other errors are swallowed after logging.
func (h *Handler) fail(ctx context.Context, logger *slog.Logger, channelID, query string, err error) error {
	logger.Error("command failed",
		"query", query,
		"subject", wikibot.ErrorSubject(err),
		"code", wikibot.ErrorCode(err),
		"err", err,
	)

	var text string
	switch wikibot.ErrorCode(err) {
	case wikibot.ENORESULT:
		text = fmt.Sprintf("No wiki page found for %q.", query)
	case wikibot.EWRONGPAGE:
		text = fmt.Sprintf("%q is not an environment page.", query)
	case wikibot.ENOSECTION:
		text = fmt.Sprintf("No newt altars are listed for %q.", query)
	default:
		return nil
	}
	return h.reply(ctx, channelID, text)
}

func (h *Handler) reply(ctx context.Context, channelID, text string) error {
	return h.Transport.SendText(ctx, channelID, text)
}

func (h *Handler) usage(name string) string {
	return fmt.Sprintf("Usage: %s%s <query>", h.prefix(), name)
}

func (h *Handler) help() string {
	p := h.prefix()
	lines := []string{
		p + "wiki <query> - look up a survivor or item",
		p + "newt <stage> - list newt altar locations on a stage",
		p + "ping - check the bot is alive",
		p + "github - link to the bot's source code",
	}
	return strings.Join(lines, "\n")
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

func (h *Handler) prefix() string {
	if h.Prefix == "" {
		return wikibot.DefaultPrefix
	}
	return h.Prefix
}

func (h *Handler) sourceURL() string {
	if h.SourceURL == "" {
		return DefaultSourceURL
	}
	return h.SourceURL
}
