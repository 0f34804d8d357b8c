package wikibot

import (
	"context"
	"strings"
)

// DefaultPrefix marks a chat message as a bot command.
const DefaultPrefix = "!"

// Command names understood by the bot.
const (
	CommandWiki   = "wiki"
	CommandNewt   = "newt"
	CommandPing   = "ping"
	CommandGitHub = "github"
	CommandGit    = "git"
	CommandHelp   = "help"
)

// Message is an inbound chat message.
type Message struct {
	Text      string
	SenderID  string
	ChannelID string
}

// Command is a parsed bot command.
type Command struct {
	Name string
	Args []string
}

// Query joins the command arguments back into free text.
func (c Command) Query() string {
	return strings.Join(c.Args, " ")
}

// ParseCommand splits a prefixed message into a command name and its
// whitespace-separated arguments. It returns false if text is not a command.
func ParseCommand(text, prefix string) (Command, bool) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, prefix) {
		return Command{}, false
	}

	tokens := strings.Fields(strings.TrimPrefix(text, prefix))
	if len(tokens) == 0 {
		return Command{}, false
	}
	return Command{
		Name: strings.ToLower(tokens[0]),
		Args: tokens[1:],
	}, true
}

// MessageHandler answers inbound chat messages.
type MessageHandler interface {
	Handle(ctx context.Context, msg Message) error
}
