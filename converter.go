package wikibot

// Converter converts HTML fragments to chat-friendly Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	Convert(html string) (string, error)
}
