package mock

import "github.com/warnespe001/wikibot"

var _ wikibot.Converter = (*Converter)(nil)

// Converter is a mock implementation of wikibot.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
