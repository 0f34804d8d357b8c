// Package htmltomarkdown flattens wiki markup into chat Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/PuerkitoBio/goquery"
	"github.com/warnespe001/wikibot"
)

// Ensure Converter implements wikibot.Converter at compile time.
var _ wikibot.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to flatten wiki fragments to plain text.
// Links and emphasis are reduced to their text and images are dropped. The
// renderer applies its own emphasis around the result.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", wikibot.Errorf(wikibot.EINVALID, "empty HTML input")
	}

	cleaned, err := simplify(html)
	if err != nil {
		return "", err
	}

	result, err := c.conv.ConvertString(cleaned)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// unwrapSelector matches elements replaced by their contents.
const unwrapSelector = "a, b, strong, i, em, u, s, strike, del, code"

// simplify unwraps links and inline formatting and removes images from an
// HTML fragment.
func simplify(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", wikibot.Errorf(wikibot.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("img").Remove()
	doc.Find(unwrapSelector).Each(func(_ int, el *goquery.Selection) {
		el.ReplaceWithSelection(el.Contents())
	})

	return doc.Find("body").Html()
}
