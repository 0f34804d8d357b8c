package goquery

import (
	"context"
	"strings"
	"unicode"

	"github.com/warnespe001/wikibot"
)

// DefaultWikiURL is the base URL of the Risk of Rain 2 wiki.
const DefaultWikiURL = "https://riskofrain2.fandom.com"

const resultLinkSelector = ".unified-search__result__link"

// Ensure Resolver implements wikibot.SearchResolver at compile time.
var _ wikibot.SearchResolver = (*Resolver)(nil)

// Resolver finds article URLs through the wiki's internal search page.
type Resolver struct {
	fetcher wikibot.Fetcher
	baseURL string
}

// NewResolver creates a Resolver searching the wiki at baseURL.
// An empty baseURL selects DefaultWikiURL.
func NewResolver(fetcher wikibot.Fetcher, baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = DefaultWikiURL
	}
	return &Resolver{
		fetcher: fetcher,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// SearchURL returns the search page URL for query.
func (r *Resolver) SearchURL(query string) string {
	return r.baseURL + "/wiki/Special:Search?query=" + wikibot.Sanitize(query) +
		"&scope=internal&navigationSearch=true"
}

// ResolveURL returns the URL of the first search result for query.
func (r *Resolver) ResolveURL(ctx context.Context, query string) (string, error) {
	doc, err := fetchDocument(ctx, r.fetcher, r.SearchURL(query))
	if err != nil {
		return "", wikibot.WrapError(wikibot.ENORESULT, query, err, "search for %q failed", query)
	}

	link := doc.Find(resultLinkSelector).First()
	if link.Length() == 0 {
		return "", wikibot.WrapError(wikibot.ENORESULT, query, nil, "no wiki page found for %q", query)
	}

	url := stripSpace(link.Text())
	if url == "" {
		url = strings.TrimSpace(link.AttrOr("href", ""))
	}
	if url == "" {
		return "", wikibot.WrapError(wikibot.ENORESULT, query, nil, "search result for %q has no URL", query)
	}
	return url, nil
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
