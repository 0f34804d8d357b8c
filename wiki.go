package wikibot

import "context"

// Newt altar lookup parameters.
const (
	NewtAltarSection = "Newt_Altars"
	NewtAltarImage   = "Newt"
)

// SearchResolver maps free-text queries to wiki article URLs.
type SearchResolver interface {
	// ResolveURL searches the wiki and returns the first result's URL.
	// Returns ENORESULT if the search yields nothing usable.
	ResolveURL(ctx context.Context, query string) (string, error)
}

// PageService scrapes wiki articles into records.
type PageService interface {
	// FetchPage fetches the article and extracts a record for its category.
	// Pages of unknown category yield a record with no fields, not an error.
	// Returns EFETCH on transport failure and EMALFORMED on unexpected tables.
	FetchPage(ctx context.Context, url string) (*PageRecord, error)
}

// SectionLocator extracts a named subsection from environment articles.
type SectionLocator interface {
	// LocateSection returns the ordered list following the section anchor
	// and the images whose key contains the marker.
	// Returns EWRONGPAGE if the page is not an environment and ENOSECTION
	// if the anchor or its list is absent.
	LocateSection(ctx context.Context, url string, anchorID string) (*PageRecord, error)
}

// Transport delivers messages to chat channels.
type Transport interface {
	SendText(ctx context.Context, channelID, text string) error
	SendImage(ctx context.Context, channelID, url string) error
}
