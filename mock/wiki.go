package mock

import (
	"context"

	"github.com/warnespe001/wikibot"
)

// Compile-time interface verification.
var (
	_ wikibot.SearchResolver = (*SearchResolver)(nil)
	_ wikibot.PageService    = (*PageService)(nil)
	_ wikibot.SectionLocator = (*SectionLocator)(nil)
)

// SearchResolver is a mock implementation of wikibot.SearchResolver.
type SearchResolver struct {
	ResolveURLFn func(ctx context.Context, query string) (string, error)
}

func (r *SearchResolver) ResolveURL(ctx context.Context, query string) (string, error) {
	return r.ResolveURLFn(ctx, query)
}

// PageService is a mock implementation of wikibot.PageService.
type PageService struct {
	FetchPageFn func(ctx context.Context, url string) (*wikibot.PageRecord, error)
}

func (s *PageService) FetchPage(ctx context.Context, url string) (*wikibot.PageRecord, error) {
	return s.FetchPageFn(ctx, url)
}

// SectionLocator is a mock implementation of wikibot.SectionLocator.
type SectionLocator struct {
	LocateSectionFn func(ctx context.Context, url string, anchorID string) (*wikibot.PageRecord, error)
}

func (l *SectionLocator) LocateSection(ctx context.Context, url string, anchorID string) (*wikibot.PageRecord, error) {
	return l.LocateSectionFn(ctx, url, anchorID)
}
