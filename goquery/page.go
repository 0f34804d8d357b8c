package goquery

import (
	"context"

	"github.com/warnespe001/wikibot"
)

// Ensure PageService implements wikibot.PageService at compile time.
var _ wikibot.PageService = (*PageService)(nil)

// PageService scrapes survivor and item articles.
type PageService struct {
	fetcher   wikibot.Fetcher
	converter wikibot.Converter
}

// PageOption configures a PageService.
type PageOption func(*PageService)

// WithConverter flattens item descriptions through conv instead of taking
// their plain text.
func WithConverter(conv wikibot.Converter) PageOption {
	return func(s *PageService) {
		s.converter = conv
	}
}

// NewPageService creates a PageService that fetches pages with fetcher.
func NewPageService(fetcher wikibot.Fetcher, opts ...PageOption) *PageService {
	s := &PageService{fetcher: fetcher}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FetchPage fetches url and extracts a record for its category.
func (s *PageService) FetchPage(ctx context.Context, url string) (*wikibot.PageRecord, error) {
	doc, err := fetchDocument(ctx, s.fetcher, url)
	if err != nil {
		return nil, err
	}

	tags := extractCategories(doc)
	record := &wikibot.PageRecord{
		Category:   wikibot.ClassifyCategories(tags),
		Categories: tags,
		SourceURL:  url,
		Fields:     make(map[string]string),
	}

	switch record.Category {
	case wikibot.CategorySurvivor:
		record.Fields = wikibot.ExtractSurvivorFields(extractRows(doc, nil))

	case wikibot.CategoryItem:
		fields, stats, err := wikibot.ExtractItemFields(extractRows(doc, s.converter))
		if err != nil {
			if e, ok := err.(*wikibot.Error); ok {
				e.Subject = url
			}
			return nil, err
		}
		record.Fields = fields
		record.Stats = stats

	default:
		// Pages outside the known categories, including a page tagged with
		// the synthetic located-section tag, yield no fields.
		record.Category = wikibot.CategoryUnknown
	}

	return record, nil
}
