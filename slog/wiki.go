package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/warnespe001/wikibot"
)

// Compile-time interface verification.
var (
	_ wikibot.SearchResolver = (*LoggingResolver)(nil)
	_ wikibot.PageService    = (*LoggingPageService)(nil)
	_ wikibot.SectionLocator = (*LoggingSectionLocator)(nil)
)

// LoggingResolver wraps a SearchResolver with logging.
type LoggingResolver struct {
	next   wikibot.SearchResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next wikibot.SearchResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// ResolveURL logs the query and the resolved URL.
func (r *LoggingResolver) ResolveURL(ctx context.Context, query string) (url string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("resolve",
			"query", query,
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ResolveURL(ctx, query)
}

// LoggingPageService wraps a PageService with logging.
type LoggingPageService struct {
	next   wikibot.PageService
	logger *slog.Logger
}

// NewLoggingPageService creates a new LoggingPageService.
func NewLoggingPageService(next wikibot.PageService, logger *slog.Logger) *LoggingPageService {
	return &LoggingPageService{next: next, logger: logger}
}

// FetchPage logs the URL and the category of the scraped page.
func (s *LoggingPageService) FetchPage(ctx context.Context, url string) (record *wikibot.PageRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("fetch page",
			"url", url,
			"category", categoryOf(record),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchPage(ctx, url)
}

// LoggingSectionLocator wraps a SectionLocator with logging.
type LoggingSectionLocator struct {
	next   wikibot.SectionLocator
	logger *slog.Logger
}

// NewLoggingSectionLocator creates a new LoggingSectionLocator.
func NewLoggingSectionLocator(next wikibot.SectionLocator, logger *slog.Logger) *LoggingSectionLocator {
	return &LoggingSectionLocator{next: next, logger: logger}
}

// LocateSection logs the URL, section and result sizes.
func (l *LoggingSectionLocator) LocateSection(ctx context.Context, url string, anchorID string) (record *wikibot.PageRecord, err error) {
	defer func(begin time.Time) {
		var locations, images int
		if record != nil {
			locations, images = len(record.Locations), len(record.Images)
		}
		l.logger.Info("locate section",
			"url", url,
			"section", anchorID,
			"locations", locations,
			"images", images,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LocateSection(ctx, url, anchorID)
}

func categoryOf(r *wikibot.PageRecord) string {
	if r == nil {
		return ""
	}
	return r.Category.String()
}
