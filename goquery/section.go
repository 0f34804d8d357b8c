package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/warnespe001/wikibot"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure SectionLocator implements wikibot.SectionLocator at compile time.
var _ wikibot.SectionLocator = (*SectionLocator)(nil)

// SectionLocator extracts a list subsection and its images from environment pages.
type SectionLocator struct {
	fetcher     wikibot.Fetcher
	imageMarker string
}

// NewSectionLocator creates a SectionLocator. Images are collected when their
// image key contains imageMarker; an empty marker collects none.
func NewSectionLocator(fetcher wikibot.Fetcher, imageMarker string) *SectionLocator {
	return &SectionLocator{
		fetcher:     fetcher,
		imageMarker: imageMarker,
	}
}

// LocateSection returns the ordered list that follows the anchorID heading.
func (l *SectionLocator) LocateSection(ctx context.Context, url string, anchorID string) (*wikibot.PageRecord, error) {
	doc, err := fetchDocument(ctx, l.fetcher, url)
	if err != nil {
		return nil, err
	}

	tags := extractCategories(doc)
	if !wikibot.HasCategory(tags, wikibot.TagEnvironments) {
		return nil, wikibot.WrapError(wikibot.EWRONGPAGE, url, nil, "%s is not an environment page", url)
	}

	title := extractTitle(doc)

	anchor := doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.AttrOr("id", "") == anchorID
	}).First()
	if anchor.Length() == 0 {
		return nil, wikibot.WrapError(wikibot.ENOSECTION, url, nil, "section %q not found on %s", anchorID, url)
	}

	start := anchor.Closest("h1, h2, h3, h4, h5, h6")
	if start.Length() == 0 {
		start = anchor
	}

	list, err := nextList(start.Get(0))
	if err != nil {
		if e, ok := err.(*wikibot.Error); ok {
			e.Subject = url
		}
		return nil, err
	}

	var locations []string
	doc.FindNodes(list).ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if text := strings.Join(strings.Fields(li.Text()), " "); text != "" {
			locations = append(locations, text)
		}
	})

	return &wikibot.PageRecord{
		Category:   wikibot.CategoryLocatedSection,
		Categories: append(tags, wikibot.TagLocatedSection),
		SourceURL:  url,
		Fields:     map[string]string{wikibot.FieldName: title},
		Locations:  locations,
		Images:     l.images(doc),
	}, nil
}

// images returns the link targets of images whose key contains the marker.
func (l *SectionLocator) images(doc *goquery.Document) []string {
	if l.imageMarker == "" {
		return nil
	}

	var urls []string
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		if !strings.Contains(imageKey(img), l.imageMarker) {
			return
		}
		href := strings.TrimSpace(img.Closest("a").AttrOr("href", ""))
		if href != "" {
			urls = append(urls, href)
		}
	})
	return urls
}

func imageKey(img *goquery.Selection) string {
	for _, attr := range []string{"data-image-key", "data-image-name", "alt"} {
		if v := img.AttrOr(attr, ""); v != "" {
			return v
		}
	}
	return ""
}

// nextList walks the siblings after start until it reaches an ordered list.
// Running out of siblings means the section has no list; reaching a heading
// of the same or higher rank means the section ended without one.
func nextList(start *html.Node) (*html.Node, error) {
	rank := headingRank(start)
	for n := start.NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if n.DataAtom == atom.Ol {
			return n, nil
		}
		if r := headingRank(n); rank > 0 && r > 0 && r <= rank {
			return nil, wikibot.Errorf(wikibot.EMALFORMED, "section ended at <%s> before any list", n.Data)
		}
	}
	return nil, wikibot.Errorf(wikibot.ENOSECTION, "no list follows the section heading")
}

// headingRank returns 1-6 for h1-h6 and 0 for anything else.
func headingRank(n *html.Node) int {
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	default:
		return 0
	}
}
