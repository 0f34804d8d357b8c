// Package goquery scrapes wiki pages with goquery.
package goquery

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/warnespe001/wikibot"
)

// Selectors for the Fandom page layout.
const (
	categorySelector       = ".page-header__categories a"
	legacyCategorySelector = "#articleCategories .category a"
	infoTableSelector      = ".infoboxtable"
	titleSelector          = ".page-header__title"
)

// fetchDocument fetches url and parses it into a document.
func fetchDocument(ctx context.Context, fetcher wikibot.Fetcher, url string) (*goquery.Document, error) {
	html, err := fetcher.Fetch(ctx, url)
	if err != nil {
		if wikibot.ErrorCode(err) == wikibot.EFETCH {
			return nil, err
		}
		return nil, wikibot.WrapError(wikibot.EFETCH, url, err, "failed to fetch %s", url)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, wikibot.WrapError(wikibot.EFETCH, url, err, "failed to parse HTML from %s", url)
	}
	return doc, nil
}

// extractCategories returns the page's category tags in document order.
func extractCategories(doc *goquery.Document) []string {
	sel := doc.Find(categorySelector)
	if sel.Length() == 0 {
		sel = doc.Find(legacyCategorySelector)
	}

	var tags []string
	sel.Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			tags = append(tags, text)
		}
	})
	return tags
}

// extractRows converts the body rows of the first info-table into
// DOM-agnostic rows. If conv is non-nil, description cells also carry
// their inner HTML converted to Markdown.
func extractRows(doc *goquery.Document, conv wikibot.Converter) []wikibot.Row {
	table := doc.Find(infoTableSelector).First()
	if table.Length() == 0 {
		return nil
	}

	body := table.ChildrenFiltered("tbody").First()
	if body.Length() == 0 {
		body = table
	}

	var rows []wikibot.Row
	body.ChildrenFiltered("tr").Each(func(_ int, tr *goquery.Selection) {
		var row wikibot.Row
		tr.Children().Each(func(_ int, td *goquery.Selection) {
			row.Cells = append(row.Cells, extractCell(td, conv))
		})
		rows = append(rows, row)
	})
	return rows
}

func extractCell(td *goquery.Selection, conv wikibot.Converter) wikibot.Cell {
	c := wikibot.Cell{
		Text:    td.Text(),
		Classes: strings.Fields(td.AttrOr("class", "")),
	}
	if conv != nil && c.HasClass(wikibot.ClassInfoboxDesc) {
		if inner, err := td.Html(); err == nil && strings.TrimSpace(inner) != "" {
			if md, err := conv.Convert(inner); err == nil {
				c.Markup = md
			}
		}
	}
	return c
}

// extractTitle returns the page heading with newlines and tabs removed.
func extractTitle(doc *goquery.Document) string {
	sel := doc.Find(titleSelector).First()
	if sel.Length() == 0 {
		sel = doc.Find("h1").First()
	}
	title := strings.NewReplacer("\n", "", "\t", "").Replace(sel.Text())
	return strings.TrimSpace(title)
}
