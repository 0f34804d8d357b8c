package wikibot

import "strings"

// Info-table marker classes.
const (
	ClassInfoboxName = "infoboxname"
	ClassInfoboxDesc = "infoboxdesc"
)

// Cell is a single info-table cell reduced to its text and classes.
type Cell struct {
	Text    string
	Classes []string

	// Markup is the flattened rich text of the cell, when available.
	// Classifiers prefer it over Text for description cells.
	Markup string
}

// HasClass reports whether the cell carries the class.
func (c Cell) HasClass(class string) bool {
	for _, cl := range c.Classes {
		if cl == class {
			return true
		}
	}
	return false
}

// Row is an info-table row reduced to its cells.
type Row struct {
	Cells []Cell
}

// single returns the row's only cell if it has exactly one carrying class.
func (r Row) single(class string) (Cell, bool) {
	if len(r.Cells) != 1 || !r.Cells[0].HasClass(class) {
		return Cell{}, false
	}
	return r.Cells[0], true
}

// ExtractSurvivorFields classifies survivor info-table rows.
// A single name cell yields Name; a two-cell row yields a key/value pair.
// Rows of any other shape are ignored.
func ExtractSurvivorFields(rows []Row) map[string]string {
	fields := make(map[string]string)
	for _, row := range rows {
		if cell, ok := row.single(ClassInfoboxName); ok {
			fields[FieldName] = stripNewlines(cell.Text)
			continue
		}
		if len(row.Cells) == 2 {
			key := strings.TrimSpace(row.Cells[0].Text)
			if key == "" {
				continue
			}
			fields[key] = stripNewlines(row.Cells[1].Text)
		}
	}
	return fields
}

// ExtractItemFields classifies item info-table rows. The first row may carry
// the name and any single description cell yields Description. The last row
// is always the stats row and must have four cells.
func ExtractItemFields(rows []Row) (map[string]string, *ItemStats, error) {
	if len(rows) == 0 {
		return nil, nil, Errorf(EMALFORMED, "item info-table has no rows")
	}

	fields := make(map[string]string)
	if cell, ok := rows[0].single(ClassInfoboxName); ok {
		fields[FieldName] = stripNewlines(cell.Text)
	}
	for _, row := range rows {
		if cell, ok := row.single(ClassInfoboxDesc); ok {
			text := cell.Markup
			if text == "" {
				text = cell.Text
			}
			fields[FieldDescription] = collapseSpace(text)
		}
	}

	last := rows[len(rows)-1]
	if len(last.Cells) < 4 {
		return fields, nil, Errorf(EMALFORMED, "item stats row has %d cells, want 4", len(last.Cells))
	}
	stats := &ItemStats{
		Stat:        stripNewlines(last.Cells[0].Text),
		Value:       stripNewlines(last.Cells[1].Text),
		StackType:   stripNewlines(last.Cells[2].Text),
		StackAmount: stripNewlines(last.Cells[3].Text),
	}
	return fields, stats, nil
}

func stripNewlines(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", ""))
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
