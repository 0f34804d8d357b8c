package wikibot

// Field names used in PageRecord.Fields.
const (
	FieldName        = "Name"
	FieldDescription = "Description"
	FieldHealth      = "Health"
	FieldRegen       = "Health Regen"
	FieldDamage      = "Damage"
	FieldSpeed       = "Speed"
	FieldArmor       = "Armor"
)

// PageRecord is the structured data scraped from a single wiki page.
// Which fields are populated depends only on Category.
type PageRecord struct {
	Category   PageCategory      `json:"category"`
	Categories []string          `json:"categories"`
	SourceURL  string            `json:"sourceUrl"`
	Fields     map[string]string `json:"fields"`

	// Stats is set for items only.
	Stats *ItemStats `json:"stats,omitempty"`

	// Locations and Images are set for located-section records only.
	Locations []string `json:"locations,omitempty"`
	Images    []string `json:"images,omitempty"`
}

// Field returns the named scalar field, or an empty string.
func (r *PageRecord) Field(name string) string {
	if r == nil || r.Fields == nil {
		return ""
	}
	return r.Fields[name]
}

// ItemStats is the stats row of an item info-table.
type ItemStats struct {
	Stat        string `json:"stat"`
	Value       string `json:"value"`
	StackType   string `json:"stackType"`
	StackAmount string `json:"stackAmount"`
}
