package wikibot

// Wiki category tags that select extraction and rendering logic.
const (
	TagSurvivors    = "Survivors"
	TagItems        = "Items"
	TagEnvironments = "Environments"

	// TagLocatedSection is a synthetic tag attached to section lookup results.
	TagLocatedSection = "LocatedSection"
)

// PageCategory identifies which extraction and rendering branch applies to a page.
type PageCategory int

// Page categories.
const (
	CategoryUnknown PageCategory = iota
	CategorySurvivor
	CategoryItem
	CategoryLocatedSection
)

// String returns the wiki tag for the category.
func (c PageCategory) String() string {
	switch c {
	case CategorySurvivor:
		return TagSurvivors
	case CategoryItem:
		return TagItems
	case CategoryLocatedSection:
		return TagLocatedSection
	default:
		return "Unknown"
	}
}

// ClassifyCategories picks the category for a set of page tags.
// Survivors wins over Items, which wins over the located-section tag.
func ClassifyCategories(tags []string) PageCategory {
	switch {
	case HasCategory(tags, TagSurvivors):
		return CategorySurvivor
	case HasCategory(tags, TagItems):
		return CategoryItem
	case HasCategory(tags, TagLocatedSection):
		return CategoryLocatedSection
	default:
		return CategoryUnknown
	}
}

// HasCategory reports whether tag is present in tags.
func HasCategory(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
