package wikibot

import (
	"fmt"
	"strings"
)

// NewtAltarIntro introduces the location list of a newt altar lookup.
const NewtAltarIntro = "Newt Altars can be found in the following locations:"

// Render formats a record as a chat message. It returns an empty string for
// nil records and unknown categories; callers must not send an empty message.
func Render(r *PageRecord) string {
	if r == nil {
		return ""
	}

	switch r.Category {
	case CategorySurvivor:
		return renderSurvivor(r)
	case CategoryItem:
		return renderItem(r)
	case CategoryLocatedSection:
		return renderLocatedSection(r)
	default:
		return ""
	}
}

func renderSurvivor(r *PageRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", r.Field(FieldName))
	fmt.Fprintf(&b, "_Health_:   %s\n", r.Field(FieldHealth))
	fmt.Fprintf(&b, "_Regen_:    %s\n", r.Field(FieldRegen))
	fmt.Fprintf(&b, "_Damage_:   %s\n", r.Field(FieldDamage))
	fmt.Fprintf(&b, "_Speed_:    %s\n", r.Field(FieldSpeed))
	fmt.Fprintf(&b, "_Armor_:    %s\n\n", r.Field(FieldArmor))
	b.WriteString(r.SourceURL)
	return b.String()
}

func renderItem(r *PageRecord) string {
	stats := r.Stats
	if stats == nil {
		stats = &ItemStats{}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", r.Field(FieldName))
	if desc := r.Field(FieldDescription); desc != "" {
		fmt.Fprintf(&b, "_%s_\n", desc)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "_Stat_:   %s\n", stats.Stat)
	fmt.Fprintf(&b, "_Value_:   %s\n", stats.Value)
	fmt.Fprintf(&b, "_Stacking_:   %s\n", stats.StackType)
	fmt.Fprintf(&b, "_Stack Amount_:   %s\n\n", stats.StackAmount)
	b.WriteString(r.SourceURL)
	return b.String()
}

func renderLocatedSection(r *PageRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n", r.Field(FieldName))
	b.WriteString(NewtAltarIntro)
	for i, loc := range r.Locations {
		fmt.Fprintf(&b, "\n%d. %s", i+1, loc)
	}
	if r.SourceURL != "" {
		b.WriteString("\n\n")
		b.WriteString(r.SourceURL)
	}
	return b.String()
}
