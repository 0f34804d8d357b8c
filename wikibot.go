// Package wikibot provides a chat bot that answers Risk of Rain 2 questions.
// It searches the game's wiki, scrapes the matching article into a structured
// record, and renders that record as a chat message.
//
// This package contains domain types, interfaces and pure logic following Ben
// Johnson's Standard Package Layout. Implementations live in subdirectories
// named after their primary dependency (e.g., goquery/, http/, discord/).
package wikibot
