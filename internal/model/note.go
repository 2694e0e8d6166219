// Package model contains the example domain shipped with the starter. The
// types are deliberately small; they exist to exercise the database layer
// end to end and to be replaced by real application models.
package model

import "starterkit/internal/database"

// Note is a plain table model: the base contributes id plus the
// created_at/updated_at timestamps.
type Note struct {
	database.Model
	Title  string `gorm:"not null" json:"title"`
	Body   string `json:"body"`
	Author string `gorm:"index" json:"author,omitempty"`
}

// Tag is a label notes can be attached to. Names are unique.
type Tag struct {
	database.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// NoteTag is an association model linking notes to tags. The belongs-to
// relations make NoteID and TagID discoverable as foreign-key columns, which
// is what drives the create-or-update upsert for this table.
type NoteTag struct {
	database.Model
	NoteID uint `gorm:"index:idx_note_tags_pair,unique" json:"note_id"`
	TagID  uint `gorm:"index:idx_note_tags_pair,unique" json:"tag_id"`
	Note   Note `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Tag    Tag  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// All lists every model the schema migration manages, in dependency order.
func All() []any {
	return []any{&Note{}, &Tag{}, &NoteTag{}}
}
