package repository

import (
	"context"

	"starterkit/internal/model"
)

// NoteRepository defines data access for notes and their tags.
// No business logic here — strictly persistence operations.
//
// Lookups for missing or malformed ids return gorm.ErrRecordNotFound; the
// service layer translates it.
type NoteRepository interface {
	// Create inserts a new note and returns the stored record with its
	// generated id and timestamps.
	Create(ctx context.Context, note *model.Note) (*model.Note, error)

	// FindByID returns a note by its id. The id may arrive as a decimal
	// string straight from the request path.
	FindByID(ctx context.Context, id string) (*model.Note, error)

	// List returns a paginated list of notes and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Note], error)

	// Update applies a partial update: only the given fields change.
	Update(ctx context.Context, id string, fields map[string]any) (*model.Note, error)

	// Delete removes a note by id.
	Delete(ctx context.Context, id string) error

	// AttachTag links the named tag to the note, creating the tag if it does
	// not exist yet. Attaching the same tag twice is idempotent. Returns the
	// note's tags after the change.
	AttachTag(ctx context.Context, noteID string, tagName string) ([]model.Tag, error)

	// TagsForNote returns the tags attached to a note, ordered by name.
	TagsForNote(ctx context.Context, noteID string) ([]model.Tag, error)
}
