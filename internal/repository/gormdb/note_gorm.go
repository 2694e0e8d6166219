package gormdb

import (
	"context"

	"gorm.io/gorm"

	"starterkit/internal/database"
	"starterkit/internal/model"
	"starterkit/internal/repository"
)

// NoteGorm is the GORM implementation of repository.NoteRepository, built on
// the generic repository from the database layer.
type NoteGorm struct {
	db    *gorm.DB
	notes *database.Repo[model.Note]
	tags  *database.Repo[model.Tag]
}

// NewNoteGorm creates a new NoteGorm repository.
func NewNoteGorm(db *gorm.DB) *NoteGorm {
	return &NoteGorm{
		db:    db,
		notes: database.NewRepo[model.Note](db),
		tags:  database.NewRepo[model.Tag](db),
	}
}

var _ repository.NoteRepository = (*NoteGorm)(nil)

// Create inserts a new note row and returns the stored record.
func (r *NoteGorm) Create(ctx context.Context, note *model.Note) (*model.Note, error) {
	if err := r.notes.Create(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// FindByID fetches a single note by its id.
func (r *NoteGorm) FindByID(ctx context.Context, id string) (*model.Note, error) {
	return r.notes.GetByID(ctx, id)
}

// List returns notes using LIMIT/OFFSET pagination and a total count.
func (r *NoteGorm) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Note], error) {
	total, err := r.notes.Count(ctx, nil)
	if err != nil {
		return nil, err
	}

	items := make([]model.Note, 0)
	err = r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(pq.Limit).
		Offset(pq.Offset).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Note]{
		Items: items,
		Total: int(total),
	}, nil
}

// Update applies a partial update and returns the updated record.
func (r *NoteGorm) Update(ctx context.Context, id string, fields map[string]any) (*model.Note, error) {
	if err := r.notes.UpdateByID(ctx, id, fields); err != nil {
		return nil, err
	}
	return r.notes.GetByID(ctx, id)
}

// Delete removes a note by id.
func (r *NoteGorm) Delete(ctx context.Context, id string) error {
	return r.notes.DeleteByID(ctx, id)
}

// AttachTag ensures the tag exists and upserts the note/tag association in a
// single transaction.
func (r *NoteGorm) AttachTag(ctx context.Context, noteID string, tagName string) ([]model.Tag, error) {
	note, err := r.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tag := model.Tag{Name: tagName}
		if err := tx.Where(model.Tag{Name: tagName}).FirstOrCreate(&tag).Error; err != nil {
			return err
		}
		return database.UpsertByForeignKeys(ctx, tx, &model.NoteTag{
			NoteID: note.ID,
			TagID:  tag.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return r.TagsForNote(ctx, noteID)
}

// TagsForNote returns the tags attached to a note, ordered by name.
func (r *NoteGorm) TagsForNote(ctx context.Context, noteID string) ([]model.Tag, error) {
	note, err := r.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	tags := make([]model.Tag, 0)
	err = r.db.WithContext(ctx).
		Joins("JOIN note_tags ON note_tags.tag_id = tags.id").
		Where("note_tags.note_id = ?", note.ID).
		Order("tags.name").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
