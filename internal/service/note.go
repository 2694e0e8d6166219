package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"starterkit/internal/model"
	"starterkit/internal/repository"
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrTitleRequired = errors.New("title is required")
	ErrTagRequired   = errors.New("tag name is required")
	ErrNotFound      = errors.New("note not found")
	ErrNoFields      = errors.New("no fields to update")
)

// NoteListResult is the service-level DTO for paginated notes.
type NoteListResult struct {
	Items []model.Note `json:"data"`
	Total int          `json:"total"`
}

// NoteInput carries the writable note fields from the HTTP layer.
type NoteInput struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Author string `json:"author"`
}

// NoteUpdate carries a partial update. Nil fields are untouched; a pointer
// to the empty string clears the column.
type NoteUpdate struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Author *string `json:"author"`
}

// NoteService defines the use cases for handling notes.
type NoteService interface {
	// Create validates the input and stores a new note.
	Create(ctx context.Context, in NoteInput) (*model.Note, error)

	// List returns notes using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*NoteListResult, error)

	// Get returns a single note by its id.
	Get(ctx context.Context, id string) (*model.Note, error)

	// Update applies a partial update; only the provided fields change.
	Update(ctx context.Context, id string, in NoteUpdate) (*model.Note, error)

	// Delete removes a note by id.
	Delete(ctx context.Context, id string) error

	// AttachTag links the named tag to the note, creating the tag on first
	// use, and returns the note's tags after the change.
	AttachTag(ctx context.Context, id string, tagName string) ([]model.Tag, error)

	// Tags returns the tags attached to a note.
	Tags(ctx context.Context, id string) ([]model.Tag, error)
}

// noteService is a concrete implementation of NoteService.
type noteService struct {
	repo repository.NoteRepository
}

// NewNoteService constructs a new NoteService.
func NewNoteService(repo repository.NoteRepository) NoteService {
	return &noteService{repo: repo}
}

func (s *noteService) Create(ctx context.Context, in NoteInput) (*model.Note, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	note := &model.Note{
		Title:  title,
		Body:   in.Body,
		Author: strings.TrimSpace(in.Author),
	}
	return s.repo.Create(ctx, note)
}

// List returns paginated notes without exposing repository types.
func (s *noteService) List(ctx context.Context, limit, offset int) (*NoteListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &NoteListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *noteService) Get(ctx context.Context, id string) (*model.Note, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	note, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return note, nil
}

func (s *noteService) Update(ctx context.Context, id string, in NoteUpdate) (*model.Note, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	fields := map[string]any{}
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return nil, ErrTitleRequired
		}
		fields["title"] = t
	}
	if in.Body != nil {
		fields["body"] = *in.Body
	}
	if in.Author != nil {
		fields["author"] = strings.TrimSpace(*in.Author)
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}

	note, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateNotFound(err)
	}
	return nil
}

func (s *noteService) AttachTag(ctx context.Context, id string, tagName string) ([]model.Tag, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	tagName = strings.TrimSpace(strings.ToLower(tagName))
	if tagName == "" {
		return nil, ErrTagRequired
	}

	tags, err := s.repo.AttachTag(ctx, id, tagName)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return tags, nil
}

func (s *noteService) Tags(ctx context.Context, id string) ([]model.Tag, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	tags, err := s.repo.TagsForNote(ctx, id)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return tags, nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
