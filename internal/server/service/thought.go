package service

import (
	"github.com/mythoughts/server/internal/database"
	"github.com/mythoughts/server/internal/model"
	"github.com/mythoughts/server/internal/thoughterror"
	"github.com/pkg/errors"
)

// A Thought service owns the thought record lifecycle: field validation,
// identifier checking and CRUD against the store. Handlers stay thin.
type Thought struct {
	db database.Client
}

// NewThought instantiates a new Thought service.
func NewThought(db database.Client) *Thought {
	return &Thought{db: db}
}

// Create validates content, assigns ownership and persists a new record.
// The owner comes from the authenticated caller, never from client input.
func (s *Thought) Create(ownerID, content string) (*model.Thought, error) {
	if ownerID == "" {
		return nil, thoughterror.NewUnauthenticated()
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	thought := &model.Thought{
		OwnerID: ownerID,
		Content: content,
	}
	if err := s.db.Save(thought); err != nil {
		return nil, errors.Wrap(err, "could not create thought")
	}
	return thought, nil
}

// List returns all the owner's records, most recently created first.
// An owner without records gets an empty list, not an error.
func (s *Thought) List(ownerID string) ([]*model.Thought, error) {
	if ownerID == "" {
		return nil, thoughterror.NewUnauthenticated()
	}

	thoughts, err := s.db.FindThoughtsByOwner(ownerID)
	return thoughts, errors.Wrap(err, "could not list thoughts")
}

// Find returns the record for the given id.
func (s *Thought) Find(id string) (*model.Thought, error) {
	if !s.db.IsValidReference(id) {
		return nil, thoughterror.NewInvalidReference()
	}

	thought, err := s.db.FindThought(id)
	if err != nil {
		if s.db.IsNotFound(err) {
			return nil, thoughterror.NewNotFound()
		}
		return nil, errors.Wrap(err, "could not find thought")
	}
	return thought, nil
}

// UpdateContent replaces the record's content, leaving id, owner and
// creation date untouched. Validation failures leave the stored record as is.
func (s *Thought) UpdateContent(id, content string) (*model.Thought, error) {
	if !s.db.IsValidReference(id) {
		return nil, thoughterror.NewInvalidReference()
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	thought, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	thought.Content = content
	if err := s.db.Save(thought); err != nil {
		return nil, errors.Wrap(err, "could not update thought")
	}
	return thought, nil
}

// Delete permanently removes the record and returns its pre-deletion state.
func (s *Thought) Delete(id string) (*model.Thought, error) {
	thought, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(thought); err != nil {
		return nil, errors.Wrap(err, "could not delete thought")
	}
	return thought, nil
}

func validateContent(content string) error {
	if content == "" {
		return thoughterror.NewValidation("Please add content")
	}
	if len([]rune(content)) > model.ContentMaxLength {
		return thoughterror.NewValidation("Content cannot be more than 20000 characters")
	}
	return nil
}
