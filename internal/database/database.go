package database

import (
	"github.com/mythoughts/server/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool
		// IsValidReference returns true if id matches the key scheme of the
		// underlying backend. It performs no lookup; malformed identifiers
		// are rejected before any storage access.
		IsValidReference(id string) bool

		ThoughtInteraction
	}

	// A ThoughtInteraction defines all the methods used to interact with a thought record(s).
	ThoughtInteraction interface {
		// FindThought returns the thought for the given id.
		FindThought(id string) (*model.Thought, error)
		// FindThoughtsByOwner returns all the thoughts of the given owner,
		// most recently created first.
		FindThoughtsByOwner(ownerID string) ([]*model.Thought, error)
	}
)
