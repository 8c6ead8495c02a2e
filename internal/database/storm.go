package database

import (
	"sort"
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/asdine/storm/v3/q"
	"github.com/gofrs/uuid"
	"github.com/mythoughts/server/internal/model"
	"github.com/pkg/errors"
)

type strm struct {
	db *storm.DB
}

// StormCodec is the format used to store data in the database.
var StormCodec = storm.Codec(msgpack.Codec)

// StormInit initializes Storm database.
func StormInit(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	err = db.Init(&model.Thought{})
	return errors.Wrap(err, "could not init thought index")
}

// StormReIndex reindex Storm database.
func StormReIndex(database string) error {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	err = db.ReIndex(&model.Thought{})
	return errors.Wrap(err, "could not ReIndex thoughts")
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string) (Client, error) {
	db, err := storm.Open(database, StormCodec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db: db,
	}, nil
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetID() == "" {
		m.SetID(uuid.Must(uuid.NewV4()).String())
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// IsValidReference returns true if id is a well-formed record key.
// Storm records are keyed by UUID so anything else cannot reference one.
func (c *strm) IsValidReference(id string) bool {
	_, err := uuid.FromString(id)
	return err == nil
}

// FindThought returns the thought for the given id (UUID).
func (c *strm) FindThought(id string) (*model.Thought, error) {
	var thought model.Thought
	if err := c.db.One("ID", id, &thought); err != nil {
		return nil, errors.Wrap(err, "could not find thought")
	}
	return &thought, nil
}

// FindThoughtsByOwner returns all the thoughts of the given owner,
// most recently created first.
func (c *strm) FindThoughtsByOwner(ownerID string) ([]*model.Thought, error) {
	thoughts := make([]*model.Thought, 0)
	err := c.db.Select(q.Eq("OwnerID", ownerID)).Find(&thoughts)
	if err != nil && !c.IsNotFound(err) {
		return nil, errors.Wrap(err, "could not find thoughts by owner id")
	}

	// Storm's OrderBy cannot compare the *time.Time index field, so the
	// records come back in scan order and are sorted here.
	sort.Slice(thoughts, func(i, j int) bool {
		return thoughts[i].CreatedAt.After(*thoughts[j].CreatedAt)
	})

	return thoughts, nil
}
