package store

import (
	"errors"
	"fmt"
	"log"

	"github.com/concresys/concresys/internal/database"
	"github.com/concresys/concresys/internal/models"
	"github.com/google/uuid"
)

// ErrNotConnected is returned by write operations when no database
// handle is available. Reads never return it: they degrade to empty.
var ErrNotConnected = errors.New("store: database not connected")

// Store is the persistence gateway. Each entity kind gets strongly-typed
// access through the generic ListAll/Delete functions and the Record
// interface; there is no string-tag dispatch.
type Store struct {
	db *database.DB
}

// New creates a gateway over an established database connection.
func New(db *database.DB) *Store {
	return &Store{db: db}
}

// ListAll returns every record of the collection backing T. Any read
// failure is logged and degrades to an empty result so a transient
// error never takes down the whole session.
func ListAll[T any](s *Store) []T {
	if s == nil || s.db == nil {
		return nil
	}
	var out []T
	if err := s.db.Find(&out).Error; err != nil {
		log.Printf("store: list %T failed: %v", out, err)
		return nil
	}
	return out
}

// Create persists a new record and returns its generated id. Any id the
// caller set is discarded: the identifier is always minted here and
// carried as the row key, never trusted from the payload.
func (s *Store) Create(rec models.Record) (string, error) {
	if s == nil || s.db == nil {
		return "", ErrNotConnected
	}

	rec.SetRecordID(uuid.NewString())
	if err := s.db.Create(rec).Error; err != nil {
		return "", fmt.Errorf("store: create failed: %w", err)
	}
	return rec.RecordID(), nil
}

// Update merges the record into its existing row by id. Zero-valued
// fields are not written, so attributes absent from the local object
// are preserved remotely.
func (s *Store) Update(rec models.Record) error {
	if s == nil || s.db == nil {
		return ErrNotConnected
	}
	if rec.RecordID() == "" {
		return errors.New("store: record id is required for update")
	}

	if err := s.db.Model(rec).Updates(rec).Error; err != nil {
		return fmt.Errorf("store: update failed: %w", err)
	}
	return nil
}

// FindUserByEmail loads the account registered under the given email.
// Returns gorm.ErrRecordNotFound when no such account exists.
func (s *Store) FindUserByEmail(email string, out *models.UserAuth) error {
	if s == nil || s.db == nil {
		return ErrNotConnected
	}
	return s.db.Where("email = ?", email).First(out).Error
}

// Delete removes the record with the given id from the collection
// backing T. Deletion is immediate and irreversible; referencing
// records are left untouched (dangling keys are tolerated at read time).
func Delete[T any](s *Store, id string) error {
	if s == nil || s.db == nil {
		return ErrNotConnected
	}

	var rec T
	if err := s.db.Where("id = ?", id).Delete(&rec).Error; err != nil {
		return fmt.Errorf("store: delete failed: %w", err)
	}
	return nil
}
