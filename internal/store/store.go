package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mindscape-app/backend/internal/models"
)

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound is returned when a lookup or delete matches no document.
	// A delete scoped to the wrong owner reports the same error as a missing
	// document, so callers cannot enumerate other users' entries.
	ErrNotFound = errors.New("not found")
)

// UserStore holds registered user credentials.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// EntryStore holds journal entries.
type EntryStore interface {
	Insert(ctx context.Context, entry *models.Entry) error
	// FindByUser returns the user's entries ordered by creation time descending.
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Entry, error)
	// DeleteOwned deletes the entry only when it exists and belongs to userID.
	DeleteOwned(ctx context.Context, userID, entryID primitive.ObjectID) error
}
