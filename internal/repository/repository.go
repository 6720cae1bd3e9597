// Package repository defines the storage interfaces the service layer
// programs against.
//
// Services receive these interfaces, not concrete store types. The in-memory
// implementation lives in repository/memory; tests substitute fakes. Either
// way the service code is identical — that's the point of the indirection.
package repository

import (
	"context"

	"github.com/abarbosa/recados/internal/model"
)

// UserRepository is the registry of accounts.
//
// Users are append-only: there is no update or delete. IDs are assigned by
// Create, sequentially, and never reused.
type UserRepository interface {
	// Create assigns the next ID and stores the user. The uniqueness check
	// on email and the insert are a single atomic step — two concurrent
	// Creates with the same email cannot both succeed. Returns
	// apperror.ErrConflict if the email is already registered.
	Create(ctx context.Context, user *model.User) error

	// GetByEmail returns the first user with the given email (exact,
	// case-sensitive match). Returns apperror.ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (*model.User, error)

	// EmailExists reports whether any user has the given email.
	EmailExists(ctx context.Context, email string) (bool, error)
}

// MessageRepository is the store of messages.
type MessageRepository interface {
	// Create assigns the next ID and stores the message. ID assignment and
	// insert are atomic. The caller sets UserID before calling.
	Create(ctx context.Context, msg *model.Message) error

	// GetByID returns the message with the given ID, or apperror.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*model.Message, error)

	// ListByUserID returns all messages owned by the given user, in
	// creation order. An unknown user yields an empty list, not an error —
	// resolving the user is the service layer's job.
	ListByUserID(ctx context.Context, userID int64) ([]model.Message, error)

	// Update overwrites the title and description of the stored message
	// with msg.ID. ID and UserID are never changed. Returns
	// apperror.ErrNotFound if absent.
	Update(ctx context.Context, msg *model.Message) error

	// Delete removes the message with the given ID, or returns
	// apperror.ErrNotFound. Freed IDs are never reused.
	Delete(ctx context.Context, id int64) error
}
