package memory

import (
	"context"
	"sync"

	"github.com/abarbosa/recados/internal/apperror"
	"github.com/abarbosa/recados/internal/model"
	"github.com/abarbosa/recados/internal/repository"
)

// COMPILE-TIME INTERFACE CHECK:
// Verifies that *UserStore implements repository.UserRepository. If a method
// is missing or has the wrong signature, the compiler errors here instead of
// at some distant call site.
var _ repository.UserRepository = (*UserStore)(nil)

// UserStore is the in-memory account registry.
//
// WHY A SLICE, NOT A MAP?
// Accounts are looked up by email with an O(n) linear scan. At this scale a
// secondary index buys nothing, and a slice preserves registration order for
// free — which is also what makes sequential IDs trivially correct.
//
// CONCURRENCY:
// Every method takes the mutex for its whole body. That makes the two
// sequences that must not interleave — "check email is free, then insert"
// and "take next ID, then append" — single critical sections. Without the
// lock, two concurrent signups with the same email could both pass the
// uniqueness check before either inserts.
type UserStore struct {
	mu     sync.Mutex
	users  []model.User // registration order
	nextID int64        // monotonic; IDs are never reused
}

// NewUserStore creates an empty registry. State lives for the process's
// lifetime only — a restart starts from scratch, by design.
func NewUserStore() *UserStore {
	return &UserStore{}
}

// Create assigns the next sequential ID and appends the user.
// Returns apperror.ErrConflict if the email is already registered.
func (s *UserStore) Create(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == user.Email {
			return apperror.Conflict("email already registered, use another")
		}
	}

	s.nextID++
	user.ID = s.nextID
	s.users = append(s.users, *user)
	return nil
}

// GetByEmail returns a copy of the first user with the given email.
//
// The copy matters: handing out a pointer into the slice would let callers
// mutate registry state without holding the lock.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, apperror.NotFound("email not registered, check it or create an account")
}

// EmailExists reports whether any registered user has the given email.
func (s *UserStore) EmailExists(ctx context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}
