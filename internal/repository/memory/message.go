// Package memory holds the in-memory implementations of the repository
// interfaces. This is the application's only storage — no persistence is a
// deliberate property of the system, not a stopgap.
package memory

import (
	"context"
	"sync"

	"github.com/abarbosa/recados/internal/apperror"
	"github.com/abarbosa/recados/internal/model"
	"github.com/abarbosa/recados/internal/repository"
)

var _ repository.MessageRepository = (*MessageStore)(nil)

// MessageStore is the in-memory message store.
//
// Messages live in a slice in creation order. Deleting compacts the slice
// but never touches nextID, so IDs are strictly increasing for the process's
// lifetime: create 1,2,3 → delete 2 → the next create gets 4, not 2.
type MessageStore struct {
	mu       sync.Mutex
	messages []model.Message // creation order
	nextID   int64
}

// NewMessageStore creates an empty message store.
func NewMessageStore() *MessageStore {
	return &MessageStore{}
}

// Create assigns the next sequential ID and appends the message.
// The caller is responsible for setting UserID to a resolved owner first.
func (s *MessageStore) Create(ctx context.Context, msg *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	msg.ID = s.nextID
	s.messages = append(s.messages, *msg)
	return nil
}

// GetByID returns a copy of the message with the given ID.
func (s *MessageStore) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			msg := s.messages[i]
			return &msg, nil
		}
	}
	return nil, apperror.NotFoundID("message", id)
}

// ListByUserID returns copies of all messages owned by userID, in creation
// order. Unknown owners yield an empty (non-nil) slice.
func (s *MessageStore) ListByUserID(ctx context.Context, userID int64) ([]model.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []model.Message{}
	for i := range s.messages {
		if s.messages[i].UserID == userID {
			result = append(result, s.messages[i])
		}
	}
	return result, nil
}

// Update overwrites the title and description of the stored message with
// msg.ID. ID and UserID are immutable — whatever the caller put in msg's
// UserID field is ignored.
func (s *MessageStore) Update(ctx context.Context, msg *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == msg.ID {
			s.messages[i].Title = msg.Title
			s.messages[i].Description = msg.Description
			// Reflect the authoritative record back to the caller.
			*msg = s.messages[i]
			return nil
		}
	}
	return apperror.NotFoundID("message", msg.ID)
}

// Delete removes the message with the given ID, compacting the slice.
// Remaining messages keep their IDs; nextID is never decremented.
func (s *MessageStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return nil
		}
	}
	return apperror.NotFoundID("message", id)
}
