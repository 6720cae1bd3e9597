package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abarbosa/recados/internal/apperror"
	"github.com/abarbosa/recados/internal/model"
	"github.com/abarbosa/recados/internal/repository"
)

// MessageService handles business logic for messages.
//
// It depends on BOTH repositories: messages for CRUD, users to resolve the
// owning account from the email each request carries. There are no sessions —
// every operation that needs an identity re-identifies the user by email.
type MessageService struct {
	messages repository.MessageRepository
	users    repository.UserRepository
	logger   *slog.Logger
}

// NewMessageService creates a MessageService.
func NewMessageService(messages repository.MessageRepository, users repository.UserRepository, logger *slog.Logger) *MessageService {
	return &MessageService{
		messages: messages,
		users:    users,
		logger:   logger,
	}
}

// Create validates the input, resolves the owner by email, and stores a new
// message tagged with the owner's ID.
//
// Validation order (first failure wins): email → title → description, then
// the owner lookup. Ownership is fixed here and never changes afterwards.
func (s *MessageService) Create(ctx context.Context, email, title, description string) (*model.Message, error) {
	if email == "" {
		return nil, apperror.ValidationFailed("email", "please provide a valid email")
	}
	if title == "" {
		return nil, apperror.ValidationFailed("title", "please provide the message title")
	}
	if description == "" {
		return nil, apperror.ValidationFailed("description", "please provide the message description")
	}

	owner, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email → typed NotFound from the registry.
		return nil, err
	}

	msg := &model.Message{
		Title:       title,
		Description: description,
		UserID:      owner.ID,
	}

	if err := s.messages.Create(ctx, msg); err != nil {
		s.logger.Error("failed to create message", slog.String("error", err.Error()))
		return nil, fmt.Errorf("creating message: %w", err)
	}

	s.logger.Info("message created",
		slog.Int64("id", msg.ID),
		slog.Int64("userId", msg.UserID),
	)

	return msg, nil
}

// ListForUser returns all messages owned by the account registered under
// email, in creation order. Fails with ErrNotFound if the email is not
// registered — an unknown email and a user with no messages are different
// answers (404 vs an empty list).
func (s *MessageService) ListForUser(ctx context.Context, email string) ([]model.Message, error) {
	if email == "" {
		return nil, apperror.ValidationFailed("email", "please provide a valid email")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	msgs, err := s.messages.ListByUserID(ctx, user.ID)
	if err != nil {
		s.logger.Error("failed to list messages",
			slog.Int64("userId", user.ID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("listing messages: %w", err)
	}

	return msgs, nil
}

// GetByID returns the message with the given ID, or ErrNotFound.
func (s *MessageService) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	return s.messages.GetByID(ctx, id)
}

// Update replaces the title and description of an existing message.
//
// ORDER: the existence check runs BEFORE field validation — an update of an
// unknown ID reports "not found" even if the fields are also missing. This
// mirrors the registration flow being the other way around; each operation
// has its own fixed order and callers see the first failing check.
func (s *MessageService) Update(ctx context.Context, id int64, title, description string) (*model.Message, error) {
	msg, err := s.messages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title == "" {
		return nil, apperror.ValidationFailed("title", "please provide the message title")
	}
	if description == "" {
		return nil, apperror.ValidationFailed("description", "please provide the message description")
	}

	msg.Title = title
	msg.Description = description

	if err := s.messages.Update(ctx, msg); err != nil {
		s.logger.Error("failed to update message",
			slog.Int64("id", id),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("updating message: %w", err)
	}

	s.logger.Info("message updated", slog.Int64("id", msg.ID))
	return msg, nil
}

// Delete removes a message by ID. Returns ErrNotFound if it doesn't exist.
// The freed ID is never reassigned to a later message.
func (s *MessageService) Delete(ctx context.Context, id int64) error {
	if err := s.messages.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("message deleted", slog.Int64("id", id))
	return nil
}
