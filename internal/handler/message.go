package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/abarbosa/recados/internal/apperror"
	"github.com/abarbosa/recados/internal/model"
	"github.com/abarbosa/recados/internal/service"
)

// MessageHandler serves CRUD operations on messages.
type MessageHandler struct {
	messages *service.MessageService
	logger   *slog.Logger
}

// NewMessageHandler creates a MessageHandler.
func NewMessageHandler(messages *service.MessageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, logger: logger}
}

// createMessageRequest is the expected body for POST /message. The email
// identifies the owner — there are no sessions, so every create names its
// user explicitly.
type createMessageRequest struct {
	Email       string `json:"email"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// updateMessageRequest is the expected body for PUT /message/{id}.
// Ownership and ID are not part of the body; they cannot be changed.
type updateMessageRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type createMessageResponse struct {
	Message string         `json:"message"`
	Data    *model.Message `json:"messageData"`
}

type listMessagesResponse struct {
	Message  string          `json:"message"`
	Messages []model.Message `json:"messages"`
}

type updateMessageResponse struct {
	Message string         `json:"message"`
	Updated *model.Message `json:"updatedMessage"`
}

// pathID parses the {id} path parameter. A non-numeric id is the client's
// mistake, reported as a 400 via the normal validation error shape.
func pathID(r *http.Request) (int64, error) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.ValidationFailed("id", "message id must be a number")
	}
	return id, nil
}

// HandleCreate stores a new message for the user identified by email.
//
// HTTP: POST /message
// BODY: {"email": "ana@x.com", "title": "Hi", "description": "Hello"}
//
// 201 on success; 400 missing field; 404 unknown email.
func (h *MessageHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid message JSON", slog.String("error", err.Error()))
		writeInvalidJSON(w)
		return
	}

	msg, err := h.messages.Create(r.Context(), req.Email, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createMessageResponse{
		Message: "message created successfully",
		Data:    msg,
	})
}

// HandleListForUser returns all messages owned by the email in the path.
//
// HTTP: GET /message/{email}
//
// 200 with the user's messages in creation order; 404 if the email is not
// registered. A registered user with no messages gets an empty list, not a
// 404 — those are different answers.
func (h *MessageHandler) HandleListForUser(w http.ResponseWriter, r *http.Request) {
	email := r.PathValue("email")

	msgs, err := h.messages.ListForUser(r.Context(), email)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listMessagesResponse{
		Message:  "here are your messages",
		Messages: msgs,
	})
}

// HandleGetByID returns a single message.
//
// HTTP: GET /message/{id} — the route only matches numeric ids, so this
// never shadows the list-by-email route above it.
func (h *MessageHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	msg, err := h.messages.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// HandleUpdate replaces the title and description of an existing message.
//
// HTTP: PUT /message/{id}
// BODY: {"title": "new title", "description": "new body"}
//
// 200 with the updated message; 404 unknown id (checked before the field
// validation); 400 missing field.
func (h *MessageHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid message JSON", slog.String("error", err.Error()))
		writeInvalidJSON(w)
		return
	}

	msg, err := h.messages.Update(r.Context(), id, req.Title, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updateMessageResponse{
		Message: "message updated successfully",
		Updated: msg,
	})
}

// HandleDelete removes a message.
//
// HTTP: DELETE /message/{id}
//
// 200 with a confirmation; 404 unknown id. The freed id is never reused.
func (h *MessageHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.messages.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "message deleted successfully",
	})
}
