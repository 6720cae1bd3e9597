package model

// Message represents a short text note ("recado") owned by a user.
//
// The `json:"..."` tags tell Go's encoding/json package how to serialize this
// struct. For example:
//
//	msg := Message{ID: 1, Title: "Hi"}
//	json.Marshal(msg) → {"id":1,"title":"Hi",...}
//
// UserID is the owning user's ID, fixed when the message is created and never
// reassigned. Title and Description are the only mutable fields.
type Message struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	UserID      int64  `json:"userId"`
}
