package service

import (
	"context"
	"errors"
	"testing"

	"github.com/abarbosa/recados/internal/apperror"
	"github.com/abarbosa/recados/internal/auth"
	"github.com/abarbosa/recados/internal/repository/memory"
)

// newTestMessageService wires a MessageService and a UserService over shared
// in-memory stores, with the given emails pre-registered.
func newTestMessageService(t *testing.T, emails ...string) *MessageService {
	t.Helper()

	users := memory.NewUserStore()
	userSvc := NewUserService(users, auth.NewPasswordServiceForTest(4), testLogger())
	for _, email := range emails {
		if _, err := userSvc.Register(context.Background(), "User "+email, email, "pw"); err != nil {
			t.Fatalf("registering %s: %v", email, err)
		}
	}

	return NewMessageService(memory.NewMessageStore(), users, testLogger())
}

func TestMessageCreate_Success(t *testing.T) {
	svc := newTestMessageService(t, "ana@x.com")

	msg, err := svc.Create(context.Background(), "ana@x.com", "Hi", "Hello")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if msg.ID != 1 {
		t.Errorf("first message ID = %d, want 1", msg.ID)
	}
	if msg.UserID != 1 {
		t.Errorf("UserID = %d, want 1 (ana's id)", msg.UserID)
	}
	if msg.Title != "Hi" || msg.Description != "Hello" {
		t.Errorf("message = %+v", msg)
	}
}

func TestMessageCreate_ValidationOrder(t *testing.T) {
	// email → title → description; first empty field wins.
	tests := []struct {
		name      string
		email     string
		title     string
		desc      string
		wantField string
	}{
		{"missing email", "", "Hi", "Hello", "email"},
		{"missing title", "ana@x.com", "", "Hello", "title"},
		{"missing description", "ana@x.com", "Hi", "", "description"},
		{"email wins over title", "", "", "Hello", "email"},
		{"title wins over description", "ana@x.com", "", "", "title"},
	}

	svc := newTestMessageService(t, "ana@x.com")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.email, tt.title, tt.desc)
			if !errors.Is(err, apperror.ErrValidation) {
				t.Fatalf("Create() error = %v, want ErrValidation", err)
			}
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Field != tt.wantField {
				t.Errorf("failing field = %q, want %q", appErr.Field, tt.wantField)
			}
		})
	}
}

func TestMessageCreate_UnknownEmailIsNotFound(t *testing.T) {
	svc := newTestMessageService(t, "ana@x.com")

	_, err := svc.Create(context.Background(), "ghost@x.com", "Hi", "Hello")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Create() error = %v, want ErrNotFound", err)
	}
}

func TestListForUser_DisjointAndComplete(t *testing.T) {
	svc := newTestMessageService(t, "ana@x.com", "bob@x.com")
	ctx := context.Background()

	mustCreate := func(email, title string) {
		t.Helper()
		if _, err := svc.Create(ctx, email, title, "body"); err != nil {
			t.Fatalf("Create(%s, %s): %v", email, title, err)
		}
	}
	mustCreate("ana@x.com", "ana-1")
	mustCreate("bob@x.com", "bob-1")
	mustCreate("ana@x.com", "ana-2")
	mustCreate("bob@x.com", "bob-2")

	anas, err := svc.ListForUser(ctx, "ana@x.com")
	if err != nil {
		t.Fatalf("ListForUser(ana) error = %v", err)
	}
	bobs, err := svc.ListForUser(ctx, "bob@x.com")
	if err != nil {
		t.Fatalf("ListForUser(bob) error = %v", err)
	}

	// Each list is complete, in creation order, and disjoint from the other.
	if len(anas) != 2 || anas[0].Title != "ana-1" || anas[1].Title != "ana-2" {
		t.Errorf("ana's messages = %+v", anas)
	}
	if len(bobs) != 2 || bobs[0].Title != "bob-1" || bobs[1].Title != "bob-2" {
		t.Errorf("bob's messages = %+v", bobs)
	}
	for _, a := range anas {
		for _, b := range bobs {
			if a.ID == b.ID {
				t.Errorf("message %d appears in both lists", a.ID)
			}
		}
	}
}

func TestListForUser_UnknownEmailIsNotFound(t *testing.T) {
	svc := newTestMessageService(t, "ana@x.com")

	_, err := svc.ListForUser(context.Background(), "ghost@x.com")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("ListForUser() error = %v, want ErrNotFound", err)
	}
}

func TestUpdate_RoundTripPreservesIdentityAndOwner(t *testing.T) {
	svc := newTestMessageService(t, "ana@x.com")
	ctx := context.Background()

	created, err := svc.Create(ctx, "ana@x.com", "before", "old body")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, created.ID, "after", "new body")
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "after" || updated.Description != "new body" {
		t.Errorf("updated = %+v", updated)
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Title != "after" || got.Description != "new body" {
		t.Errorf("GetByID() after update = %+v", got)
	}
	if got.ID != created.ID || got.UserID != created.UserID {
		t.Errorf("identity changed: got id=%d userId=%d, want id=%d userId=%d",
			got.ID, got.UserID, created.ID, created.UserID)
	}
}

func TestUpdate_NotFoundCheckedBeforeValidation(t *testing.T) {
	svc := newTestMessageService(t, "ana@x.com")

	// Unknown ID and missing fields: "not found" wins — existence is
	// checked before title/description presence.
	_, err := svc.Update(context.Background(), 42, "", "")
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestUpdate_MissingFieldsAreValidation(t *testing.T) {
	svc := newTestMessageService(t, "ana@x.com")
	ctx := context.Background()

	created, err := svc.Create(ctx, "ana@x.com", "Hi", "Hello")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Title is checked before description.
	_, err = svc.Update(ctx, created.ID, "", "")
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Field != "title" {
		t.Errorf("Update() error = %v, want validation on title", err)
	}

	_, err = svc.Update(ctx, created.ID, "Hi", "")
	if !errors.As(err, &appErr) || appErr.Field != "description" {
		t.Errorf("Update() error = %v, want validation on description", err)
	}
}

func TestDelete_IDsNeverReused(t *testing.T) {
	svc := newTestMessageService(t, "ana@x.com")
	ctx := context.Background()

	for _, title := range []string{"one", "two", "three"} {
		if _, err := svc.Create(ctx, "ana@x.com", title, "body"); err != nil {
			t.Fatalf("Create(%s): %v", title, err)
		}
	}

	if err := svc.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete(2) error = %v", err)
	}

	next, err := svc.Create(ctx, "ana@x.com", "four", "body")
	if err != nil {
		t.Fatalf("Create(four): %v", err)
	}
	if next.ID != 4 {
		t.Errorf("ID after delete = %d, want 4 (2 is never reused)", next.ID)
	}

	if _, err := svc.GetByID(ctx, 2); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("GetByID(2) after delete error = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, 99); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Delete(99) error = %v, want ErrNotFound", err)
	}
}
