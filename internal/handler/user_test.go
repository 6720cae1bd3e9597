package handler_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abarbosa/recados/internal/auth"
	"github.com/abarbosa/recados/internal/handler"
	"github.com/abarbosa/recados/internal/repository/memory"
	"github.com/abarbosa/recados/internal/service"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newUserHandler wires a UserHandler over a fresh in-memory registry.
func newUserHandler() *handler.UserHandler {
	logger := quietLogger()
	users := memory.NewUserStore()
	svc := service.NewUserService(users, auth.NewPasswordServiceForTest(4), logger)
	return handler.NewUserHandler(svc, logger)
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func TestUserHandler_HandleSignup(t *testing.T) {
	t.Run("valid signup", func(t *testing.T) {
		h := newUserHandler()

		rr := postJSON(t, h.HandleSignup, "/signup",
			`{"name":"Ana","email":"ana@x.com","password":"secret"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var res struct {
			Message string `json:"message"`
			User    struct {
				ID    int64  `json:"id"`
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"user"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, int64(1), res.User.ID)
		assert.Equal(t, "Ana", res.User.Name)
		assert.Equal(t, "ana@x.com", res.User.Email)
		assert.Contains(t, res.Message, "Ana")
	})

	t.Run("password hash never serialized", func(t *testing.T) {
		h := newUserHandler()

		rr := postJSON(t, h.HandleSignup, "/signup",
			`{"name":"Ana","email":"ana@x.com","password":"secret"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		body := rr.Body.String()
		assert.NotContains(t, body, "passwordHash")
		assert.NotContains(t, body, "$2a$") // bcrypt prefix
		assert.NotContains(t, body, "secret")
	})

	t.Run("missing fields in order", func(t *testing.T) {
		h := newUserHandler()

		// name is checked first, then email, then password.
		for _, tc := range []struct {
			body    string
			wantMsg string
		}{
			{`{"email":"a@x.com","password":"pw"}`, "name"},
			{`{"name":"Ana","password":"pw"}`, "email"},
			{`{"name":"Ana","email":"a@x.com"}`, "password"},
		} {
			rr := postJSON(t, h.HandleSignup, "/signup", tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var res handler.ErrorResponse
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
			assert.Equal(t, "validation_error", res.Error)
			assert.Contains(t, res.Message, tc.wantMsg)
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		h := newUserHandler()

		rr := postJSON(t, h.HandleSignup, "/signup",
			`{"name":"Ana","email":"ana@x.com","password":"secret"}`)
		assert.Equal(t, http.StatusCreated, rr.Code)

		rr = postJSON(t, h.HandleSignup, "/signup",
			`{"name":"Other","email":"ana@x.com","password":"different"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)

		var res handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "conflict", res.Error)
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		h := newUserHandler()

		rr := postJSON(t, h.HandleSignup, "/signup", `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var res handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "invalid_json", res.Error)
	})
}

func TestUserHandler_HandleLogin(t *testing.T) {
	// One registered account shared by the subtests below.
	h := newUserHandler()
	rr := postJSON(t, h.HandleSignup, "/signup",
		`{"name":"Ana","email":"ana@x.com","password":"secret"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)

	t.Run("correct credentials", func(t *testing.T) {
		rr := postJSON(t, h.HandleLogin, "/login",
			`{"email":"ana@x.com","password":"secret"}`)

		assert.Equal(t, http.StatusOK, rr.Code)

		var res struct {
			User struct {
				ID    int64  `json:"id"`
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"user"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Ana", res.User.Name)
		assert.Equal(t, "ana@x.com", res.User.Email)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		rr := postJSON(t, h.HandleLogin, "/login",
			`{"email":"ana@x.com","password":"wrong"}`)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)

		var res handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "unauthorized", res.Error)
	})

	t.Run("unknown email is 404", func(t *testing.T) {
		rr := postJSON(t, h.HandleLogin, "/login",
			`{"email":"nobody@x.com","password":"secret"}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)

		var res handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "not_found", res.Error)
	})

	t.Run("missing email is 400", func(t *testing.T) {
		rr := postJSON(t, h.HandleLogin, "/login", `{"password":"secret"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
