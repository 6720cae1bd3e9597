// Package server sets up the HTTP server, router, and all route definitions.
//
// This is the composition root: the entire dependency chain —
// stores → services → handlers → routes — is wired here, in one place,
// instead of scattered across the codebase.
//
// All state is in memory and owned by this package's stores. That is a
// property of the system, not a shortcut: a process restart starts from an
// empty registry and an empty message store.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/abarbosa/recados/internal/auth"
	"github.com/abarbosa/recados/internal/handler"
	"github.com/abarbosa/recados/internal/middleware"
	"github.com/abarbosa/recados/internal/repository/memory"
	"github.com/abarbosa/recados/internal/service"
)

// Config holds server configuration.
type Config struct {
	Port int
}

// Server owns the router and the (in-memory) application state.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
}

// New creates a Server with all dependencies wired:
//
//	memory.UserStore ─┬→ UserService ───→ UserHandler
//	                  └→ MessageService → MessageHandler
//	memory.MessageStore ↗
//
// Each layer receives only what it needs: services get repository
// interfaces, handlers get services. Nothing below the handler layer knows
// HTTP exists.
func New(cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures middleware and the route table.
//
// ROUTE STRUCTURE:
//
//	GET    /                 → welcome
//	POST   /signup           → register account
//	POST   /login            → verify credentials
//	POST   /message          → create message (owner named by email in body)
//	GET    /message/{id}     → get one message (numeric ids only)
//	GET    /message/{email}  → list a user's messages
//	PUT    /message/{id}     → update title/description
//	DELETE /message/{id}     → delete message
//
// The two GET routes share a prefix; the {id:[0-9]+} regex constraint makes
// chi try the numeric route first, and an email always contains '@', so it
// can never match the id pattern.
func (s *Server) setupRoutes() {
	// Global middleware, in order: request IDs for tracing, real client IPs
	// behind proxies, panic recovery, then our request logger.
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// Permissive CORS — this is a public demo API consumed from browsers.
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// === Dependency wiring ===
	userStore := memory.NewUserStore()
	messageStore := memory.NewMessageStore()

	userService := service.NewUserService(userStore, auth.NewPasswordService(), s.logger)
	messageService := service.NewMessageService(messageStore, userStore, s.logger)

	userHandler := handler.NewUserHandler(userService, s.logger)
	messageHandler := handler.NewMessageHandler(messageService, s.logger)

	// === Routes ===
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintln(w, `{"message":"welcome to the recados API"}`)
	})

	s.router.Post("/signup", userHandler.HandleSignup)
	s.router.Post("/login", userHandler.HandleLogin)

	s.router.Post("/message", messageHandler.HandleCreate)
	s.router.Get("/message/{id:[0-9]+}", messageHandler.HandleGetByID)
	s.router.Get("/message/{email}", messageHandler.HandleListForUser)
	s.router.Put("/message/{id}", messageHandler.HandleUpdate)
	s.router.Delete("/message/{id}", messageHandler.HandleDelete)
}

// Handler exposes the router, mainly so tests can drive the full stack
// through httptest without opening a socket.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start runs the HTTP server and handles graceful shutdown.
//
// On SIGINT/SIGTERM, in-flight requests get 30 seconds to finish. There is
// nothing to flush afterwards — the stores are memory-only and their
// contents are intentionally discarded with the process.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
