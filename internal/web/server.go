package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/classdesk/classdesk/internal/auth"
	"github.com/classdesk/classdesk/internal/database"
	"github.com/classdesk/classdesk/internal/web/handlers"
	"github.com/classdesk/classdesk/internal/web/middleware"
)

// Server represents the web server
type Server struct {
	db          *database.DB
	port        int
	bind        string
	router      *chi.Mux
	authService *auth.Service
	handlers    *handlers.Handlers
}

// NewServer creates a new web server
func NewServer(db *database.DB, port int, bind string) *Server {
	s := &Server{
		db:          db,
		port:        port,
		bind:        bind,
		router:      chi.NewRouter(),
		authService: auth.NewService(db),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	r := s.router

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	h := handlers.New(s.db, s.authService)
	s.handlers = h

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/admin/password", h.ChangeAdminPassword)

		r.Get("/dashboard", h.Dashboard)

		r.Route("/students", func(r chi.Router) {
			r.Get("/", h.ListStudents)
			r.Post("/", h.AddStudent)
			r.Get("/search", h.SearchStudents)
			r.Get("/{id}", h.GetStudent)
			r.Put("/{id}", h.UpdateStudent)
			r.Delete("/{id}", h.DeleteStudent)
			r.Get("/{id}/attendance", h.GetAttendance)
			r.Get("/{id}/fees", h.GetFees)
			r.Get("/{id}/performance", h.ListPerformance)
		})

		r.Route("/batches", func(r chi.Router) {
			r.Get("/", h.ListBatches)
			r.Post("/", h.UpsertBatch)
			r.Delete("/{name}", h.DeleteBatch)
		})

		r.Post("/attendance", h.MarkAttendance)
		r.Post("/fees", h.RecordPayment)
		r.Get("/fees/total", h.TotalFeesCollected)
		r.Post("/performance", h.RecordMarks)

		r.Route("/teachers", func(r chi.Router) {
			r.Get("/", h.ListTeachers)
			r.Post("/", h.AddTeacher)
			r.Delete("/{id}", h.DeleteTeacher)
		})

		r.Route("/timetable", func(r chi.Router) {
			r.Get("/", h.ListTimetable)
			r.Post("/", h.AddTimetableEntry)
			r.Get("/next", h.NextClasses)
			r.Delete("/{id}", h.DeleteTimetableEntry)
			r.Delete("/batch/{batch}", h.ClearTimetableForBatch)
		})

		r.Get("/homework", h.ListHomework)

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.ListAllMessages)
			r.Post("/", h.SendMessage)
			r.Get("/{recipient}", h.ListMessagesFor)
		})
	})
}

// Router returns the configured router. Used by tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the web server and blocks until ctx is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	var addr string
	if s.bind != "" {
		addr = fmt.Sprintf("%s:%d", s.bind, s.port)
	} else {
		addr = fmt.Sprintf(":%d", s.port)
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errChan:
		return err
	}
}
