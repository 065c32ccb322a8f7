// Package server wires the database, services, handlers and routes together
// and runs the HTTP listener. It is the composition root: every dependency
// is assembled here, and main.go stays minimal.
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

	"github.com/sakif/staffdesk/internal/auth"
	"github.com/sakif/staffdesk/internal/config"
	"github.com/sakif/staffdesk/internal/handler"
	"github.com/sakif/staffdesk/internal/middleware"
	sqliteRepo "github.com/sakif/staffdesk/internal/repository/sqlite"
	"github.com/sakif/staffdesk/internal/service"
)

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown so the WAL is flushed before exit.
type Server struct {
	router *chi.Mux
	cfg    *config.Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New opens the database and assembles the full dependency chain:
// repositories → services → handlers → routes. Each layer receives only the
// interfaces it needs; handlers never touch the database directly.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DB.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("token service: %w", err)
	}
	passwords := auth.NewPasswordService(cfg.Auth.BcryptCost)

	s := &Server{
		router: chi.NewRouter(),
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
	s.setupRoutes(tokens, passwords)
	return s, nil
}

func (s *Server) setupRoutes(tokens *auth.TokenService, passwords *auth.PasswordService) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	authService := service.NewAuthService(s.db.Users(), tokens, passwords, s.logger)
	userService := service.NewUserService(s.db.Users(), passwords, s.logger)
	employeeService := service.NewEmployeeService(s.db.Employees(), s.logger)
	departmentService := service.NewDepartmentService(s.db.Departments(), s.logger)
	positionService := service.NewPositionService(s.db.Positions(), s.logger)
	projectService := service.NewProjectService(s.db.Projects(), s.logger)

	authHandler := handler.NewAuthHandler(authService, s.logger)
	userHandler := handler.NewUserHandler(userService, s.logger)
	employeeHandler := handler.NewEmployeeHandler(employeeService, s.logger)
	departmentHandler := handler.NewDepartmentHandler(departmentService, s.logger)
	positionHandler := handler.NewPositionHandler(positionService, s.logger)
	projectHandler := handler.NewProjectHandler(projectService, s.logger)

	requireAuth := auth.RequireAuth(tokens)

	s.router.Route("/api", func(r chi.Router) {
		// Registration and login are the only routes reachable without a
		// token.
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/auth/me", authHandler.HandleMe)

			r.Get("/users", userHandler.HandleList)
			r.Get("/users/count", userHandler.HandleCount)
			r.Get("/users/{id}", userHandler.HandleGet)
			r.Post("/users", userHandler.HandleCreate)
			r.Put("/users/{id}", userHandler.HandleUpdate)
			r.Delete("/users/{id}", userHandler.HandleDelete)

			r.Get("/employees", employeeHandler.HandleList)
			r.Get("/employees/count", employeeHandler.HandleCount)
			r.Get("/employees/{id}", employeeHandler.HandleGet)
			r.Post("/employees", employeeHandler.HandleCreate)
			r.Put("/employees/{id}", employeeHandler.HandleUpdate)
			r.Delete("/employees/{id}", employeeHandler.HandleDelete)

			r.Get("/departments", departmentHandler.HandleList)
			r.Get("/departments/{id}", departmentHandler.HandleGet)
			r.Post("/departments", departmentHandler.HandleCreate)
			r.Put("/departments/{id}", departmentHandler.HandleUpdate)
			r.Delete("/departments/{id}", departmentHandler.HandleDelete)

			r.Get("/positions", positionHandler.HandleList)
			r.Get("/positions/count", positionHandler.HandleCount)
			r.Get("/positions/{id}", positionHandler.HandleGet)
			r.Post("/positions", positionHandler.HandleCreate)
			r.Put("/positions/{id}", positionHandler.HandleUpdate)
			r.Delete("/positions/{id}", positionHandler.HandleDelete)

			r.Get("/projects", projectHandler.HandleList)
			r.Get("/projects/count", projectHandler.HandleCount)
			r.Get("/projects/{id}", projectHandler.HandleGet)
			r.Post("/projects", projectHandler.HandleCreate)
			r.Put("/projects/{id}", projectHandler.HandleUpdate)
			r.Delete("/projects/{id}", projectHandler.HandleDelete)
		})
	})
}

// Router exposes the configured mux, mainly for tests that want to drive the
// full stack through httptest without binding a port.
func (s *Server) Router() http.Handler {
	return s.router
}

// Close releases the database connection.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the listener until SIGINT or SIGTERM, then drains in-flight
// requests and closes the database.
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         s.cfg.HTTPServer.Address,
		Handler:      s.router,
		ReadTimeout:  s.cfg.HTTPServer.ReadTimeout,
		WriteTimeout: s.cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  s.cfg.HTTPServer.IdleTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("server starting",
			slog.String("address", s.cfg.HTTPServer.Address),
			slog.String("env", s.cfg.Env),
			slog.String("database", s.cfg.DB.Path),
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
