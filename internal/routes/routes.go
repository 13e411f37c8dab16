// Package routes assembles the HTTP route table.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sbilibin2017/gw-expense-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
)

// APIPrefix is the versioned prefix every route is mounted under.
const APIPrefix = "/api/v1"

// TokenService verifies, inspects and reads session tokens.
type TokenService interface {
	middlewares.Tokener
	handlers.TokenInspector
}

// Authenticator registers, logs in and refreshes users.
type Authenticator interface {
	handlers.Registerer
	handlers.Loginer
}

// Deps holds everything the route table is built from.
type Deps struct {
	Tokens       TokenService
	Auth         Authenticator
	Users        handlers.UserManager
	Transactions handlers.TransactionManager
	Contacts     handlers.ContactManager
	Cookies      *handlers.CookieHelper

	// PasswordReset mounts the reset key routes when set.
	PasswordReset handlers.PasswordResetter

	// Tx wraps account writes in a request scoped transaction when set.
	Tx func(http.Handler) http.Handler

	HealthChecks map[string]handlers.HealthCheck
}

// NewRouter builds the router with recovery, request logging and the API
// mounted under APIPrefix.
func NewRouter(d Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route(APIPrefix, func(r chi.Router) {
		Setup(r, d)
	})
	return r
}

// Setup registers the API routes on r.
func Setup(r chi.Router, d Deps) {
	auth := middlewares.AuthMiddleware(d.Tokens)

	tx := d.Tx
	if tx == nil {
		tx = func(next http.Handler) http.Handler { return next }
	}

	r.Get("/health", handlers.NewHealthHandler(d.HealthChecks))

	r.Route("/users", func(r chi.Router) {
		// Public
		r.Get("/loggedIn", handlers.NewLoggedInHandler(d.Tokens))
		r.Get("/logout", handlers.NewLogoutHandler(d.Cookies))
		r.With(tx).Post("/register", handlers.NewRegisterHandler(d.Auth, d.Cookies))
		r.Post("/login", handlers.NewLoginHandler(d.Auth, d.Cookies))
		if d.PasswordReset != nil {
			r.With(tx).Put("/resetPassword", handlers.NewResetPasswordHandler(d.PasswordReset))
		}

		// Authenticated
		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/single", handlers.NewSingleUserHandler(d.Users))
			r.Post("/refresh", handlers.NewRefreshHandler(d.Auth, d.Cookies))
			r.Delete("/delete/{id}", handlers.NewDeleteUserHandler(d.Users))

			// Admin
			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireAdmin)
				r.Get("/", handlers.NewListUsersHandler(d.Users))
				r.Delete("/{id}", handlers.NewDeleteUserHandler(d.Users))
			})
		})
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Use(auth)
		r.Get("/", handlers.NewListTransactionsHandler(d.Transactions))
		r.With(middlewares.RequireAdmin).Get("/admin", handlers.NewListAllTransactionsHandler(d.Transactions))
		r.Get("/{id}", handlers.NewGetTransactionHandler(d.Transactions))
		r.Post("/", handlers.NewCreateTransactionHandler(d.Transactions))
		r.Delete("/{id}", handlers.NewDeleteTransactionHandler(d.Transactions))
	})

	r.Route("/contacts", func(r chi.Router) {
		r.Post("/", handlers.NewCreateContactHandler(d.Contacts))

		r.Group(func(r chi.Router) {
			r.Use(auth, middlewares.RequireAdmin)
			r.Get("/", handlers.NewListContactsHandler(d.Contacts))
			r.Delete("/{id}", handlers.NewDeleteContactHandler(d.Contacts))
		})
	})

	if d.PasswordReset != nil {
		r.Post("/keys", handlers.NewIssueKeyHandler(d.PasswordReset))
	}
}
