package serverauth

import (
	"log/slog"

	"github.com/Pjt727/studygroup/server/sessions"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

func getAuthHandler(store CredentialStore, sessionStore *sessions.Store, logger *slog.Logger) *authHandler {
	return &authHandler{
		store:    store,
		sessions: sessionStore,
		limiter:  newLoginLimiter(rate.Limit(loginAttemptsPerMinute)/60, loginBurst),
		logger:   logger.With("routes", "auth"),
	}
}

func PopulateAuthRoutes(r *chi.Router, store CredentialStore, sessionStore *sessions.Store, logger *slog.Logger) {
	h := getAuthHandler(store, sessionStore, logger)

	(*r).Get("/login", h.loginView)
	(*r).With(
		middleware.AllowContentType("application/x-www-form-urlencoded", "multipart/form-data"),
	).Post("/login", h.login)
	(*r).Get("/logout", h.logout)
	(*r).Post("/logout", h.logout)
}
