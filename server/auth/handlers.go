package serverauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Pjt727/studygroup/data/db"
	"github.com/Pjt727/studygroup/server/components"
	"github.com/Pjt727/studygroup/server/sessions"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	invalidLoginText    = "Invalid username or password."
	unexpectedLoginText = "An unexpected error occurred during login."
	tooManyAttemptsText = "Too many login attempts, please wait a moment and try again."
)

type CredentialStore interface {
	AuthGetCredential(ctx context.Context, username string) (db.Credential, error)
}

type authHandler struct {
	store    CredentialStore
	sessions *sessions.Store
	limiter  *loginLimiter
	logger   *slog.Logger
}

func (h *authHandler) loginView(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	errText := h.sessions.PopFlash(r)
	err := components.Page("Log in", false, components.Login(errText)).Render(r.Context(), w)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Could not render login view", "error", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
}

func (h *authHandler) failLogin(w http.ResponseWriter, r *http.Request, message string) {
	h.sessions.SetFlash(w, r, message)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !h.limiter.allow(remoteHost(r)) {
		h.logger.WarnContext(ctx, "login rate limited", "remote", remoteHost(r))
		h.failLogin(w, r, tooManyAttemptsText)
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	credential, err := h.store.AuthGetCredential(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		h.logger.InfoContext(ctx, "login for unknown user", "username", username)
		h.failLogin(w, r, invalidLoginText)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "could not get credential", "error", err)
		h.failLogin(w, r, unexpectedLoginText)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(credential.EncryptedPassword), []byte(password))
	if err != nil {
		h.logger.InfoContext(ctx, "password is not correct", "username", username)
		h.failLogin(w, r, invalidLoginText)
		return
	}

	h.sessions.Start(w, r, sessions.Session{
		StudentID: credential.StudentID,
		Username:  credential.Username,
	})
	h.logger.InfoContext(ctx, "student logged in", "username", credential.Username, "studentID", credential.StudentID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *authHandler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.End(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
